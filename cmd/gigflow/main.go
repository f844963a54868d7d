package main

import (
	"log"

	"gigflow/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
