package entity

// Actor is the caller on whose behalf an operation runs.
type Actor struct {
	Id   string
	Name string
}
