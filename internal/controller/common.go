package controller

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"gigflow/internal/lifecycle"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

const (
	defaultLimit    = 5
	defaultOffset   = 0
	defaultUsername = ""
)

type errorResponse struct {
	Reason string `json:"reason"`
}

// respondError writes the status that matches the kind of err. Only unexpected
// errors are handed back to echo.
func respondError(c echo.Context, err error) error {
	status, reason := http.StatusInternalServerError, "Internal server error"
	switch {
	case errors.Is(err, lifecycle.ErrValidation):
		status, reason = http.StatusBadRequest, err.Error()
	case errors.Is(err, lifecycle.ErrForbidden):
		status, reason = http.StatusForbidden, err.Error()
	case errors.Is(err, lifecycle.ErrNotFound):
		status, reason = http.StatusNotFound, err.Error()
	case errors.Is(err, lifecycle.ErrInvalidState):
		status, reason = http.StatusConflict, err.Error()
	}

	if e := c.JSON(status, errorResponse{reason}); e != nil {
		return e
	}

	if status == http.StatusInternalServerError {
		return err
	}

	return nil
}

func respondMissingUsername(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{"Please provide your username"})
}

func getAllErrorMessages(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	var builder strings.Builder
	for _, fe := range validationErrors {
		message := fmt.Sprintf("'%s': %s\n", fe.Field(), getMessage(fe))
		builder.WriteString(message)
	}

	return builder.String()
}

func getMessage(fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return getMessageForString(fe)
	case reflect.Int, reflect.Int32, reflect.Int64:
		return getMessageForNumber(fe)
	case reflect.Float32, reflect.Float64:
		return getMessageForNumber(fe)
	}

	return "incorrect value passed"
}

func getMessageForNumber(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "should be less or equal than " + fe.Param()
	case "gte", "min":
		return "should be greater or equal than " + fe.Param()
	case "gt":
		return "should be greater than " + fe.Param()
	}

	return "incorrect value passed"
}

func getMessageForString(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "length should be less or equal than " + fe.Param()
	case "gte", "min":
		return "length should be greater or equal than " + fe.Param()
	case "uuid", "uuid4":
		return "should be a valid uuid"
	}

	return "incorrect value passed"
}
