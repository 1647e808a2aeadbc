// Package web defines common components for a web application.
package web

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into json frinedly struct.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// Page holds a paginated list together with the key to continue from.
type Page[T any] struct {
	Items      []T    `json:"items"`
	StartAfter string `json:"start_after,omitempty"`
}

// GetErrorMsg returns a human readable suffix for a failed validation tag.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "denom":
		return " is not a valid denom"
	case "min":
		return " must be at least " + fe.Param()
	case "max":
		return " must be at most " + fe.Param()
	case "oneof":
		return " must be one of " + fe.Param()
	case "gt":
		return " must be greater than " + fe.Param()
	case "lte":
		return " must be less than or equal to " + fe.Param()
	case "dive":
		return " is invalid"
	}

	return " is invalid"
}

// BindingError turns a request binding error into a response.
//
// Validation errors name the first failed field, other errors are reported as is.
func BindingError(err error) Response {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		field := ve[0]
		return Response{Error: field.Field() + GetErrorMsg(field)}
	}

	return Response{Error: err.Error()}
}

// Pagination limits of the list endpoints.
const (
	DefaultLimit = 10
	MaxLimit     = 30
)

// ClampLimit applies the default and the maximum page size.
func ClampLimit(limit int32) int32 {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}

	return limit
}
