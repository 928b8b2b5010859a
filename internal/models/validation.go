package models

import "fmt"

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validator is implemented by request bodies that carry their own validation.
// Controllers call Validate after JSON binding and reject the request with a
// 400 when the returned slice is non-empty; invalid input never reaches the
// service layer.
type Validator interface {
	Validate() []FieldError
}
