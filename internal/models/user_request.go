package models

import (
	"net/mail"
	"strings"
)

// UpdateUserRequest represents a partial profile update. Nil fields are left
// unchanged; a password update is re-hashed by the service layer.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (r *UpdateUserRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Name == nil && r.Email == nil && r.Password == nil {
		errs = append(errs, FieldError{Field: "body", Message: "at least one of name, email or password is required"})
		return errs
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name must not be empty"})
	}
	if r.Email != nil {
		if _, err := mail.ParseAddress(*r.Email); err != nil {
			errs = append(errs, FieldError{Field: "email", Message: "email is not a valid address"})
		}
	}
	if r.Password != nil && len(*r.Password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}
	return errs
}
