package models

import (
	"net/mail"
	"strings"
)

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the registration payload field by field.
func (r *RegisterRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if r.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errs = append(errs, FieldError{Field: "email", Message: "email is not a valid address"})
	}
	if r.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	} else if len(r.Password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}
	return errs
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	}
	if r.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	}
	return errs
}
