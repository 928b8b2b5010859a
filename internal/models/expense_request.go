package models

import (
	"strings"
	"time"
)

// CreateExpenseRequest represents the request body for creating an expense.
// ReceiptImage, when present, is a base64-encoded image payload with an
// optional data-URL prefix.
type CreateExpenseRequest struct {
	Title        string   `json:"title"`
	Amount       *float64 `json:"amount"` // Pointer distinguishes a missing amount from an explicit 0
	Date         string   `json:"date"`
	Category     *string  `json:"category,omitempty"`
	ReceiptImage string   `json:"receiptImage,omitempty"`
}

// Accepted date layouts, most common first.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

func (r *CreateExpenseRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	}
	if r.Amount == nil {
		errs = append(errs, FieldError{Field: "amount", Message: "amount is required"})
	}
	if r.Date == "" {
		errs = append(errs, FieldError{Field: "date", Message: "date is required"})
	} else if _, err := r.ParsedDate(); err != nil {
		errs = append(errs, FieldError{Field: "date", Message: "date must be YYYY-MM-DD or RFC 3339"})
	}
	return errs
}

// ParsedDate returns the calendar date carried by the request.
func (r *CreateExpenseRequest) ParsedDate() (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, r.Date)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
