package entities

import "time"

// Expense represents an expense record in the database.
//
// Expenses deliberately carry no owner reference: the system scopes them
// globally, so every authenticated user can read and delete every expense.
type Expense struct {
	ID           string    `json:"id"` // UUID
	Title        string    `json:"title"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	Category     *string   `json:"category,omitempty"`      // Pointer allows nil (no category)
	ReceiptImage *string   `json:"receiptImage,omitempty"`  // Reference path to a stored receipt, e.g. /expenses/uploads/<file>
	CreatedAt    time.Time `json:"created_at"`
}
