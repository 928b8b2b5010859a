package repository

import (
	"database/sql"
	"fmt"
	"time"

	"wokane-be/internal/entities"
)

// ExpenseRepository defines the interface for expense database operations.
//
// There is no owner filter on any of these queries: expenses are global to
// the deployment, so every authenticated user reads and deletes the same set.
type ExpenseRepository interface {
	Create(title string, amount float64, date time.Time, category, receiptImage *string) (*entities.Expense, error)
	FindAll() ([]*entities.Expense, error)
	FindByID(id string) (*entities.Expense, error)
	Delete(id string) error
	Count() (int, error)
}

type expenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *sql.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

// Create inserts a new expense into the database
func (r *expenseRepository) Create(title string, amount float64, date time.Time, category, receiptImage *string) (*entities.Expense, error) {
	query := `
		INSERT INTO expenses (title, amount, date, category, receipt_image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, amount, date, category, receipt_image, created_at
	`

	var expense entities.Expense
	err := r.db.QueryRow(query, title, amount, date, category, receiptImage).Scan(
		&expense.ID,
		&expense.Title,
		&expense.Amount,
		&expense.Date,
		&expense.Category,
		&expense.ReceiptImage,
		&expense.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &expense, nil
}

// FindAll returns every expense currently persisted (single snapshot read,
// not paginated)
func (r *expenseRepository) FindAll() ([]*entities.Expense, error) {
	query := `
		SELECT id, title, amount, date, category, receipt_image, created_at
		FROM expenses
		ORDER BY date DESC, created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*entities.Expense
	for rows.Next() {
		var expense entities.Expense
		err := rows.Scan(
			&expense.ID,
			&expense.Title,
			&expense.Amount,
			&expense.Date,
			&expense.Category,
			&expense.ReceiptImage,
			&expense.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, &expense)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}

// FindByID finds an expense by ID (UUID)
func (r *expenseRepository) FindByID(id string) (*entities.Expense, error) {
	query := `
		SELECT id, title, amount, date, category, receipt_image, created_at
		FROM expenses
		WHERE id = $1
	`

	var expense entities.Expense
	err := r.db.QueryRow(query, id).Scan(
		&expense.ID,
		&expense.Title,
		&expense.Amount,
		&expense.Date,
		&expense.Category,
		&expense.ReceiptImage,
		&expense.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	return &expense, nil
}

// Delete removes an expense by ID
func (r *expenseRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the total number of expense records
func (r *expenseRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM expenses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return count, nil
}
