package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"wokane-be/internal/cache"
	"wokane-be/internal/entities"
	"wokane-be/internal/models"
	"wokane-be/internal/repository"
)

// expenseCacheTTL bounds how long a cached expense read can go stale.
// Expenses are immutable once created, so only deletion has to invalidate.
const expenseCacheTTL = time.Hour

// ReceiptStore is the part of the upload store the expense service needs:
// turning an inlined base64 payload into a retrievable reference.
type ReceiptStore interface {
	Ingest(payload string) (string, error)
}

// ExpenseService defines the interface for expense business logic
type ExpenseService interface {
	Create(req *models.CreateExpenseRequest) (*entities.Expense, error)
	FindAll() ([]*entities.Expense, error)
	FindByID(id string) (*entities.Expense, error)
	Delete(id string) error
}

type expenseService struct {
	repo     repository.ExpenseRepository
	receipts ReceiptStore
	cache    cache.Cache
	ctx      context.Context
}

// NewExpenseService creates a new expense service. cacheClient may be nil,
// in which case every read goes to the database.
func NewExpenseService(repo repository.ExpenseRepository, receipts ReceiptStore, cacheClient cache.Cache) ExpenseService {
	svc := &expenseService{
		repo:     repo,
		receipts: receipts,
		ctx:      context.Background(),
	}
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

// Create persists a new expense. When the request carries a receipt image,
// ingestion is best-effort: a malformed payload or write failure is logged
// and the expense is created without a receipt reference rather than the
// whole call failing.
func (s *expenseService) Create(req *models.CreateExpenseRequest) (*entities.Expense, error) {
	date, err := req.ParsedDate()
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	var receiptRef *string
	if req.ReceiptImage != "" {
		ref, err := s.receipts.Ingest(req.ReceiptImage)
		if err != nil {
			log.Printf("expense: receipt ingestion failed, creating expense without receipt: %v", err)
		} else {
			receiptRef = &ref
		}
	}

	return s.repo.Create(req.Title, *req.Amount, date, req.Category, receiptRef)
}

// FindAll returns a snapshot of every expense currently persisted.
func (s *expenseService) FindAll() ([]*entities.Expense, error) {
	return s.repo.FindAll()
}

// FindByID reads through the cache when one is configured.
func (s *expenseService) FindByID(id string) (*entities.Expense, error) {
	cacheKey := "expense:" + id

	if s.cache != nil {
		var cached entities.Expense
		if err := s.cache.GetJSON(s.ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	expense, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(s.ctx, cacheKey, expense, expenseCacheTTL); err != nil {
			log.Printf("expense: failed to cache %s: %v", id, err)
		}
	}

	return expense, nil
}

// Delete removes an expense and drops any cached copy.
func (s *expenseService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Delete(s.ctx, "expense:"+id); err != nil {
			log.Printf("expense: failed to invalidate cache for %s: %v", id, err)
		}
	}

	return nil
}
