package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wokane-be/internal/cache"
	"wokane-be/internal/entities"
	"wokane-be/internal/repository"
)

// In-memory fakes standing in for the Postgres repositories, the receipt
// store and the Redis cache.

type fakeUserRepo struct {
	users  map[string]*entities.User // keyed by id
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(name, email, passwordHash string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return nil, repository.ErrDuplicateEmail
		}
	}
	r.nextID++
	user := &entities.User{
		ID:           fmt.Sprintf("user-%d", r.nextID),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindByID(id string) (*entities.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindAll() ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(id string, name, email, passwordHash *string) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if email != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Email == *email {
				return nil, repository.ErrDuplicateEmail
			}
		}
		u.Email = *email
	}
	if name != nil {
		u.Name = *name
	}
	if passwordHash != nil {
		u.PasswordHash = *passwordHash
	}
	u.UpdatedAt = time.Now()
	return u, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeExpenseRepo struct {
	expenses map[string]*entities.Expense
	nextID   int
	findErr  error
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[string]*entities.Expense)}
}

func (r *fakeExpenseRepo) Create(title string, amount float64, date time.Time, category, receiptImage *string) (*entities.Expense, error) {
	r.nextID++
	expense := &entities.Expense{
		ID:           fmt.Sprintf("expense-%d", r.nextID),
		Title:        title,
		Amount:       amount,
		Date:         date,
		Category:     category,
		ReceiptImage: receiptImage,
		CreatedAt:    time.Now(),
	}
	r.expenses[expense.ID] = expense
	return expense, nil
}

func (r *fakeExpenseRepo) FindAll() ([]*entities.Expense, error) {
	var out []*entities.Expense
	for _, e := range r.expenses {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeExpenseRepo) FindByID(id string) (*entities.Expense, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if e, ok := r.expenses[id]; ok {
		return e, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeExpenseRepo) Delete(id string) error {
	if _, ok := r.expenses[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.expenses, id)
	return nil
}

func (r *fakeExpenseRepo) Count() (int, error) {
	return len(r.expenses), nil
}

type fakeReceiptStore struct {
	err      error
	payloads []string
}

func (s *fakeReceiptStore) Ingest(payload string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.payloads = append(s.payloads, payload)
	return fmt.Sprintf("/expenses/uploads/receipt-%d.jpg", len(s.payloads)), nil
}

type fakeCache struct {
	entries map[string][]byte
	hits    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, dest interface{}) error {
	data, ok := c.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	c.hits++
	return json.Unmarshal(data, dest)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}
