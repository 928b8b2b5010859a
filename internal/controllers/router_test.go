package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"wokane-be/internal/entities"
	"wokane-be/internal/jwt"
	"wokane-be/internal/repository"
	"wokane-be/internal/service"
	"wokane-be/internal/uploads"
)

// testApp wires the real services and route table over in-memory
// repositories and a temp-dir receipt store.
type testApp struct {
	router      *gin.Engine
	userRepo    *fakeUserRepo
	expenseRepo *fakeExpenseRepo
	jwtService  *jwt.JWTService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	receiptStore, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)

	userRepo := newFakeUserRepo()
	expenseRepo := newFakeExpenseRepo()
	jwtService := jwt.NewJWTService("test-secret-key", time.Hour)

	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	expenseService := service.NewExpenseService(expenseRepo, receiptStore, nil)

	router := gin.New()
	SetupRoutes(router, RouterConfig{
		Auth:       NewAuthController(authService),
		Users:      NewUserController(userService),
		Expenses:   NewExpenseController(expenseService, receiptStore),
		QRCodes:    NewQRCodeController(expenseService, "http://localhost:8080"),
		JWTService: jwtService,
	})

	return &testApp{
		router:      router,
		userRepo:    userRepo,
		expenseRepo: expenseRepo,
		jwtService:  jwtService,
	}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// register creates an account and returns a valid bearer token for it.
func (a *testApp) register(t *testing.T, name, email, password string) string {
	t.Helper()

	w := a.do(t, http.MethodPost, "/auth/register", "", gin.H{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = a.do(t, http.MethodPost, "/auth/login", "", gin.H{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

// Minimal in-memory repositories backing the controller tests.

type fakeUserRepo struct {
	users  map[string]*entities.User
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
