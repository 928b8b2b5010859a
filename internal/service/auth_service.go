package service

import (
	"errors"
	"fmt"

	"wokane-be/internal/hash"
	"wokane-be/internal/jwt"
	"wokane-be/internal/models"
	"wokane-be/internal/repository"
)

// ErrInvalidCredentials is returned when an email/password pair does not
// match a stored user. Login never reveals which of the two was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(req *models.RegisterRequest) error
	Login(req *models.LoginRequest) (*models.LoginResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user account. Email uniqueness is enforced by the
// storage layer, so a duplicate surfaces as repository.ErrDuplicateEmail even
// under concurrent registrations.
func (s *authService) Register(req *models.RegisterRequest) error {
	hashedPassword, err := hash.Password(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.userRepo.Create(req.Name, req.Email, hashedPassword); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return err
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Login authenticates a user and returns a signed access token.
func (s *authService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !hash.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{AccessToken: token}, nil
}
