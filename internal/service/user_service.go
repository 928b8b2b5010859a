package service

import (
	"fmt"

	"wokane-be/internal/entities"
	"wokane-be/internal/hash"
	"wokane-be/internal/models"
	"wokane-be/internal/repository"
)

// UserService defines the interface for user management business logic
type UserService interface {
	FindAll() ([]*entities.User, error)
	FindByID(id string) (*entities.User, error)
	Update(id string, req *models.UpdateUserRequest) (*entities.User, error)
	Delete(id string) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) FindAll() ([]*entities.User, error) {
	return s.userRepo.FindAll()
}

func (s *userService) FindByID(id string) (*entities.User, error) {
	return s.userRepo.FindByID(id)
}

// Update applies a partial profile update. A password in the patch is
// re-hashed before it reaches the repository; a changed email is re-checked
// for uniqueness by the storage layer.
func (s *userService) Update(id string, req *models.UpdateUserRequest) (*entities.User, error) {
	var passwordHash *string
	if req.Password != nil {
		hashed, err := hash.Password(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		passwordHash = &hashed
	}

	return s.userRepo.Update(id, req.Name, req.Email, passwordHash)
}

func (s *userService) Delete(id string) error {
	return s.userRepo.Delete(id)
}
