package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/defect-tracker-api/internal/models"
	"github.com/yukikurage/defect-tracker-api/internal/repository"
)

// UserService exposes the user directory and role self-service.
type UserService struct {
	userRepo repository.UserRepository
	tokens   *TokenService
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, tokens *TokenService) *UserService {
	return &UserService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// ListUsers returns every user. Callers only expose id and email.
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ChangeRole sets the caller's own role and returns a token carrying it.
// Tokens issued before the change stay valid until they expire.
func (s *UserService) ChangeRole(userID uint64, role models.Role) (*models.User, string, error) {
	if !role.IsValid() {
		return nil, "", ErrInvalidRole
	}

	user, err := s.userRepo.UpdateRole(userID, role)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", fmt.Errorf("failed to update role: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
