package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/defect-tracker-api/internal/constants"
	"github.com/yukikurage/defect-tracker-api/internal/models"
	"github.com/yukikurage/defect-tracker-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAndPasswordRequired = errors.New("email and password are required")
	ErrEmailTaken               = errors.New("user with this email already exists")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrInvalidRole              = errors.New("invalid role specified")
	ErrUserNotFound             = errors.New("user not found")
	ErrFailedToHashPassword     = errors.New("failed to hash password")
	ErrFailedToCreateUser       = errors.New("failed to create user")
)

// AuthService handles registration and login.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// RegisterInput represents the information needed to create a user.
type RegisterInput struct {
	Email    string
	Password string
	Role     models.Role
}

// Register creates a new user. The role supplied by the caller is trusted;
// ENGINEER is used when none is given.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, ErrEmailAndPasswordRequired
	}

	role := input.Role
	if role == "" {
		role = models.RoleEngineer
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), constants.BcryptCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateUser, err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and issues a bearer token. Unknown emails and
// wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(input LoginInput) (string, *models.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return "", nil, ErrEmailAndPasswordRequired
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
