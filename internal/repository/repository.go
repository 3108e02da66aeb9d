package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yukikurage/defect-tracker-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateKey is returned when a unique constraint is violated.
	ErrDuplicateKey = errors.New("repository: duplicate key")
	// ErrForeignKey is returned when a foreign key constraint is violated.
	ErrForeignKey = errors.New("repository: foreign key violation")
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// List returns every user ordered by ID
	List() ([]models.User, error)

	// UpdateRole sets the role of a user and returns the updated row
	UpdateRole(id uint64, role models.Role) (*models.User, error)
}

// DefectRepository defines the interface for defect data access
type DefectRepository interface {
	// Create creates a new defect
	Create(defect *models.Defect) error

	// FindByID finds a defect by ID with its assignee joined
	FindByID(id uint64) (*models.Defect, error)

	// List returns every defect with its assignee joined
	List() ([]models.Defect, error)

	// Replace overwrites every mutable column of a defect
	Replace(defect *models.Defect) error

	// Delete removes a defect
	Delete(id uint64) error
}

// translateError maps driver and GORM errors onto repository errors.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Join(ErrDuplicateKey, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errors.Join(ErrForeignKey, err)
	case errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation:
		return errors.Join(ErrDuplicateKey, err)
	case errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation:
		return errors.Join(ErrForeignKey, err)
	default:
		return err
	}
}
