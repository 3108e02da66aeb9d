package repository

import (
	"github.com/yukikurage/defect-tracker-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return translateError(r.db.Create(user).Error)
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// List returns every user ordered by ID
func (r *GormUserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Select("id", "email").Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).Find(&users).Error; err != nil {
		return nil, translateError(err)
	}
	return users, nil
}

// UpdateRole sets the role of a user and returns the updated row
func (r *GormUserRepository) UpdateRole(id uint64, role models.Role) (*models.User, error) {
	user, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(user).Update("role", role).Error; err != nil {
		return nil, translateError(err)
	}
	user.Role = role
	return user, nil
}
