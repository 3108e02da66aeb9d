package repository

import (
	"github.com/yukikurage/defect-tracker-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// replaceColumns are overwritten by Replace, nil values included.
var replaceColumns = []string{"Title", "Description", "Priority", "Status", "AssigneeID"}

// GormDefectRepository is a GORM implementation of DefectRepository
type GormDefectRepository struct {
	db *gorm.DB
}

// NewDefectRepository creates a new DefectRepository
func NewDefectRepository(db *gorm.DB) DefectRepository {
	return &GormDefectRepository{db: db}
}

// Create creates a new defect
func (r *GormDefectRepository) Create(defect *models.Defect) error {
	return translateError(r.db.Omit(clause.Associations).Create(defect).Error)
}

// FindByID finds a defect by ID with its assignee joined
func (r *GormDefectRepository) FindByID(id uint64) (*models.Defect, error) {
	var defect models.Defect
	if err := r.db.Joins("Assignee").First(&defect, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &defect, nil
}

// List returns every defect with its assignee joined
func (r *GormDefectRepository) List() ([]models.Defect, error) {
	var defects []models.Defect
	err := r.db.
		Joins("Assignee").
		Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: clause.PrimaryKey}}).
		Find(&defects).Error
	if err != nil {
		return nil, translateError(err)
	}
	return defects, nil
}

// Replace overwrites every mutable column of a defect. Concurrent replaces of
// the same row are applied in arrival order.
func (r *GormDefectRepository) Replace(defect *models.Defect) error {
	result := r.db.Model(&models.Defect{}).
		Where("id = ?", defect.ID).
		Select(replaceColumns).
		Omit(clause.Associations).
		Updates(defect)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a defect
func (r *GormDefectRepository) Delete(id uint64) error {
	result := r.db.Delete(&models.Defect{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
