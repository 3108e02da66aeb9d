package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/defect-tracker-api/internal/models"
	"github.com/yukikurage/defect-tracker-api/internal/repository"
)

var (
	ErrDefectNotFound           = errors.New("defect not found")
	ErrTitleAndAssigneeRequired = errors.New("title and assigneeId are required")
	ErrTitleRequired            = errors.New("title is required")
	ErrInvalidPriority          = errors.New("invalid priority")
	ErrInvalidStatus            = errors.New("invalid status")
	ErrAssigneeNotFound         = errors.New("assignee does not exist")
	ErrCreateDenied             = errors.New("permission denied: observers cannot create defects")
	ErrUpdateDenied             = errors.New("permission denied: observers cannot update defects")
	ErrDeleteDenied             = errors.New("permission denied: only managers can delete defects")
)

// DefectService handles defect business logic
type DefectService struct {
	defectRepo repository.DefectRepository
}

// NewDefectService creates a new DefectService
func NewDefectService(defectRepo repository.DefectRepository) *DefectService {
	return &DefectService{
		defectRepo: defectRepo,
	}
}

// DefectInput carries every writable defect field. Create and Replace share
// it; Replace stores omitted optional fields as NULL.
type DefectInput struct {
	Title       string
	Description *string
	Priority    models.Priority
	Status      models.DefectStatus
	AssigneeID  *uint64
}

// ListDefects returns every defect with its assignee
func (s *DefectService) ListDefects() ([]models.Defect, error) {
	defects, err := s.defectRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list defects: %w", err)
	}
	return defects, nil
}

// GetDefect returns a single defect with its assignee
func (s *DefectService) GetDefect(id uint64) (*models.Defect, error) {
	defect, err := s.defectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDefectNotFound
		}
		return nil, fmt.Errorf("failed to find defect: %w", err)
	}
	return defect, nil
}

// CreateDefect stores a new defect on behalf of a user with the given role
func (s *DefectService) CreateDefect(actor models.Role, input DefectInput) (*models.Defect, error) {
	if !actor.Can(models.ActionDefectCreate) {
		return nil, ErrCreateDenied
	}

	if strings.TrimSpace(input.Title) == "" || input.AssigneeID == nil || *input.AssigneeID == 0 {
		return nil, ErrTitleAndAssigneeRequired
	}

	defect, err := buildDefect(input)
	if err != nil {
		return nil, err
	}

	if err := s.defectRepo.Create(defect); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, ErrAssigneeNotFound
		}
		return nil, fmt.Errorf("failed to create defect: %w", err)
	}

	return defect, nil
}

// ReplaceDefect overwrites a defect with the given fields
func (s *DefectService) ReplaceDefect(actor models.Role, id uint64, input DefectInput) (*models.Defect, error) {
	if !actor.Can(models.ActionDefectUpdate) {
		return nil, ErrUpdateDenied
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	defect, err := buildDefect(input)
	if err != nil {
		return nil, err
	}
	defect.ID = id

	if err := s.defectRepo.Replace(defect); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrDefectNotFound
		case errors.Is(err, repository.ErrForeignKey):
			return nil, ErrAssigneeNotFound
		default:
			return nil, fmt.Errorf("failed to update defect: %w", err)
		}
	}

	return s.GetDefect(id)
}

// DeleteDefect removes a defect. Only managers may delete.
func (s *DefectService) DeleteDefect(actor models.Role, id uint64) error {
	if !actor.Can(models.ActionDefectDelete) {
		return ErrDeleteDenied
	}

	if err := s.defectRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDefectNotFound
		}
		return fmt.Errorf("failed to delete defect: %w", err)
	}

	return nil
}

// buildDefect validates enum values and applies LOW/NEW defaults
func buildDefect(input DefectInput) (*models.Defect, error) {
	if input.Priority == "" {
		input.Priority = models.PriorityLow
	}
	if !input.Priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	if input.Status == "" {
		input.Status = models.DefectStatusNew
	}
	if !input.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &models.Defect{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      input.Status,
		AssigneeID:  input.AssigneeID,
	}, nil
}
