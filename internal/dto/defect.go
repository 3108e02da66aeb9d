package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yukikurage/defect-tracker-api/internal/models"
)

// NullableID is a reference to another row. It decodes from a JSON number,
// a numeric string, an empty string or null; the last two decode to no ID.
type NullableID struct {
	Value *uint64
}

// UnmarshalJSON implements json.Unmarshaler
func (id *NullableID) UnmarshalJSON(data []byte) error {
	id.Value = nil

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil
		}
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", raw, err)
	}
	id.Value = &v
	return nil
}

// DefectRequest is the body of create and replace requests
type DefectRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description *string             `json:"description"`
	Priority    models.Priority     `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	Status      models.DefectStatus `json:"status" binding:"omitempty,oneof=NEW IN_PROGRESS UNDER_REVIEW CLOSED CANCELLED"`
	AssigneeID  NullableID          `json:"assigneeId"`
}

// DefectDTO represents a defect in API responses
type DefectDTO struct {
	ID            uint64              `json:"id"`
	Title         string              `json:"title"`
	Description   *string             `json:"description"`
	Priority      models.Priority     `json:"priority"`
	Status        models.DefectStatus `json:"status"`
	AssigneeID    *uint64             `json:"assigneeId"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
	AssigneeEmail *string             `json:"assigneeEmail"`
}

// ToDefectDTO converts a Defect model to DefectDTO
func ToDefectDTO(defect models.Defect) DefectDTO {
	dto := DefectDTO{
		ID:          defect.ID,
		Title:       defect.Title,
		Description: defect.Description,
		Priority:    defect.Priority,
		Status:      defect.Status,
		AssigneeID:  defect.AssigneeID,
		CreatedAt:   defect.CreatedAt,
		UpdatedAt:   defect.UpdatedAt,
	}

	// Include assignee email if joined
	if defect.Assignee != nil && defect.Assignee.Email != "" {
		email := defect.Assignee.Email
		dto.AssigneeEmail = &email
	}

	return dto
}

// ToDefectDTOs converts a slice of defects
func ToDefectDTOs(defects []models.Defect) []DefectDTO {
	items := make([]DefectDTO, len(defects))
	for i, defect := range defects {
		items[i] = ToDefectDTO(defect)
	}
	return items
}
