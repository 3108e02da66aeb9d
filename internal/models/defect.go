package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

type DefectStatus string

const (
	DefectStatusNew         DefectStatus = "NEW"
	DefectStatusInProgress  DefectStatus = "IN_PROGRESS"
	DefectStatusUnderReview DefectStatus = "UNDER_REVIEW"
	DefectStatusClosed      DefectStatus = "CLOSED"
	DefectStatusCancelled   DefectStatus = "CANCELLED"
)

func (s DefectStatus) IsValid() bool {
	switch s {
	case DefectStatusNew, DefectStatusInProgress, DefectStatusUnderReview, DefectStatusClosed, DefectStatusCancelled:
		return true
	default:
		return false
	}
}

// Defect is stored in the case-sensitive "Defect" table. AssigneeID is only
// checked by the foreign key the store enforces.
type Defect struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Title       string       `gorm:"not null" json:"title"`
	Description *string      `gorm:"type:text" json:"description"`
	Priority    Priority     `gorm:"type:varchar(20);not null;default:'LOW'" json:"priority"`
	Status      DefectStatus `gorm:"type:varchar(20);not null;default:'NEW'" json:"status"`
	AssigneeID  *uint64      `gorm:"column:assigneeId;index" json:"assigneeId"`
	CreatedAt   time.Time    `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt   time.Time    `gorm:"column:updatedAt" json:"updatedAt"`

	// Relations
	Assignee *User `gorm:"foreignKey:AssigneeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}

func (Defect) TableName() string {
	return "Defect"
}
