package models

import "time"

type Role string

const (
	RoleEngineer Role = "ENGINEER"
	RoleManager  Role = "MANAGER"
	RoleObserver Role = "OBSERVER"
)

// Roles lists every role a user may hold.
var Roles = []Role{RoleEngineer, RoleManager, RoleObserver}

// IsValid reports whether r is one of the predefined roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleEngineer, RoleManager, RoleObserver:
		return true
	default:
		return false
	}
}

// User is stored in the case-sensitive "User" table.
type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'ENGINEER'" json:"role"`
	CreatedAt    time.Time `gorm:"column:createdAt" json:"createdAt"`
}

func (User) TableName() string {
	return "User"
}
