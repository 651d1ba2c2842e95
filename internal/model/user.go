package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a login account. Company-level records (employees, company users)
// reference each other by numeric ids; login accounts are keyed by uuid.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"not null" json:"-"`
	Name           string    `gorm:"not null" json:"name"`
	CompanyUserID  *int64    `json:"companyUserId,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"-"`
}
