package model

import "time"

const RoleWorker = "worker"

// CompanyUser is a company-scoped account record. Employees point at it via
// UserID; the "worker" role is what qualifies an employee for assignment.
type CompanyUser struct {
	RowID     uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ID        int64     `gorm:"uniqueIndex;not null" json:"userId"`
	FullName  string    `json:"fullName"`
	Role      string    `gorm:"not null;index" json:"role"`
	Status    string    `gorm:"not null;default:active" json:"status"`
	CompanyID int64     `gorm:"index" json:"companyId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}
