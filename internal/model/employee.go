package model

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	RowID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ID           int64     `gorm:"uniqueIndex;not null" json:"id"`
	FullName     string    `gorm:"not null" json:"fullName"`
	Trade        string    `json:"trade"`
	EmployeeCode string    `json:"employeeCode"`
	UserID       int64     `gorm:"index" json:"userId"`
	CompanyID    int64     `gorm:"index" json:"companyId"`
	Status       string    `gorm:"not null;default:active" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}
