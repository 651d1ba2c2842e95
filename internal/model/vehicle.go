package model

import "time"

type Vehicle struct {
	RowID       uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ID          int64     `gorm:"uniqueIndex;not null" json:"id"`
	VehicleCode string    `gorm:"not null" json:"vehicleCode"`
	CompanyID   int64     `gorm:"index" json:"companyId"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
}
