package model

import "time"

type Project struct {
	RowID       uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ID          int64     `gorm:"uniqueIndex;not null" json:"id"`
	ProjectName string    `gorm:"not null" json:"projectName"`
	CompanyID   int64     `gorm:"index" json:"companyId"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
}
