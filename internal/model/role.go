package model

import "time"

type Role struct {
	RowID        uint         `gorm:"primaryKey;autoIncrement" json:"-"`
	ID           int64        `gorm:"uniqueIndex;not null" json:"id"`
	Name         string       `gorm:"not null" json:"name"`
	Level        int          `gorm:"not null" json:"level"`
	IsSystemRole bool         `gorm:"default:true" json:"isSystemRole"`
	Permissions  []Permission `gorm:"-" json:"permissions,omitempty"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"-"`
}
