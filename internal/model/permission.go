package model

import "time"

type Permission struct {
	RowID     uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ID        int64     `gorm:"uniqueIndex;not null" json:"id"`
	Module    string    `gorm:"not null" json:"module"`
	Action    string    `gorm:"not null" json:"action"`
	Code      string    `gorm:"uniqueIndex;not null" json:"code"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

// RolePermission links a role to a permission by their numeric ids.
type RolePermission struct {
	RowID        uint  `gorm:"primaryKey;autoIncrement" json:"-"`
	RoleID       int64 `gorm:"not null;index;uniqueIndex:idx_role_permission" json:"roleId"`
	PermissionID int64 `gorm:"not null;uniqueIndex:idx_role_permission" json:"permissionId"`
}
