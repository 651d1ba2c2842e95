package model

// Flat reference-data tables served by the master-data endpoints.

type Trade struct {
	RowID uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	ID    int64  `gorm:"uniqueIndex;not null" json:"id"`
	Name  string `gorm:"not null" json:"name"`
}

type Material struct {
	RowID uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	ID    int64  `gorm:"uniqueIndex;not null" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Unit  string `json:"unit"`
}

type Tool struct {
	RowID uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	ID    int64  `gorm:"uniqueIndex;not null" json:"id"`
	Name  string `gorm:"not null" json:"name"`
}

type Client struct {
	RowID     uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	ID        int64  `gorm:"uniqueIndex;not null" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	CompanyID int64  `gorm:"index" json:"companyId"`
}
