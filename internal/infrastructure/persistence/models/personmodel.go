package models

import (
	"time"
)

// PersonModel is the GORM model for people table
type PersonModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	SID       string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Name      string    `gorm:"column:name;type:varchar(100);not null"`
	Category  string    `gorm:"column:category;type:varchar(30);not null;index"`
	Role      string    `gorm:"column:role;type:varchar(100)"`
	ImageURL  string    `gorm:"column:image_url;type:varchar(500)"`
	LinkedIn  string    `gorm:"column:linkedin;type:varchar(255)"`
	GitHub    string    `gorm:"column:github;type:varchar(255)"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (PersonModel) TableName() string {
	return "people"
}
