package models

import (
	"time"

	"gorm.io/datatypes"
)

// ApplicationModel is the GORM model for applications table
type ApplicationModel struct {
	ID        uint           `gorm:"primaryKey;autoIncrement"`
	SID       string         `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Name      string         `gorm:"column:name;type:varchar(100);not null"`
	Email     string         `gorm:"column:email;type:varchar(255);not null;index"`
	Answers   datatypes.JSON `gorm:"column:answers"`
	Status    string         `gorm:"column:status;type:varchar(20);not null;default:'pending';index"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (ApplicationModel) TableName() string {
	return "applications"
}
