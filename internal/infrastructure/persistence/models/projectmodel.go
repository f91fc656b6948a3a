package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProjectModel is the GORM model for projects table
type ProjectModel struct {
	ID          uint           `gorm:"primaryKey;autoIncrement"`
	SID         string         `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Title       string         `gorm:"column:title;type:varchar(200);not null"`
	Description string         `gorm:"column:description;type:text"`
	Link        string         `gorm:"column:link;type:varchar(500)"`
	ImageURL    string         `gorm:"column:image_url;type:varchar(500)"`
	TeamMembers datatypes.JSON `gorm:"column:team_members"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}
