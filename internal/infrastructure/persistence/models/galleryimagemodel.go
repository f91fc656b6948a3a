package models

import (
	"time"
)

// GalleryImageModel is the GORM model for gallery_images table
type GalleryImageModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	SID       string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Title     string    `gorm:"column:title;type:varchar(200)"`
	ImageURL  string    `gorm:"column:image_url;type:varchar(500);not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (GalleryImageModel) TableName() string {
	return "gallery_images"
}
