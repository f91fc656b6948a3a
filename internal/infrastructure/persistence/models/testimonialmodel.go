package models

import (
	"time"
)

// TestimonialModel is the GORM model for testimonials table
type TestimonialModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	SID        string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	ClientName string    `gorm:"column:client_name;type:varchar(100);not null"`
	Quote      string    `gorm:"column:quote;type:text;not null"`
	ImageURL   string    `gorm:"column:image_url;type:varchar(500)"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (TestimonialModel) TableName() string {
	return "testimonials"
}
