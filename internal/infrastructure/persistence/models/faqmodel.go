package models

import (
	"time"
)

// FAQModel is the GORM model for faqs table
type FAQModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	SID       string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Question  string    `gorm:"column:question;type:text;not null"`
	Answer    string    `gorm:"column:answer;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (FAQModel) TableName() string {
	return "faqs"
}
