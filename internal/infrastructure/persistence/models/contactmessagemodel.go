package models

import (
	"time"
)

// ContactMessageModel is the GORM model for contact_messages table
type ContactMessageModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	SID       string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Name      string    `gorm:"column:name;type:varchar(100);not null"`
	Email     string    `gorm:"column:email;type:varchar(255);not null"`
	Message   string    `gorm:"column:message;type:text;not null"`
	Read      bool      `gorm:"column:read;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for GORM
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}
