package models

import (
	"time"
)

// AdminModel is the GORM model for admins table
type AdminModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	SID          string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Name         string    `gorm:"column:name;type:varchar(100);not null"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	ContactNo    string    `gorm:"column:contact_no;type:varchar(30)"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (AdminModel) TableName() string {
	return "admins"
}
