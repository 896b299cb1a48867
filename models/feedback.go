package models

import "gorm.io/gorm"

// Feedback submitted from the in-app feedback modal.
type Feedback struct {
	gorm.Model
	UserID  uint   `gorm:"index"`
	Message string `gorm:"not null"`
}
