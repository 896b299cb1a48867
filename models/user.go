package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string
	// Profile metadata collected at signup; height/weight arrive from the app
	// as free-form strings and are stored as entered.
	BirthDate      string // YYYY-MM-DD
	Gender         string
	MedicalHistory string
	Height         string
	Weight         string
	AvatarURL      string
	ResetToken     string
	ResetTokenExp  time.Time
}
