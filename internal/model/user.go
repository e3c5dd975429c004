package model

import "time"

// Supported UI languages.
const (
	LanguageEnglish = "en"
	LanguageArabic  = "ar"
)

// User represents a registered JobHub member.
type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Username          string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Password          string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Email             string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	FirstName         *string   `json:"firstName" gorm:"size:255"`
	LastName          *string   `json:"lastName" gorm:"size:255"`
	Avatar            *string   `json:"avatar" gorm:"size:1024"`
	PreferredLanguage string    `json:"preferredLanguage" gorm:"size:8;not null;default:'en'"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`
}
