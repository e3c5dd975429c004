package model

import "time"

// JobSource is a job board or career page submitted for listing. Only approved
// sources are shown publicly.
type JobSource struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"size:255;not null"`
	URL            string    `json:"url" gorm:"size:1024;not null"`
	Category       string    `json:"category" gorm:"size:255;not null"`
	Description    *string   `json:"description" gorm:"type:text"`
	SubmitterEmail *string   `json:"submitterEmail" gorm:"size:255"`
	Approved       bool      `json:"approved" gorm:"not null;default:false;index"`
	CreatedAt      time.Time `json:"createdAt" gorm:"index"`
}
