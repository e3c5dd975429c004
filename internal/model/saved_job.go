package model

import "time"

// SavedJob is a user's bookmark on a job. At most one row exists per user and job.
type SavedJob struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index;uniqueIndex:idx_user_job"`
	JobID     uint      `json:"jobId" gorm:"not null;index;uniqueIndex:idx_user_job"`
	CreatedAt time.Time `json:"createdAt"`
}
