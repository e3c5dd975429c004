package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Job types offered in the listing filters.
const (
	JobTypeFullTime  = "Full Time"
	JobTypePartTime  = "Part Time"
	JobTypeContract  = "Contract"
	JobTypeFreelance = "Freelance"
)

// Job is a listing aggregated from an external job board. Jobs are never
// modified through the API once stored.
type Job struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Company     string    `json:"company" gorm:"size:255;not null;index"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Location    *string   `json:"location" gorm:"size:255"`
	Country     *string   `json:"country" gorm:"size:255;index"`
	JobType     *string   `json:"jobType" gorm:"size:32;index"`
	Salary      *string   `json:"salary" gorm:"size:64"` // Display label, e.g. "$80K - $100K"
	Remote      bool      `json:"remote" gorm:"not null;default:false;index"`
	URL         string    `json:"url" gorm:"size:1024;not null"`
	Source      string    `json:"source" gorm:"size:255;not null"`
	SourceID    string    `json:"sourceId" gorm:"size:255;not null"`
	Category    *string   `json:"category" gorm:"size:255;index"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`

	// Bounds parsed from Salary, used for band filtering and salary sorting.
	SalaryMin decimal.NullDecimal `json:"-" gorm:"type:decimal(20,2);index"`
	SalaryMax decimal.NullDecimal `json:"-" gorm:"type:decimal(20,2)"`
}

// DeriveSalary recomputes SalaryMin and SalaryMax from the display label.
func (j *Job) DeriveSalary() {
	label := ""
	if j.Salary != nil {
		label = *j.Salary
	}
	j.SalaryMin, j.SalaryMax = ParseSalaryRange(label)
}

// SalarySortKey is the amount a job ranks by when sorting on salary.
func (j *Job) SalarySortKey() decimal.Decimal {
	switch {
	case j.SalaryMax.Valid:
		return j.SalaryMax.Decimal
	case j.SalaryMin.Valid:
		return j.SalaryMin.Decimal
	default:
		return decimal.Zero
	}
}

// BeforeSave keeps the salary bounds in step with the label.
func (j *Job) BeforeSave(tx *gorm.DB) error {
	j.DeriveSalary()
	return nil
}

// JobView is a Job annotated for the requesting user.
type JobView struct {
	Job
	IsSaved *bool `json:"isSaved,omitempty"`
}

// NewJobView annotates job with the saved flag.
func NewJobView(job Job, saved bool) JobView {
	return JobView{Job: job, IsSaved: &saved}
}
