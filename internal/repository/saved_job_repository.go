package repository

import (
	"context"

	"gorm.io/gorm"

	"jobhub/internal/model"
	"jobhub/internal/query"
)

type savedJobRepository struct {
	db *gorm.DB
}

// NewSavedJobRepository creates a new saved job repository.
func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &savedJobRepository{db: db}
}

// Create inserts a bookmark. The idx_user_job unique index rejects a second
// row for the same pair.
func (r *savedJobRepository) Create(ctx context.Context, saved *model.SavedJob) error {
	return translate(r.db.WithContext(ctx).Create(saved).Error)
}

// Delete removes the bookmark if present.
func (r *savedJobRepository) Delete(ctx context.Context, userID, jobID uint) error {
	return translate(r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&model.SavedJob{}).Error)
}

func (r *savedJobRepository) Exists(ctx context.Context, userID, jobID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SavedJob{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *savedJobRepository) SavedJobIDs(ctx context.Context, userID uint, jobIDs []uint) (map[uint]bool, error) {
	saved := make(map[uint]bool, len(jobIDs))
	if len(jobIDs) == 0 {
		return saved, nil
	}

	var found []uint
	err := r.db.WithContext(ctx).Model(&model.SavedJob{}).
		Where("user_id = ? AND job_id IN ?", userID, jobIDs).
		Pluck("job_id", &found).Error
	if err != nil {
		return nil, translate(err)
	}
	for _, id := range found {
		saved[id] = true
	}
	return saved, nil
}

func (r *savedJobRepository) ListJobs(ctx context.Context, userID uint, page query.Pagination) (model.Page[model.Job], error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.Job{}).
			Joins("JOIN saved_jobs ON saved_jobs.job_id = jobs.id").
			Where("saved_jobs.user_id = ?", userID)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return model.Page[model.Job]{}, translate(err)
	}

	var jobs []model.Job
	err := base().
		Select("jobs.*").
		Order("saved_jobs.created_at DESC").
		Order("saved_jobs.id DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&jobs).Error
	if err != nil {
		return model.Page[model.Job]{}, translate(err)
	}

	return model.NewPage(jobs, total, page.Page, page.Limit), nil
}
