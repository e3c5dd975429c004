package repository

import (
	"context"

	"gorm.io/gorm"

	"jobhub/internal/model"
	"jobhub/internal/query"
)

type jobSourceRepository struct {
	db *gorm.DB
}

// NewJobSourceRepository creates a new job source repository.
func NewJobSourceRepository(db *gorm.DB) JobSourceRepository {
	return &jobSourceRepository{db: db}
}

func (r *jobSourceRepository) Create(ctx context.Context, source *model.JobSource) error {
	return translate(r.db.WithContext(ctx).Create(source).Error)
}

func (r *jobSourceRepository) FindByID(ctx context.Context, id uint) (*model.JobSource, error) {
	var source model.JobSource
	if err := r.db.WithContext(ctx).First(&source, id).Error; err != nil {
		return nil, translate(err)
	}
	return &source, nil
}

// ListApproved pages through approved sources, newest first.
func (r *jobSourceRepository) ListApproved(ctx context.Context, page query.Pagination) (model.Page[model.JobSource], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.JobSource{}).Where("approved = ?", true).Count(&total).Error; err != nil {
		return model.Page[model.JobSource]{}, translate(err)
	}

	var sources []model.JobSource
	err := r.db.WithContext(ctx).
		Where("approved = ?", true).
		Order("created_at DESC").
		Order("id DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&sources).Error
	if err != nil {
		return model.Page[model.JobSource]{}, translate(err)
	}

	return model.NewPage(sources, total, page.Page, page.Limit), nil
}
