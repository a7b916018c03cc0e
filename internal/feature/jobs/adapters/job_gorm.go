// Package adapters provides the repository implementations for the jobs feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recruit_backend/internal/feature/jobs/domain/entity"
	"recruit_backend/internal/feature/jobs/usecase"
)

// jobGorm is the GORM-backed implementation of the JobRepository interface.
type jobGorm struct {
	db *gorm.DB
}

var _ usecase.JobRepository = (*jobGorm)(nil)

// NewJobRepository creates a jobGorm bound to the given connection.
func NewJobRepository(db *gorm.DB) *jobGorm {
	return &jobGorm{db: db}
}

// FindAll returns postings newest first, hiding archived rows unless asked.
func (r *jobGorm) FindAll(ctx context.Context, includeArchived bool) ([]entity.Job, error) {
	q := r.db.WithContext(ctx).Order("posted_at DESC")
	if !includeArchived {
		q = q.Where("is_archived = ?", false)
	}

	var jobs []entity.Job
	if err := q.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Create inserts a posting record.
func (r *jobGorm) Create(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// SetArchived updates the archived flag and reloads the posting.
func (r *jobGorm) SetArchived(ctx context.Context, id uint, archived bool) (*entity.Job, error) {
	res := r.db.WithContext(ctx).Model(&entity.Job{}).Where("id = ?", id).Update("is_archived", archived)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrJobNotFound
	}

	var job entity.Job
	if err := r.db.WithContext(ctx).First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// Delete permanently removes a posting.
func (r *jobGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Job{}, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return usecase.ErrJobNotFound
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrJobNotFound
	}
	return nil
}
