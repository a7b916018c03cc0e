package usecase

import (
	"context"
	"time"

	"recruit_backend/internal/feature/jobs/domain/entity"
)

// JobRepository abstracts the persistence layer for job postings.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type JobRepository interface {
	// FindAll returns postings ordered by posting date descending.
	// Archived postings are excluded unless includeArchived is set.
	FindAll(ctx context.Context, includeArchived bool) ([]entity.Job, error)

	// Create persists a new posting.
	Create(ctx context.Context, job *entity.Job) error

	// SetArchived updates the archived flag and returns the updated posting.
	SetArchived(ctx context.Context, id uint, archived bool) (*entity.Job, error)

	// Delete permanently removes a posting.
	// It returns ErrJobNotFound when the id does not exist.
	Delete(ctx context.Context, id uint) error
}

// jobUsecase implements the job posting business logic.
type jobUsecase struct {
	jobs JobRepository
}

// NewJobUsecase creates a new jobUsecase instance.
func NewJobUsecase(jobs JobRepository) *jobUsecase {
	return &jobUsecase{jobs: jobs}
}

// List returns postings for the public site or the admin dashboard.
func (u *jobUsecase) List(ctx context.Context, includeArchived bool) ([]entity.Job, error) {
	return u.jobs.FindAll(ctx, includeArchived)
}

// Create publishes a new posting, stamping the posting date.
func (u *jobUsecase) Create(ctx context.Context, job *entity.Job) error {
	job.PostedAt = time.Now()
	job.IsArchived = false
	return u.jobs.Create(ctx, job)
}

// Archive toggles the archived flag without deleting the posting.
func (u *jobUsecase) Archive(ctx context.Context, id uint, archived bool) (*entity.Job, error) {
	return u.jobs.SetArchived(ctx, id, archived)
}

// Delete permanently removes a posting.
func (u *jobUsecase) Delete(ctx context.Context, id uint) error {
	return u.jobs.Delete(ctx, id)
}
