package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"recruit_backend/internal/feature/jobs/domain/entity"
)

// mockJobRepository is a mock implementation of the JobRepository interface.
type mockJobRepository struct {
	FindAllFunc     func(ctx context.Context, includeArchived bool) ([]entity.Job, error)
	CreateFunc      func(ctx context.Context, job *entity.Job) error
	SetArchivedFunc func(ctx context.Context, id uint, archived bool) (*entity.Job, error)
	DeleteFunc      func(ctx context.Context, id uint) error
}

func (m *mockJobRepository) FindAll(ctx context.Context, includeArchived bool) ([]entity.Job, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, includeArchived)
	}
	return nil, nil
}

func (m *mockJobRepository) Create(ctx context.Context, job *entity.Job) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, job)
	}
	return nil
}

func (m *mockJobRepository) SetArchived(ctx context.Context, id uint, archived bool) (*entity.Job, error) {
	if m.SetArchivedFunc != nil {
		return m.SetArchivedFunc(ctx, id, archived)
	}
	return nil, ErrJobNotFound
}

func (m *mockJobRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return ErrJobNotFound
}

func TestJobUsecase_Create(t *testing.T) {
	t.Run("stamps the posting date and clears the archived flag", func(t *testing.T) {
		var stored *entity.Job
		repo := &mockJobRepository{
			CreateFunc: func(ctx context.Context, job *entity.Job) error {
				stored = job
				return nil
			},
		}

		uc := NewJobUsecase(repo)
		before := time.Now()
		err := uc.Create(context.Background(), &entity.Job{Title: "Engineer", Company: "Shakti", Location: "Rajkot", IsArchived: true})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored == nil {
			t.Fatal("expected job to be stored")
		}
		if stored.PostedAt.Before(before) {
			t.Error("PostedAt was not stamped")
		}
		if stored.IsArchived {
			t.Error("new postings must not start archived")
		}
	})
}

func TestJobUsecase_List(t *testing.T) {
	t.Run("passes the includeArchived flag through", func(t *testing.T) {
		var got bool
		repo := &mockJobRepository{
			FindAllFunc: func(ctx context.Context, includeArchived bool) ([]entity.Job, error) {
				got = includeArchived
				return []entity.Job{}, nil
			},
		}

		uc := NewJobUsecase(repo)
		if _, err := uc.List(context.Background(), true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got {
			t.Error("expected includeArchived to be forwarded")
		}
	})
}

func TestJobUsecase_Delete(t *testing.T) {
	t.Run("propagates ErrJobNotFound", func(t *testing.T) {
		uc := NewJobUsecase(&mockJobRepository{})
		err := uc.Delete(context.Background(), 42)

		if !errors.Is(err, ErrJobNotFound) {
			t.Errorf("expected ErrJobNotFound, got %v", err)
		}
	})
}
