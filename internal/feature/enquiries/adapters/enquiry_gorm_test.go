package adapters

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recruit_backend/internal/feature/enquiries/domain/entity"
	"recruit_backend/internal/feature/enquiries/usecase"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	require.NoError(t, db.AutoMigrate(&entity.Enquiry{}), "failed to migrate table")
	return db
}

func seedEnquiry(t *testing.T, repo *enquiryGorm, typ entity.Type, email string) *entity.Enquiry {
	t.Helper()

	e := &entity.Enquiry{
		Reference: uuid.NewString(),
		Type:      typ,
		Name:      "A",
		Email:     email,
		Message:   "hi",
		Status:    entity.StatusPending,
	}
	require.NoError(t, repo.Create(context.Background(), e))
	return e
}

func TestEnquiryRepository_FindAll(t *testing.T) {
	t.Run("filters by submitter email", func(t *testing.T) {
		repo := NewEnquiryRepository(setupTestDB(t))
		seedEnquiry(t, repo, entity.TypeCandidate, "a@x.com")
		seedEnquiry(t, repo, entity.TypeCandidate, "b@x.com")

		out, err := repo.FindAll(context.Background(), usecase.Filter{Email: "a@x.com"})

		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "a@x.com", out[0].Email)
	})

	t.Run("filters by type", func(t *testing.T) {
		repo := NewEnquiryRepository(setupTestDB(t))
		seedEnquiry(t, repo, entity.TypeCandidate, "a@x.com")
		seedEnquiry(t, repo, entity.TypeEmployer, "hr@corp.com")

		out, err := repo.FindAll(context.Background(), usecase.Filter{Type: entity.TypeEmployer})

		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, entity.TypeEmployer, out[0].Type)
	})

	t.Run("no filter returns everything", func(t *testing.T) {
		repo := NewEnquiryRepository(setupTestDB(t))
		seedEnquiry(t, repo, entity.TypeCandidate, "a@x.com")
		seedEnquiry(t, repo, entity.TypeEmployer, "hr@corp.com")

		out, err := repo.FindAll(context.Background(), usecase.Filter{})

		require.NoError(t, err)
		assert.Len(t, out, 2)
	})
}

func TestEnquiryRepository_UpdateStatus(t *testing.T) {
	t.Run("persists the new status", func(t *testing.T) {
		repo := NewEnquiryRepository(setupTestDB(t))
		e := seedEnquiry(t, repo, entity.TypeCandidate, "a@x.com")

		updated, err := repo.UpdateStatus(context.Background(), e.ID, entity.StatusOffered)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusOffered, updated.Status)

		// Reflected in a subsequent read.
		reloaded, err := repo.FindByID(context.Background(), e.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusOffered, reloaded.Status)
	})

	t.Run("unknown id yields ErrEnquiryNotFound", func(t *testing.T) {
		repo := NewEnquiryRepository(setupTestDB(t))

		_, err := repo.UpdateStatus(context.Background(), 999, entity.StatusReviewing)

		assert.ErrorIs(t, err, usecase.ErrEnquiryNotFound)
	})
}

func TestEnquiryRepository_FindByID(t *testing.T) {
	repo := NewEnquiryRepository(setupTestDB(t))

	_, err := repo.FindByID(context.Background(), 999)

	assert.ErrorIs(t, err, usecase.ErrEnquiryNotFound)
}
