// Package adapters provides the repository implementations for the enquiries feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recruit_backend/internal/feature/enquiries/domain/entity"
	"recruit_backend/internal/feature/enquiries/usecase"
)

// enquiryGorm is the GORM-backed implementation of the EnquiryRepository interface.
type enquiryGorm struct {
	db *gorm.DB
}

var _ usecase.EnquiryRepository = (*enquiryGorm)(nil)

// NewEnquiryRepository creates an enquiryGorm bound to the given connection.
func NewEnquiryRepository(db *gorm.DB) *enquiryGorm {
	return &enquiryGorm{db: db}
}

// Create inserts an enquiry record.
func (r *enquiryGorm) Create(ctx context.Context, e *entity.Enquiry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// FindAll returns enquiries matching the filter, newest first.
func (r *enquiryGorm) FindAll(ctx context.Context, filter usecase.Filter) ([]entity.Enquiry, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.Email != "" {
		q = q.Where("email = ?", filter.Email)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	var enquiries []entity.Enquiry
	if err := q.Find(&enquiries).Error; err != nil {
		return nil, err
	}
	return enquiries, nil
}

// FindByID retrieves a single enquiry.
func (r *enquiryGorm) FindByID(ctx context.Context, id uint) (*entity.Enquiry, error) {
	var e entity.Enquiry
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrEnquiryNotFound
		}
		return nil, err
	}
	return &e, nil
}

// UpdateStatus sets the status field and reloads the enquiry.
func (r *enquiryGorm) UpdateStatus(ctx context.Context, id uint, status entity.Status) (*entity.Enquiry, error) {
	res := r.db.WithContext(ctx).Model(&entity.Enquiry{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrEnquiryNotFound
	}

	return r.FindByID(ctx, id)
}
