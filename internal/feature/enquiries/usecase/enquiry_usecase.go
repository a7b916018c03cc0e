package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"recruit_backend/internal/feature/enquiries/domain/entity"
)

// Filter narrows an enquiry listing. Zero values mean "no constraint".
type Filter struct {
	// Email restricts results to a single submitter address.
	Email string

	// Type restricts results to candidate or employer enquiries.
	Type entity.Type
}

// EnquiryRepository abstracts the persistence layer for enquiries.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type EnquiryRepository interface {
	// Create persists a new enquiry.
	Create(ctx context.Context, e *entity.Enquiry) error

	// FindAll returns enquiries matching the filter, newest first.
	FindAll(ctx context.Context, filter Filter) ([]entity.Enquiry, error)

	// FindByID retrieves a single enquiry.
	FindByID(ctx context.Context, id uint) (*entity.Enquiry, error)

	// UpdateStatus sets the status and returns the updated enquiry.
	UpdateStatus(ctx context.Context, id uint, status entity.Status) (*entity.Enquiry, error)
}

// enquiryUsecase implements the enquiry intake and administration logic.
type enquiryUsecase struct {
	enquiries EnquiryRepository
}

// NewEnquiryUsecase creates a new enquiryUsecase instance.
func NewEnquiryUsecase(enquiries EnquiryRepository) *enquiryUsecase {
	return &enquiryUsecase{enquiries: enquiries}
}

// Submit validates and persists a public form submission.
// Candidates must attach a document; every enquiry starts PENDING with a
// server-generated reference.
func (u *enquiryUsecase) Submit(ctx context.Context, e *entity.Enquiry) error {
	if err := validateSubmission(e); err != nil {
		return err
	}

	e.Email = strings.ToLower(strings.TrimSpace(e.Email))
	e.Reference = uuid.NewString()
	e.Status = entity.StatusPending
	return u.enquiries.Create(ctx, e)
}

func validateSubmission(e *entity.Enquiry) error {
	if e.Type != entity.TypeCandidate && e.Type != entity.TypeEmployer {
		return fmt.Errorf("%w: type must be %s or %s", ErrValidation, entity.TypeCandidate, entity.TypeEmployer)
	}
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(e.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	if e.Type == entity.TypeCandidate && e.DocumentData == "" {
		return fmt.Errorf("%w: candidate enquiries require an attached document", ErrValidation)
	}
	return nil
}

// List returns enquiries matching the filter, newest first.
func (u *enquiryUsecase) List(ctx context.Context, filter Filter) ([]entity.Enquiry, error) {
	return u.enquiries.FindAll(ctx, filter)
}

// UpdateStatus moves an enquiry to a new lifecycle value.
// Any transition between enumerated values is allowed, except that
// REPLIED is terminal and cannot be left.
func (u *enquiryUsecase) UpdateStatus(ctx context.Context, id uint, status entity.Status) (*entity.Enquiry, error) {
	if !entity.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	current, err := u.enquiries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == entity.StatusReplied && status != entity.StatusReplied {
		return nil, ErrStatusFinal
	}

	return u.enquiries.UpdateStatus(ctx, id, status)
}
