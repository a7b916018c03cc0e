// Package usecase implements the business logic for the enquiries feature.
package usecase

import "errors"

var (
	// ErrEnquiryNotFound is returned when the referenced enquiry does not exist.
	ErrEnquiryNotFound = errors.New("enquiry not found")

	// ErrValidation wraps intake rejections for a missing or invalid field.
	ErrValidation = errors.New("invalid enquiry")

	// ErrInvalidStatus is returned when a status value is outside the enumerated set.
	ErrInvalidStatus = errors.New("invalid enquiry status")

	// ErrStatusFinal is returned when attempting to move an enquiry out of
	// the terminal REPLIED state.
	ErrStatusFinal = errors.New("enquiry status is final")
)
