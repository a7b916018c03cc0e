// Package entity defines the domain entities for the enquiries feature.
package entity

import "time"

// Type distinguishes who submitted the enquiry.
type Type string

const (
	// TypeCandidate is a job seeker's application or general enquiry.
	TypeCandidate Type = "CANDIDATE"

	// TypeEmployer is a hiring enquiry from a prospective client company.
	TypeEmployer Type = "EMPLOYER"
)

// Status tracks an enquiry through its review lifecycle.
type Status string

const (
	StatusPending      Status = "PENDING"
	StatusReviewing    Status = "REVIEWING"
	StatusInterviewing Status = "INTERVIEWING"
	StatusShortlisted  Status = "SHORTLISTED"
	StatusOffered      Status = "OFFERED"
	StatusRejected     Status = "REJECTED"
	StatusArchived     Status = "ARCHIVED"

	// StatusReplied is terminal: an administrator has responded and the
	// enquiry leaves the review pipeline for good.
	StatusReplied Status = "REPLIED"
)

// ValidStatus reports whether s is one of the enumerated lifecycle values.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusReviewing, StatusInterviewing, StatusShortlisted,
		StatusOffered, StatusRejected, StatusArchived, StatusReplied:
		return true
	}
	return false
}

// Enquiry is a candidate or employer submission from the public site.
// It is created by a form submission and only ever mutated by an
// administrator changing its status.
type Enquiry struct {
	// ID is the unique identifier for the enquiry.
	ID uint `gorm:"primaryKey" json:"id"`

	// Reference is the public identifier handed back to the submitter.
	Reference string `gorm:"uniqueIndex;size:36;not null" json:"reference"`

	// Type records whether a candidate or an employer submitted the enquiry.
	Type Type `gorm:"size:16;not null;index" json:"type"`

	// Subject is the context the form was submitted from (role applied for,
	// service requested, and so on).
	Subject string `gorm:"size:255" json:"subject"`

	// Name, Email, and Message are the required submitter fields.
	Name    string `gorm:"size:255;not null" json:"name"`
	Email   string `gorm:"size:255;not null;index" json:"email"`
	Message string `gorm:"type:text;not null" json:"message"`

	// Company is set on employer enquiries.
	Company string `gorm:"size:255" json:"company,omitempty"`

	// Priority is an optional urgency hint from employer forms.
	Priority string `gorm:"size:32" json:"priority,omitempty"`

	// Experience is an optional free-text summary from candidate forms.
	Experience string `gorm:"size:255" json:"experience,omitempty"`

	// DocumentName and DocumentData hold the attached resume: the original
	// filename and the payload encoded as text. Required for candidates.
	DocumentName string `gorm:"size:255" json:"documentName,omitempty"`
	DocumentData string `gorm:"type:text" json:"documentData,omitempty"`

	// Status is where the enquiry sits in the review lifecycle.
	Status Status `gorm:"size:16;not null;default:'PENDING';index" json:"status"`

	// CreatedAt is the submission timestamp.
	CreatedAt time.Time `json:"createdAt"`

	UpdatedAt time.Time `json:"updatedAt"`
}
