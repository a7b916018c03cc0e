// Package entity defines the domain entities for the jobs feature.
package entity

import "time"

// Job represents a published job posting.
// Postings are created by administrators and read by the public listing;
// archiving soft-hides a posting without deleting it.
type Job struct {
	// ID is the unique identifier for the posting.
	ID uint `gorm:"primaryKey" json:"id"`

	// Title is the role being advertised.
	Title string `gorm:"size:255;not null" json:"title"`

	// Company is the hiring company's name.
	Company string `gorm:"size:255;not null" json:"company"`

	// Location is the place of work.
	Location string `gorm:"size:255;not null" json:"location"`

	// Industry classifies the posting for filtering on the site.
	Industry string `gorm:"size:255" json:"industry"`

	// Salary is the advertised salary or range, free text.
	Salary string `gorm:"size:255" json:"salary"`

	// Description is the full posting body.
	Description string `gorm:"type:text" json:"description"`

	// PostedAt is when the posting went live. Listings order by it descending.
	PostedAt time.Time `gorm:"index;not null" json:"postedAt"`

	// IsArchived soft-hides the posting from public listings.
	IsArchived bool `gorm:"not null;default:false" json:"isArchived"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
