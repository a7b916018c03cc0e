// Package usecase implements the business logic for the jobs feature.
package usecase

import "errors"

// ErrJobNotFound is returned when the referenced posting does not exist.
var ErrJobNotFound = errors.New("job not found")
