package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrIdentityRequired means the caller must sign in first.
	ErrIdentityRequired = errors.New("booking: signed-in identity required")

	// ErrNotConfigured means no persistence sink is available.
	ErrNotConfigured = errors.New("booking: persistence is not configured")

	ErrInvalidRating  = errors.New("booking: rating must be between 1 and 5")
	ErrUnknownService = errors.New("booking: unknown service")
	ErrInvalidName    = errors.New("booking: name is too long")
)

// SubmissionError wraps a failed remote write with the stage it failed in.
type SubmissionError struct {
	Stage string
	Err   error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func newSubmissionError(stage string, err error) error {
	return &SubmissionError{Stage: stage, Err: err}
}
