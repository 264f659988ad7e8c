package job

import (
	"errors"
	"fmt"
)

// Sentinel errors for job validation.
var (
	// ErrNoRuns is returned for a job without runs.
	ErrNoRuns = errors.New("job: no runs")

	// ErrEmptyField is returned when a required field is missing.
	ErrEmptyField = errors.New("job: required field is empty")

	// ErrLengthMismatch is returned when a run's x and y value lists differ
	// in length.
	ErrLengthMismatch = errors.New("job: x and y have different lengths")

	// ErrTooFewRuns is returned when an envelope is requested for fewer
	// than two runs.
	ErrTooFewRuns = errors.New("job: envelope needs at least two runs")
)

// FieldError locates a problem in a job file.
type FieldError struct {
	// Field is the dotted path of the offending field, for example
	// "runs[1].y.unit".
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("job: %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
