package plot

import "errors"

// Sentinel errors for figure operations.
var (
	// ErrEmptyFigure is returned when rendering a figure with no series.
	ErrEmptyFigure = errors.New("plot: figure has no series")

	// ErrInvalidSize is returned for non-positive image dimensions or a
	// plot area that the margins leave empty.
	ErrInvalidSize = errors.New("plot: invalid figure size")

	// ErrNoFinitePoints is returned when no series has a finite sample.
	ErrNoFinitePoints = errors.New("plot: no finite samples to draw")
)
