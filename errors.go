package svt

import "errors"

// Sentinel errors for the svt package. Operations wrap them with context,
// so test for them with errors.Is.
var (
	// ErrInvalidPrefix is returned when a prefix name is not one of the 25 SI prefixes.
	ErrInvalidPrefix = errors.New("svt: invalid prefix")

	// ErrInvalidDimension is returned when a dimension token is not a base dimension.
	ErrInvalidDimension = errors.New("svt: invalid dimension")

	// ErrIncompatibleUnits is returned when two units cannot be combined.
	ErrIncompatibleUnits = errors.New("svt: incompatible units")

	// ErrUnsupportedOperation is returned for algebraically undefined
	// combinations, such as multiplying two offset-based quantities.
	ErrUnsupportedOperation = errors.New("svt: unsupported operation")

	// ErrUnsupportedConversion is returned when a prefix conversion is
	// requested on a quantity held in a misc unit.
	ErrUnsupportedConversion = errors.New("svt: unsupported conversion")

	// ErrShapeMismatch is returned when values or collection members have
	// different shapes.
	ErrShapeMismatch = errors.New("svt: shape mismatch")

	// ErrInvalidDimensionality is returned when a curve operation gets a
	// curve with the wrong number of components.
	ErrInvalidDimensionality = errors.New("svt: invalid dimensionality")

	// ErrMissingKey is returned when a collection has no entry for a key.
	ErrMissingKey = errors.New("svt: missing key")

	// ErrDuplicateKey is returned when a key is already used in a collection.
	ErrDuplicateKey = errors.New("svt: duplicate key")

	// ErrEmptyRange is returned when two curves have no common domain.
	ErrEmptyRange = errors.New("svt: empty common range")

	// ErrNotScalar is returned when a scalar is required but an array was given.
	ErrNotScalar = errors.New("svt: value is not a scalar")

	// ErrIndexOutOfRange is returned by element access past the end of an array.
	ErrIndexOutOfRange = errors.New("svt: index out of range")
)
