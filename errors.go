package turtle

import "errors"

// Sentinel errors for the turtle package.
var (
	// ErrInvalidSize is returned when a canvas size is not positive.
	ErrInvalidSize = errors.New("turtle: canvas size must be positive")

	// ErrInvalidPenSize is returned when a pen width is negative.
	ErrInvalidPenSize = errors.New("turtle: pen size must not be negative")

	// ErrInvalidDotSize is returned when a dot diameter is less than 1.
	ErrInvalidDotSize = errors.New("turtle: dot size must be at least 1")

	// ErrInvalidCoordinate is returned for a missing or malformed coordinate.
	ErrInvalidCoordinate = errors.New("turtle: invalid coordinate")

	// ErrInvalidColor is returned by the raster canvas for unparsable colors.
	ErrInvalidColor = errors.New("turtle: invalid color")

	// ErrUnsupportedFormat is returned when saving to an unknown file extension.
	ErrUnsupportedFormat = errors.New("turtle: unsupported image format")
)
