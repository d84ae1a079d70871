package novice

import "errors"

// Sentinel errors returned by Picture and Pixel operations. Callers can
// match them with errors.Is even when wrapped with extra context.
var (
	// ErrOutOfBounds is returned when a pixel coordinate or region falls
	// outside the picture. Negative coordinates are always out of bounds.
	ErrOutOfBounds = errors.New("pixel index out of bounds")

	// ErrBadSize is returned for non-positive dimensions.
	ErrBadSize = errors.New("invalid dimensions")

	// ErrChannelRange is returned when a channel value is outside 0-255.
	// Out-of-range values are rejected, never clamped.
	ErrChannelRange = errors.New("channel value out of range")

	// ErrShapeMismatch is returned when a nested color grid does not match
	// the shape of the region it is assigned to.
	ErrShapeMismatch = errors.New("color grid does not match region shape")

	// ErrUnknownFormat is returned when a file suffix does not map to a
	// supported image format.
	ErrUnknownFormat = errors.New("unsupported image format")

	// ErrBadColor is returned when a color string cannot be parsed.
	ErrBadColor = errors.New("invalid color")
)
