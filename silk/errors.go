package silk

import "errors"

var (
	// ErrInvalidBandwidth indicates an unsupported bandwidth value.
	ErrInvalidBandwidth = errors.New("silk: invalid bandwidth")

	// ErrInvalidFrameDuration indicates an unsupported frame duration.
	ErrInvalidFrameDuration = errors.New("silk: invalid frame duration")
)
