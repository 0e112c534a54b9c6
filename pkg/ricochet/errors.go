package ricochet

import "errors"

// Sentinel errors for common error conditions
var (
	// Generator-related errors
	ErrUnknownGenerator = errors.New("unknown generator")

	// Output errors
	ErrWriteOutput   = errors.New("write output failed")
	ErrReadFixture   = errors.New("read fixture failed")
	ErrDecodeFixture = errors.New("decode fixture failed")

	// Archive errors
	ErrRunNotFound         = errors.New("run not found")
	ErrArchiveNotEnabled   = errors.New("archive path not configured")
	ErrIncompatibleVersion = errors.New("incompatible version")
)
