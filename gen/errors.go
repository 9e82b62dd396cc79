package gen

import (
	"errors"
	"fmt"
)

var (
	// ErrQueryFailed is returned when the engine signals failure on a
	// single-point query, most commonly because the generator had no seed
	// applied before the query.
	ErrQueryFailed = errors.New("point query failed: was a seed applied to the generator?")
	// ErrIndexOutOfBounds is returned when a cache lookup falls outside
	// the filled buffer, including lookups against a cache that was never
	// filled or whose last fill failed.
	ErrIndexOutOfBounds = errors.New("coordinate outside the filled cache region")
	// ErrInvalidRegion is returned when a Region has non-positive extents
	// or an unrecognised scale.
	ErrInvalidRegion = errors.New("region extents must be positive and scale must be block or quarter")
)

// FillError is returned when the engine reports a non-zero status for a
// bulk fill. The status code is preserved verbatim for diagnostics; a
// fill of a generator without a seed applied is the usual cause.
type FillError struct {
	// Status is the engine's status code, never zero.
	Status int32
}

// Error ...
func (e *FillError) Error() string {
	return fmt.Sprintf("bulk biome fill failed with engine status %v", e.Status)
}
