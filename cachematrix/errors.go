package cachematrix

import "errors"

var (
	// ErrInversionFailure is returned by Inverse when the current value cannot
	// be inverted (nil placeholder, non-square or singular). The underlying
	// matrix sentinel is joined with it, so both match via errors.Is.
	ErrInversionFailure = errors.New("cachematrix: inversion failure")

	// ErrNilContainer is returned by Inverse when called with a nil container.
	ErrNilContainer = errors.New("cachematrix: nil container")
)
