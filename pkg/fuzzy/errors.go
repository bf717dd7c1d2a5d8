package fuzzy

import (
	"errors"
	"fmt"
)

// ErrInvalidSet is matched by every set construction failure.
var ErrInvalidSet = errors.New("fuzzy: invalid set")

// Reasons carried by InvalidSetError.
var (
	// ErrEmptyName indicates a set without a label.
	ErrEmptyName = errors.New("set name must not be empty")
	// ErrTooFewPoints indicates fewer than 3 breakpoints (2 for a ramp).
	ErrTooFewPoints = errors.New("too few breakpoints")
	// ErrNotIncreasing indicates x-coordinates that are not strictly increasing.
	ErrNotIncreasing = errors.New("breakpoint x must be strictly increasing")
	// ErrDegreeRange indicates a degree outside [0,1].
	ErrDegreeRange = errors.New("degree must lie in [0,1]")
	// ErrOpenSupport indicates a first or last degree other than 0.
	ErrOpenSupport = errors.New("first and last degree must be 0")
	// ErrNonFinite indicates a NaN or infinite coordinate.
	ErrNonFinite = errors.New("breakpoint coordinates must be finite")
	// ErrNotMonotone indicates a ramp whose ends are not 0 and 1.
	ErrNotMonotone = errors.New("ramp must run between degree 0 and 1")
	// ErrNilSet indicates a nil or zero-value set passed for evaluation.
	ErrNilSet = errors.New("set was not constructed")
	// ErrDuplicateName indicates two sets with the same name in a catalog.
	ErrDuplicateName = errors.New("duplicate set name")
)

// InvalidSetError reports a set that fails its invariants.
type InvalidSetError struct {
	Name string // Label of the offending set, possibly empty.
	Err  error  // One of the reason sentinels above.
}

func (e *InvalidSetError) Error() string {
	return fmt.Sprintf("fuzzy: invalid set %q: %v", e.Name, e.Err)
}

// Unwrap exposes both ErrInvalidSet and the reason to errors.Is.
func (e *InvalidSetError) Unwrap() []error {
	return []error{ErrInvalidSet, e.Err}
}

func invalid(name string, reason error) error {
	return &InvalidSetError{Name: name, Err: reason}
}
