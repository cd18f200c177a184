package algorithm

import (
	"errors"
	"fmt"
)

// ErrOverflow is returned when a subrange sum does not fit the element type.
var ErrOverflow = errors.New("arithmetic overflow")

// OverflowError records the element at which the running sum left the
// representable range.
type OverflowError struct {
	Index int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("max subarray sum: %v at index %d", ErrOverflow, e.Index)
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}
