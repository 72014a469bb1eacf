package tabs

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyPages is returned when a tab bar or pager is built with no entries.
	ErrEmptyPages = errors.New("page list must be non-empty")

	// ErrIndexOutOfRange is wrapped by every RangeError.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrCountMismatch is returned when the tab bar and pager disagree on N.
	ErrCountMismatch = errors.New("label count does not match page count")

	// ErrNonFiniteOffset is returned for a NaN or infinite scroll offset.
	ErrNonFiniteOffset = errors.New("scroll offset must be finite")
)

// RangeError reports an index outside [0, Len).
type RangeError struct {
	Op    string
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

func (e *RangeError) Unwrap() error {
	return ErrIndexOutOfRange
}

// CheckIndex returns a *RangeError when i is not a valid index for n entries.
func CheckIndex(op string, i, n int) error {
	if i < 0 || i >= n {
		return &RangeError{Op: op, Index: i, Len: n}
	}
	return nil
}

// CheckOffset rejects NaN and infinite scroll offsets.
func CheckOffset(op string, offset float64) error {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return fmt.Errorf("%s %v: %w", op, offset, ErrNonFiniteOffset)
	}
	return nil
}

// MismatchError builds an ErrCountMismatch with both counts attached.
func MismatchError(labels, pages int) error {
	return fmt.Errorf("%w: %d labels, %d pages", ErrCountMismatch, labels, pages)
}
