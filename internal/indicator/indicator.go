// Package indicator tracks the position and width of the active-tab
// indicator, both measured in units of one tab width.
package indicator

import (
	"math"

	"tabpager/internal/tabs"
)

// State is the indicator's left edge and width as fractions of the tab bar.
// Offset is expressed in tab widths (0 = first tab, N-1 = last tab); Width is
// always 1/N of the bar.
type State struct {
	offset float64
	count  int
}

// New returns a State for n tabs with the indicator on the first tab.
func New(n int) (State, error) {
	if n < 1 {
		return State{}, tabs.ErrEmptyPages
	}
	return State{count: n}, nil
}

// Offset is the left edge of the indicator in tab widths.
func (s State) Offset() float64 { return s.offset }

// Width is the indicator width as a fraction of the whole bar (1/N).
func (s State) Width() float64 {
	if s.count == 0 {
		return 0
	}
	return 1 / float64(s.count)
}

// Count is the number of tabs the state was sized for.
func (s State) Count() int { return s.count }

// SetOffset moves the indicator. Values outside [0, N-1] are kept as-is so the
// indicator can follow an overscrolling drag.
func (s *State) SetOffset(f float64) { s.offset = f }

// Resize changes the tab count and clamps the offset into the new range.
func (s *State) Resize(n int) error {
	if n < 1 {
		return tabs.ErrEmptyPages
	}
	s.count = n
	s.offset = Clamp(s.offset, n)
	return nil
}

// Span maps the indicator onto a bar that is total cells wide and returns the
// first column and the column count it covers. Columns outside the bar are
// trimmed, so w may be smaller than one tab width during overscroll.
func (s State) Span(total int) (x, w int) {
	if s.count == 0 || total <= 0 {
		return 0, 0
	}
	left, right := Bounds(s.offset, s.count, total)
	if left < 0 {
		left = 0
	}
	if right > total {
		right = total
	}
	if right < left {
		right = left
	}
	return left, right - left
}

// Bounds returns the columns [left, right) covered by a tab-wide cell whose
// left edge sits at pos (in tab widths) on a total-wide bar of n tabs. Tab
// labels and the indicator use the same rounding so they line up.
func Bounds(pos float64, n, total int) (left, right int) {
	tw := float64(total) / float64(n)
	left = int(math.Round(pos * tw))
	right = int(math.Round((pos + 1) * tw))
	return left, right
}

// Clamp limits f to the steady-state range [0, n-1].
func Clamp(f float64, n int) float64 {
	if f < 0 {
		return 0
	}
	if hi := float64(n - 1); f > hi {
		return hi
	}
	return f
}
