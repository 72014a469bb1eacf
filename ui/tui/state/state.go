package state

import (
	"tabpager/internal/pager"
)

// Snapshot holds the synchronized state right after one event.
type Snapshot struct {
	Event     string
	Scroll    float64
	Active    int
	Indicator float64
	Phase     pager.Phase
	Labels    []string
	Err       error
}

// ActiveLabel returns the label of the active tab, or "" if out of range.
func (s Snapshot) ActiveLabel() string {
	if s.Active < 0 || s.Active >= len(s.Labels) {
		return ""
	}
	return s.Labels[s.Active]
}
