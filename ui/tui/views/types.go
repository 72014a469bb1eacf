package views

import (
	"tabpager/ui/tui/styles"
)

// Marker wraps a rendered tab so mouse clicks on it can be hit-tested.
type Marker func(id, rendered string) string

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	// Tab bar
	Labels          []string
	Active          int
	IndicatorOffset float64
	Style           styles.Style
	ZonePrefix      string
	Mark            Marker

	// Pager
	Scroll float64
	Pages  func(index int) (string, bool)
}

func (p ViewProps) mark(id, rendered string) string {
	if p.Mark == nil {
		return rendered
	}
	return p.Mark(id, rendered)
}
