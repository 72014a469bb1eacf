// Package pager models a horizontally paging container. The scroll position
// is a fraction measured in page widths: 1.5 sits halfway between the second
// and third page.
package pager

import (
	"math"

	"tabpager/internal/indicator"
	"tabpager/internal/tabs"

	"github.com/charmbracelet/harmonica"
)

// settleEpsilon is how close to the target (in page widths, and page widths
// per frame) an animation must be before it snaps and stops.
const settleEpsilon = 1e-3

// Phase is the coarse scroll state of a pager.
type Phase int

const (
	// Idle means the pager rests exactly on a page.
	Idle Phase = iota
	// Transitioning means a drag or an animated scroll is in progress.
	Transitioning
)

func (p Phase) String() string {
	if p == Idle {
		return "idle"
	}
	return "transitioning"
}

// SpringConfig is the harmonica spring used for animated scrolls and settling.
type SpringConfig struct {
	FPS       int
	Frequency float64
	Damping   float64
}

// DefaultSpring is tuned to settle within a few hundred milliseconds without
// visible overshoot.
func DefaultSpring() SpringConfig {
	return SpringConfig{FPS: 60, Frequency: 12.0, Damping: 0.9}
}

// Model holds the pages and the scroll position.
type Model[T any] struct {
	pages []T

	scroll    float64
	velocity  float64
	target    float64
	animating bool
	dragging  bool

	spring     harmonica.Spring
	onScrolled []func(offset float64)
}

// New creates a pager resting on the first page.
func New[T any](pages []T, sc SpringConfig) (*Model[T], error) {
	if len(pages) == 0 {
		return nil, tabs.ErrEmptyPages
	}
	return &Model[T]{
		pages:  append([]T(nil), pages...),
		spring: harmonica.NewSpring(harmonica.FPS(sc.FPS), sc.Frequency, sc.Damping),
	}, nil
}

// SetPages replaces every page. Running animations stop and the scroll
// position is pulled back onto the nearest remaining page.
func (m *Model[T]) SetPages(pages []T) error {
	if len(pages) == 0 {
		return tabs.ErrEmptyPages
	}
	m.pages = append([]T(nil), pages...)
	m.stop()
	m.dragging = false

	settled := indicator.Clamp(math.Round(m.scroll), len(pages))
	if settled != m.scroll {
		m.set(settled)
	}
	return nil
}

// OnScrolled registers fn to receive every scroll position change.
func (m *Model[T]) OnScrolled(fn func(offset float64)) {
	m.onScrolled = append(m.onScrolled, fn)
}

// OnScroll feeds one frame of user drag. It supersedes any running animation.
// A non-finite offset is rejected and changes nothing.
func (m *Model[T]) OnScroll(offset float64) error {
	if err := tabs.CheckOffset("scroll", offset); err != nil {
		return err
	}
	m.stop()
	m.dragging = true
	m.set(offset)
	return nil
}

// Drag moves the scroll position by delta page widths.
func (m *Model[T]) Drag(delta float64) error {
	return m.OnScroll(m.scroll + delta)
}

// Release ends a drag and settles on the nearest page.
func (m *Model[T]) Release() {
	m.dragging = false
	m.animateTo(indicator.Clamp(math.Round(m.scroll), len(m.pages)))
}

// ScrollTo moves to page index. Without animation the pager settles at once;
// with animation Step must be called once per frame until it returns false.
func (m *Model[T]) ScrollTo(index int, animated bool) error {
	if err := tabs.CheckIndex("scroll to", index, len(m.pages)); err != nil {
		return err
	}
	m.dragging = false
	if !animated {
		m.stop()
		m.set(float64(index))
		return nil
	}
	m.animateTo(float64(index))
	return nil
}

func (m *Model[T]) animateTo(target float64) {
	m.target = target
	if m.scroll == target && !m.animating {
		return
	}
	m.animating = true
}

// Step advances a running animation by one frame and reports whether it is
// still running. The last frame lands exactly on the target.
func (m *Model[T]) Step() bool {
	if !m.animating {
		return false
	}
	pos, vel := m.spring.Update(m.scroll, m.velocity, m.target)
	if math.Abs(pos-m.target) < settleEpsilon && math.Abs(vel) < settleEpsilon {
		pos = m.target
		m.stop()
	} else {
		m.velocity = vel
	}
	m.set(pos)
	return m.animating
}

func (m *Model[T]) stop() {
	m.animating = false
	m.velocity = 0
}

func (m *Model[T]) set(offset float64) {
	m.scroll = offset
	for _, fn := range m.onScrolled {
		fn(offset)
	}
}

// Scroll returns the scroll position in page widths.
func (m *Model[T]) Scroll() float64 { return m.scroll }

// Target returns the page the running animation is heading to.
func (m *Model[T]) Target() float64 { return m.target }

// Animating reports whether an animated scroll or settle is in progress.
func (m *Model[T]) Animating() bool { return m.animating }

// Dragging reports whether a drag has started and not been released.
func (m *Model[T]) Dragging() bool { return m.dragging }

// Phase reports Idle when resting on a page and Transitioning otherwise.
func (m *Model[T]) Phase() Phase {
	if m.animating || m.dragging || m.scroll != math.Trunc(m.scroll) {
		return Transitioning
	}
	return Idle
}

// Current returns the page nearest to the scroll position.
func (m *Model[T]) Current() int {
	return int(indicator.Clamp(math.Round(m.scroll), len(m.pages)))
}

// Page returns the page at index.
func (m *Model[T]) Page(index int) (T, error) {
	var zero T
	if err := tabs.CheckIndex("page", index, len(m.pages)); err != nil {
		return zero, err
	}
	return m.pages[index], nil
}

// Pages returns a copy of every page.
func (m *Model[T]) Pages() []T {
	return append([]T(nil), m.pages...)
}

// Count returns the number of pages.
func (m *Model[T]) Count() int {
	return len(m.pages)
}
