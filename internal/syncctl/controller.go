// Package syncctl keeps a tab bar and a pager in step: pager scrolling drives
// the indicator and active tab, and tab selection drives the pager.
package syncctl

import (
	"io"
	"math"

	"tabpager/internal/tabs"

	"github.com/rs/zerolog"
)

// IndicatorBar is the part of a tab bar the controller writes to.
type IndicatorBar interface {
	Count() int
	Active() int
	SetActive(index int) error
	SetIndicatorOffset(f float64)
	OnSelect(fn func(index int))
}

// ScrollContainer is the part of a pager the controller drives.
type ScrollContainer interface {
	Count() int
	ScrollTo(index int, animated bool) error
	OnScrolled(fn func(offset float64))
}

// Option configures a Controller.
type Option func(*Controller)

// WithAnimatedSelect makes tab selection scroll the pager with an animation
// instead of jumping.
func WithAnimatedSelect(animated bool) Option {
	return func(c *Controller) { c.animated = animated }
}

// WithLogger sets the logger used for sync decisions.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// Controller is the only writer of the indicator offset and active tab on the
// scroll path. It holds no ownership of the bar or the pager.
type Controller struct {
	bar      IndicatorBar
	pager    ScrollContainer
	animated bool
	log      zerolog.Logger
	err      error
}

// New binds a controller to bar and pager. Both must hold the same, non-zero
// number of entries.
func New(bar IndicatorBar, pager ScrollContainer, opts ...Option) (*Controller, error) {
	c := &Controller{
		bar:   bar,
		pager: pager,
		log:   zerolog.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.check(); err != nil {
		return nil, err
	}

	bar.OnSelect(func(index int) {
		c.record(c.HandleTabSelected(index))
	})
	pager.OnScrolled(func(offset float64) {
		c.record(c.HandleScrolled(offset))
	})
	return c, nil
}

// Reset re-validates the bar and pager after their contents were replaced.
func (c *Controller) Reset() error {
	c.err = nil
	return c.check()
}

func (c *Controller) check() error {
	nb, np := c.bar.Count(), c.pager.Count()
	if nb == 0 || np == 0 {
		return tabs.ErrEmptyPages
	}
	if nb != np {
		return tabs.MismatchError(nb, np)
	}
	return nil
}

func (c *Controller) record(err error) {
	if err != nil {
		c.log.Error().Err(err).Msg("sync rejected")
		c.err = err
	}
}

// Err returns the last error raised by an event the controller received
// through its bindings.
func (c *Controller) Err() error {
	return c.err
}

// HandleScrolled applies one pager scroll position: the indicator follows the
// offset exactly and the active tab follows ActiveIndexFor. It never emits
// TabSelected and never scrolls the pager.
func (c *Controller) HandleScrolled(offset float64) error {
	if err := c.check(); err != nil {
		return err
	}
	if err := tabs.CheckOffset("scrolled", offset); err != nil {
		return err
	}
	c.bar.SetIndicatorOffset(offset)

	prev := c.bar.Active()
	next := ActiveIndexFor(offset, prev, c.bar.Count())
	if next == prev {
		return nil
	}
	c.log.Debug().
		Float64("offset", offset).
		Int("from", prev).
		Int("to", next).
		Msg("active tab follows scroll")
	return c.bar.SetActive(next)
}

// HandleTabSelected scrolls the pager to the selected tab.
func (c *Controller) HandleTabSelected(index int) error {
	if err := c.check(); err != nil {
		return err
	}
	c.log.Debug().Int("tab", index).Bool("animated", c.animated).Msg("tab selected")
	return c.pager.ScrollTo(index, c.animated)
}

// ActiveIndexFor decides the active tab for a scroll offset given the tab that
// is active now. Up to and including the halfway point the lower page wins.
// Past halfway the upper page wins only if that does not move the active tab
// backwards. The result is clamped to [0, n-1].
func ActiveIndexFor(offset float64, current, n int) int {
	floor := math.Floor(offset)
	frac := offset - floor

	next := current
	if frac <= 0.5 {
		next = int(floor)
	} else if ceil := int(math.Ceil(offset)); ceil >= current {
		next = ceil
	}

	if next < 0 {
		return 0
	}
	if next > n-1 {
		return n - 1
	}
	return next
}
