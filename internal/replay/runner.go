package replay

import (
	"errors"
	"io"

	"tabpager/internal/pager"
	"tabpager/internal/syncctl"
	"tabpager/internal/tabbar"
	"tabpager/ui/tui/state"

	"github.com/rs/zerolog"
)

// maxSettleFrames bounds a settle event.
const maxSettleFrames = 10000

// ErrNoSettle is returned when an animation does not finish within
// maxSettleFrames.
var ErrNoSettle = errors.New("animation did not settle")

// Runner owns one tab bar and pager pair wired by a sync controller.
type Runner struct {
	bar   *tabbar.Model
	pager *pager.Model[string]
	ctrl  *syncctl.Controller
	log   zerolog.Logger
}

// Option configures a Runner.
type Option func(*runnerOptions)

type runnerOptions struct {
	animated bool
	spring   pager.SpringConfig
	log      zerolog.Logger
}

// WithAnimatedSelect makes tab selection scroll with an animation.
func WithAnimatedSelect(animated bool) Option {
	return func(o *runnerOptions) { o.animated = animated }
}

// WithSpring sets the pager animation spring.
func WithSpring(sc pager.SpringConfig) Option {
	return func(o *runnerOptions) { o.spring = sc }
}

// WithLogger sets the logger for events and sync decisions.
func WithLogger(l zerolog.Logger) Option {
	return func(o *runnerOptions) { o.log = l }
}

// NewRunner creates a runner for labels. Each page is identified by its label.
func NewRunner(labels []string, opts ...Option) (*Runner, error) {
	o := runnerOptions{
		spring: pager.DefaultSpring(),
		log:    zerolog.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&o)
	}

	bar, err := tabbar.New(labels)
	if err != nil {
		return nil, err
	}
	pg, err := pager.New(labels, o.spring)
	if err != nil {
		return nil, err
	}
	ctrl, err := syncctl.New(bar, pg,
		syncctl.WithAnimatedSelect(o.animated),
		syncctl.WithLogger(o.log),
	)
	if err != nil {
		return nil, err
	}
	return &Runner{bar: bar, pager: pg, ctrl: ctrl, log: o.log}, nil
}

// Apply feeds one event and returns the state after it. An event that is
// rejected leaves the state unchanged and is reported in Snapshot.Err.
func (r *Runner) Apply(e Event) state.Snapshot {
	prev := r.ctrl.Err()
	err := r.apply(e)
	if cerr := r.ctrl.Err(); err == nil && cerr != prev {
		err = cerr
	}
	if err != nil {
		r.log.Warn().Err(err).Str("event", e.String()).Msg("event rejected")
	}
	return r.Snapshot(e.String(), err)
}

func (r *Runner) apply(e Event) error {
	switch {
	case e.Select != nil:
		return r.bar.SelectTab(*e.Select)
	case e.Scroll != nil:
		return r.pager.OnScroll(*e.Scroll)
	case e.Drag != nil:
		return r.pager.Drag(*e.Drag)
	case e.Release:
		r.pager.Release()
	case e.ScrollTo != nil:
		return r.pager.ScrollTo(e.ScrollTo.Index, e.ScrollTo.Animated)
	case e.Frames != 0:
		for i := 0; i < e.Frames; i++ {
			if !r.pager.Step() {
				break
			}
		}
	case e.Settle:
		for i := 0; r.pager.Step(); i++ {
			if i >= maxSettleFrames {
				return ErrNoSettle
			}
		}
	default:
		return ErrInvalidEvent
	}
	return nil
}

// Snapshot captures the current state.
func (r *Runner) Snapshot(event string, err error) state.Snapshot {
	return state.Snapshot{
		Event:     event,
		Scroll:    r.pager.Scroll(),
		Active:    r.bar.Active(),
		Indicator: r.bar.Indicator().Offset(),
		Phase:     r.pager.Phase(),
		Labels:    r.bar.Labels(),
		Err:       err,
	}
}

// Run replays every event of s and returns one snapshot per event.
func Run(s *Script, opts ...Option) ([]state.Snapshot, error) {
	opts = append([]Option{WithAnimatedSelect(s.Animated)}, opts...)
	r, err := NewRunner(s.Tabs, opts...)
	if err != nil {
		return nil, err
	}
	trace := make([]state.Snapshot, 0, len(s.Events))
	for _, e := range s.Events {
		trace = append(trace, r.Apply(e))
	}
	return trace, nil
}
