// Package replay drives the tab bar, pager and sync controller headlessly from
// a YAML event script and records the state after every event.
package replay

import (
	"errors"
	"fmt"
	"os"

	"tabpager/internal/tabs"

	"gopkg.in/yaml.v3"
)

// Script is a replay file.
type Script struct {
	Tabs     []string `yaml:"tabs"`
	Animated bool     `yaml:"animated"`
	Events   []Event  `yaml:"events"`
}

// Event is one input. Exactly one field is set.
type Event struct {
	Select   *int      `yaml:"select,omitempty"`
	Scroll   *float64  `yaml:"scroll,omitempty"`
	Drag     *float64  `yaml:"drag,omitempty"`
	Release  bool      `yaml:"release,omitempty"`
	ScrollTo *ScrollTo `yaml:"scroll_to,omitempty"`
	// Frames advances a running animation by that many frames.
	Frames int `yaml:"frames,omitempty"`
	// Settle runs frames until the animation ends.
	Settle bool `yaml:"settle,omitempty"`
}

// ScrollTo asks the pager to move to a page.
type ScrollTo struct {
	Index    int  `yaml:"index"`
	Animated bool `yaml:"animated"`
}

// ErrInvalidEvent is returned for an event that sets no action or several.
var ErrInvalidEvent = errors.New("event must set exactly one action")

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every event has exactly one action. Tabs may be empty and
// supplied later.
func (s *Script) Validate() error {
	for i, e := range s.Events {
		if e.actions() != 1 {
			return fmt.Errorf("event %d: %w", i, ErrInvalidEvent)
		}
		if e.Frames < 0 {
			return fmt.Errorf("event %d: frames must not be negative", i)
		}
		if e.Scroll != nil {
			if err := tabs.CheckOffset("scroll", *e.Scroll); err != nil {
				return fmt.Errorf("event %d: %w", i, err)
			}
		}
		if e.Drag != nil {
			if err := tabs.CheckOffset("drag", *e.Drag); err != nil {
				return fmt.Errorf("event %d: %w", i, err)
			}
		}
	}
	return nil
}

func (e Event) actions() int {
	n := 0
	for _, set := range []bool{
		e.Select != nil, e.Scroll != nil, e.Drag != nil, e.Release,
		e.ScrollTo != nil, e.Frames != 0, e.Settle,
	} {
		if set {
			n++
		}
	}
	return n
}

// String describes the event for traces.
func (e Event) String() string {
	switch {
	case e.Select != nil:
		return fmt.Sprintf("select %d", *e.Select)
	case e.Scroll != nil:
		return fmt.Sprintf("scroll %.2f", *e.Scroll)
	case e.Drag != nil:
		return fmt.Sprintf("drag %+.2f", *e.Drag)
	case e.Release:
		return "release"
	case e.ScrollTo != nil:
		if e.ScrollTo.Animated {
			return fmt.Sprintf("scroll_to %d animated", e.ScrollTo.Index)
		}
		return fmt.Sprintf("scroll_to %d", e.ScrollTo.Index)
	case e.Frames != 0:
		return fmt.Sprintf("frames %d", e.Frames)
	case e.Settle:
		return "settle"
	}
	return "noop"
}
