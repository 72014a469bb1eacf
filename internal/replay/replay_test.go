package replay

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"tabpager/internal/pager"
	"tabpager/internal/tabs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenario = `
tabs: [A, B, C]
events:
  - select: 2
  - scroll: 1.3
  - scroll: 1.7
  - scroll: 1.55
  - release: true
  - settle: true
  - scroll_to: {index: 0, animated: true}
  - frames: 1
  - settle: true
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(scenario))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, s.Tabs)
	require.Len(t, s.Events, 9)
	assert.Equal(t, "select 2", s.Events[0].String())
	assert.Equal(t, "scroll 1.30", s.Events[1].String())
	assert.Equal(t, "release", s.Events[4].String())
	assert.Equal(t, "scroll_to 0 animated", s.Events[6].String())
	assert.Equal(t, "frames 1", s.Events[7].String())
}

func TestParseRejectsAmbiguousEvent(t *testing.T) {
	_, err := Parse([]byte("tabs: [A]\nevents:\n  - select: 0\n    scroll: 0.5\n"))
	assert.ErrorIs(t, err, ErrInvalidEvent)

	_, err = Parse([]byte("tabs: [A]\nevents:\n  - {}\n"))
	assert.ErrorIs(t, err, ErrInvalidEvent)

	_, err = Parse([]byte("tabs: [A, B]\nevents:\n  - scroll: .nan\n"))
	assert.ErrorIs(t, err, tabs.ErrNonFiniteOffset)

	_, err = Parse([]byte("tabs: [A, B]\nevents:\n  - drag: -.inf\n"))
	assert.ErrorIs(t, err, tabs.ErrNonFiniteOffset)

	_, err = Parse([]byte("tabs: [A\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Events, 9)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRunThreeTabScenario(t *testing.T) {
	s, err := Parse([]byte(scenario))
	require.NoError(t, err)

	trace, err := Run(s)
	require.NoError(t, err)
	require.Len(t, trace, 9)

	for _, snap := range trace {
		require.NoError(t, snap.Err, snap.Event)
	}

	// select 2
	assert.Equal(t, 2.0, trace[0].Scroll)
	assert.Equal(t, 2, trace[0].Active)
	assert.Equal(t, 2.0, trace[0].Indicator)
	assert.Equal(t, pager.Idle, trace[0].Phase)
	assert.Equal(t, "C", trace[0].ActiveLabel())

	// scroll 1.3: lower page wins
	assert.Equal(t, 1, trace[1].Active)
	assert.Equal(t, 1.3, trace[1].Indicator)
	assert.Equal(t, pager.Transitioning, trace[1].Phase)

	// scroll 1.7: forward past halfway
	assert.Equal(t, 2, trace[2].Active)
	assert.Equal(t, 1.7, trace[2].Indicator)

	// scroll 1.55: stays on 2
	assert.Equal(t, 2, trace[3].Active)
	assert.Equal(t, 1.55, trace[3].Indicator)

	// release then settle on the nearest page
	assert.Equal(t, pager.Transitioning, trace[4].Phase)
	assert.Equal(t, 2.0, trace[5].Scroll)
	assert.Equal(t, 2, trace[5].Active)
	assert.Equal(t, pager.Idle, trace[5].Phase)

	// animated scroll back to the first page
	assert.Equal(t, 2.0, trace[6].Scroll)
	assert.Equal(t, pager.Transitioning, trace[6].Phase)
	assert.Less(t, trace[7].Scroll, 2.0)
	assert.Greater(t, trace[7].Scroll, 0.0)
	assert.Equal(t, 0.0, trace[8].Scroll)
	assert.Equal(t, 0, trace[8].Active)
	assert.Equal(t, 0.0, trace[8].Indicator)
	assert.Equal(t, pager.Idle, trace[8].Phase)
}

func TestRunAnimatedSelect(t *testing.T) {
	s := &Script{
		Tabs:     []string{"A", "B", "C"},
		Animated: true,
		Events:   []Event{{Select: intp(1)}, {Settle: true}},
	}

	trace, err := Run(s)
	require.NoError(t, err)

	assert.Equal(t, 0.0, trace[0].Scroll)
	assert.Equal(t, pager.Transitioning, trace[0].Phase)
	assert.Equal(t, 1.0, trace[1].Scroll)
	assert.Equal(t, 1, trace[1].Active)
	assert.Equal(t, 1.0, trace[1].Indicator)
}

func TestRunRejectedEventKeepsState(t *testing.T) {
	s := &Script{
		Tabs: []string{"A", "B"},
		Events: []Event{
			{Select: intp(1)},
			{Select: intp(5)},
			{ScrollTo: &ScrollTo{Index: -1}},
			{Select: intp(0)},
		},
	}

	trace, err := Run(s)
	require.NoError(t, err)

	var rerr *tabs.RangeError
	require.ErrorAs(t, trace[1].Err, &rerr)
	assert.Equal(t, 5, rerr.Index)
	assert.Equal(t, 1, trace[1].Active)
	assert.Equal(t, 1.0, trace[1].Scroll)

	assert.True(t, errors.Is(trace[2].Err, tabs.ErrIndexOutOfRange))
	assert.NoError(t, trace[3].Err)
	assert.Equal(t, 0, trace[3].Active)
}

func TestRunNeedsTabs(t *testing.T) {
	_, err := Run(&Script{})
	assert.ErrorIs(t, err, tabs.ErrEmptyPages)
}

func intp(i int) *int { return &i }

func TestRunRejectsNonFiniteScroll(t *testing.T) {
	nan := math.NaN()
	s := &Script{
		Tabs:   []string{"A", "B", "C"},
		Events: []Event{{Scroll: floatp(1.3)}, {Scroll: &nan}},
	}

	trace, err := Run(s)
	require.NoError(t, err)
	assert.ErrorIs(t, trace[1].Err, tabs.ErrNonFiniteOffset)
	assert.Equal(t, 1.3, trace[1].Scroll)
	assert.Equal(t, 1.3, trace[1].Indicator)
	assert.Equal(t, 1, trace[1].Active)
}

func floatp(f float64) *float64 { return &f }
