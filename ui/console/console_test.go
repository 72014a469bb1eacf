package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"tabpager/internal/pager"
	"tabpager/ui/tui/state"
)

func TestColorFor(t *testing.T) {
	tests := []struct {
		name     string
		snap     state.Snapshot
		expected string
	}{
		{"idle", state.Snapshot{Phase: pager.Idle}, colorGreen},
		{"transitioning", state.Snapshot{Phase: pager.Transitioning}, colorYellow},
		{"error", state.Snapshot{Phase: pager.Idle, Err: errors.New("boom")}, colorRed},
	}

	for _, tt := range tests {
		result := colorFor(tt.snap)
		if result != tt.expected {
			t.Errorf("colorFor(%s) = %q; want %q", tt.name, result, tt.expected)
		}
	}
}

func TestPrint(t *testing.T) {
	labels := []string{"A", "B", "C"}
	trace := []state.Snapshot{
		{Event: "select 2", Scroll: 2, Active: 2, Indicator: 2, Phase: pager.Idle, Labels: labels},
		{Event: "scroll 1.30", Scroll: 1.3, Active: 1, Indicator: 1.3, Phase: pager.Transitioning, Labels: labels},
		{Event: "select 7", Scroll: 1.3, Active: 1, Indicator: 1.3, Phase: pager.Transitioning, Labels: labels,
			Err: errors.New("select tab: index 7 out of range [0, 3)")},
		{Event: "a very long event name that needs truncating", Labels: labels},
	}

	var buf bytes.Buffer
	Print(&buf, labels, trace)
	out := buf.String()

	for _, want := range []string{"TABPAGER REPLAY", "A | B | C", "select 2", "[C]", "1.30", "transitioning", "error: select tab", "4 events", "1 rejected", "..."} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}
