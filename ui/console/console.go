package console

import (
	"fmt"
	"io"
	"strings"

	"tabpager/internal/pager"
	"tabpager/ui/tui/state"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Print renders a replay trace to the writer, one compact line per event.
func Print(w io.Writer, labels []string, trace []state.Snapshot) {
	fmt.Fprintf(w, "%s%s %s%s\n", colorCyan, "■", "TABPAGER REPLAY", colorReset)
	fmt.Fprintf(w, "%s─ Tabs%s: %s\n", colorCyan, colorReset, strings.Join(labels, " | "))

	for i, s := range trace {
		PrintSnapshot(w, i+1, s)
	}

	failed := 0
	for _, s := range trace {
		if s.Err != nil {
			failed++
		}
	}
	summary := fmt.Sprintf("%d events", len(trace))
	if failed > 0 {
		summary += fmt.Sprintf(", %s%d rejected%s", colorRed, failed, colorReset)
	}
	fmt.Fprintf(w, "%s─ Summary%s: %s\n\n", colorCyan, colorReset, summary)
}

// PrintSnapshot writes one trace line.
func PrintSnapshot(w io.Writer, n int, s state.Snapshot) {
	event := s.Event
	if len(event) > 24 {
		event = event[:21] + "..."
	}
	dots := strings.Repeat("·", 25-len(event))

	color := colorFor(s)
	status := s.Phase.String()
	if s.Err != nil {
		status = "error: " + s.Err.Error()
	}

	fmt.Fprintf(w, "  %3d %s%s%s scroll %6.2f  tab %d %-10s indicator %6.2f  %s%s%s\n",
		n, event, colorCyan, dots+colorReset,
		s.Scroll, s.Active, "["+s.ActiveLabel()+"]", s.Indicator,
		color, status, colorReset)
}

func colorFor(s state.Snapshot) string {
	switch {
	case s.Err != nil:
		return colorRed
	case s.Phase == pager.Transitioning:
		return colorYellow
	default:
		return colorGreen
	}
}
