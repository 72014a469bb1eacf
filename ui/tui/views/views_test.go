package views

import (
	"fmt"
	"strings"
	"testing"

	"tabpager/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func props(width int, labels ...string) ViewProps {
	return ViewProps{
		Width:  width,
		Height: 3,
		Labels: labels,
		Style:  styles.DefaultStyle(),
	}
}

func TestRenderTabRowWidth(t *testing.T) {
	p := props(31, "A", "B", "C")
	row := RenderTabRow(p)
	if got := lipgloss.Width(row); got != 31 {
		t.Errorf("Expected tab row width 31, got %d", got)
	}
	plain := ansi.Strip(row)
	for _, l := range []string{"A", "B", "C"} {
		if !strings.Contains(plain, l) {
			t.Errorf("Expected label %q in %q", l, plain)
		}
	}
}

func TestRenderTabRowMarksZones(t *testing.T) {
	p := props(30, "A", "B")
	p.ZonePrefix = "w1_"
	var ids []string
	p.Mark = func(id, s string) string {
		ids = append(ids, id)
		return s
	}
	RenderTabRow(p)
	if fmt.Sprint(ids) != "[w1_tab_0 w1_tab_1]" {
		t.Errorf("Unexpected zone ids %v", ids)
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("Overview", 5); got != "Over…" {
		t.Errorf("Expected 'Over…', got %q", got)
	}
	if got := truncateLabel("Keys", 5); got != "Keys" {
		t.Errorf("Expected 'Keys', got %q", got)
	}
	if got := truncateLabel("Keys", 0); got != "" {
		t.Errorf("Expected empty label, got %q", got)
	}
}

func TestRenderIndicatorPosition(t *testing.T) {
	p := props(30, "A", "B", "C")
	p.Style.IndicatorColor = lipgloss.Color("205")
	p.IndicatorOffset = 1.5

	line := ansi.Strip(RenderIndicator(p))
	if lipgloss.Width(line) != 30 {
		t.Fatalf("Expected indicator width 30, got %d", lipgloss.Width(line))
	}
	want := strings.Repeat(" ", 15) + strings.Repeat("▃", 10) + strings.Repeat(" ", 5)
	if line != want {
		t.Errorf("Indicator mismatch:\n got %q\nwant %q", line, want)
	}
}

func TestRenderIndicatorHiddenAndTransparent(t *testing.T) {
	p := props(30, "A", "B", "C")
	p.Style.IndicatorHeight = 0
	if got := RenderIndicator(p); got != "" {
		t.Errorf("Expected no indicator rows for height 0, got %q", got)
	}

	p.Style.IndicatorHeight = 3
	line := ansi.Strip(RenderIndicator(p))
	if strings.TrimSpace(line) != "" || lipgloss.Width(line) != 30 {
		t.Errorf("Expected a blank 30-wide row for a transparent indicator, got %q", line)
	}
}

func TestRenderPagerSlicesPages(t *testing.T) {
	pages := []string{"aaaaaaaaaa", "bbbbbbbbbb"}
	p := ViewProps{
		Width:  10,
		Height: 1,
		Pages: func(i int) (string, bool) {
			if i < 0 || i >= len(pages) {
				return "", false
			}
			return pages[i], true
		},
	}

	cases := []struct {
		scroll float64
		want   string
	}{
		{0, "aaaaaaaaaa"},
		{0.3, "aaaaaaabbb"},
		{1, "bbbbbbbbbb"},
		{-0.2, "  aaaaaaaa"},
		{1.5, "bbbbb     "},
	}
	for _, c := range cases {
		p.Scroll = c.scroll
		got := ansi.Strip(RenderPager(p))
		if got != c.want {
			t.Errorf("scroll %.1f: got %q, want %q", c.scroll, got, c.want)
		}
	}
}

func TestRenderFrame(t *testing.T) {
	out := RenderFrame("tabs", "body", "")
	if out != "tabs\nbody" {
		t.Errorf("Unexpected frame %q", out)
	}
}
