package views

import (
	"fmt"
	"strings"

	"tabpager/internal/indicator"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TabZoneID is the hit-zone id of tab i.
func TabZoneID(prefix string, i int) string {
	return fmt.Sprintf("%stab_%d", prefix, i)
}

// RenderTabRow draws the labels in equal-width cells. The active label uses
// the active colour, every other label the inactive one.
func RenderTabRow(p ViewProps) string {
	n := len(p.Labels)
	if n == 0 || p.Width <= 0 {
		return ""
	}

	cells := make([]string, 0, n)
	for i, label := range p.Labels {
		left, right := indicator.Bounds(float64(i), n, p.Width)
		w := right - left
		if w <= 0 {
			continue
		}

		style := lipgloss.NewStyle().
			Width(w).
			Align(lipgloss.Center).
			Background(p.Style.Background).
			Foreground(p.Style.Inactive)
		if i == p.Active {
			style = style.Bold(true).Foreground(p.Style.Active)
		}

		cell := style.Render(truncateLabel(label, w-2))
		cells = append(cells, p.mark(TabZoneID(p.ZonePrefix, i), cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// RenderIndicator draws the indicator rows under the tab row. It returns ""
// when the style hides the indicator.
func RenderIndicator(p ViewProps) string {
	glyphs := p.Style.IndicatorGlyphs()
	n := len(p.Labels)
	if len(glyphs) == 0 || n == 0 || p.Width <= 0 {
		return ""
	}

	state, err := indicator.New(n)
	if err != nil {
		return ""
	}
	state.SetOffset(p.IndicatorOffset)
	x, w := state.Span(p.Width)

	bg := lipgloss.NewStyle().Background(p.Style.Background)
	bar := bg
	if !p.Style.Transparent() {
		bar = bar.Foreground(p.Style.IndicatorColor)
	}

	rows := make([]string, len(glyphs))
	for i, g := range glyphs {
		if p.Style.Transparent() {
			g = " "
		}
		rows[i] = bg.Render(strings.Repeat(" ", x)) +
			bar.Render(strings.Repeat(g, w)) +
			bg.Render(strings.Repeat(" ", p.Width-x-w))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// truncateLabel truncates a label to the given width, appending "…" if truncated.
func truncateLabel(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}
	return runewidth.Truncate(s, maxLen, "…")
}
