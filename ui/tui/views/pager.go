package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPager shows the horizontal slice of the page strip that the scroll
// position selects: at 1.25 the right three quarters of page 1 followed by the
// left quarter of page 2. Positions outside the strip show blank space.
func RenderPager(p ViewProps) string {
	if p.Width <= 0 || p.Height <= 0 {
		return ""
	}

	base := math.Floor(p.Scroll)
	shift := int(math.Round((p.Scroll - base) * float64(p.Width)))
	first := int(base)

	left := pageLines(p, first)
	if shift == 0 {
		return strings.Join(left, "\n")
	}
	right := pageLines(p, first+1)

	out := make([]string, p.Height)
	for i := range out {
		out[i] = ansi.Cut(left[i]+right[i], shift, shift+p.Width)
	}
	return strings.Join(out, "\n")
}

// pageLines renders page i padded and clipped to exactly Width x Height.
func pageLines(p ViewProps, i int) []string {
	content := ""
	if p.Pages != nil {
		if s, ok := p.Pages(i); ok {
			content = s
		}
	}
	box := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		MaxWidth(p.Width).
		MaxHeight(p.Height).
		Render(content)

	lines := strings.Split(box, "\n")
	for len(lines) < p.Height {
		lines = append(lines, strings.Repeat(" ", p.Width))
	}
	return lines[:p.Height]
}
