package styles

import (
	"strings"

	"tabpager/internal/config"

	"github.com/charmbracelet/lipgloss"
)

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// PrimaryText and SecondaryText stand in for the platform label colours.
	PrimaryText   = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FAFAFA"}
	SecondaryText = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8A8A"}

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(Subtle).
			PaddingLeft(1)
)

// Style is the look of the tab bar.
type Style struct {
	// IndicatorHeight is measured in eighths of a terminal row. Zero removes
	// the indicator row entirely.
	IndicatorHeight int
	// IndicatorColor nil means transparent: the row is kept but drawn blank.
	IndicatorColor lipgloss.TerminalColor
	Background     lipgloss.TerminalColor
	Active         lipgloss.TerminalColor
	Inactive       lipgloss.TerminalColor
}

// DefaultStyle returns the defaults: a 3/8 row indicator that is transparent,
// the terminal background and primary/secondary text for labels.
func DefaultStyle() Style {
	return Style{
		IndicatorHeight: 3,
		Background:      lipgloss.NoColor{},
		Active:          PrimaryText,
		Inactive:        SecondaryText,
	}
}

// FromConfig builds a Style, keeping the default for every empty colour.
func FromConfig(c config.StyleConfig) Style {
	s := DefaultStyle()
	s.IndicatorHeight = c.IndicatorHeight
	if c.IndicatorColor != "" && !strings.EqualFold(c.IndicatorColor, "transparent") {
		s.IndicatorColor = lipgloss.Color(c.IndicatorColor)
	}
	if c.BackgroundColor != "" {
		s.Background = lipgloss.Color(c.BackgroundColor)
	}
	if c.ActiveColor != "" {
		s.Active = lipgloss.Color(c.ActiveColor)
	}
	if c.InactiveColor != "" {
		s.Inactive = lipgloss.Color(c.InactiveColor)
	}
	return s
}

// ShowIndicator reports whether the indicator gets any rows at all.
func (s Style) ShowIndicator() bool {
	return s.IndicatorHeight > 0
}

// Transparent reports whether the indicator is drawn blank.
func (s Style) Transparent() bool {
	return s.IndicatorColor == nil
}

// IndicatorRows is the number of terminal rows the indicator occupies.
func (s Style) IndicatorRows() int {
	if s.IndicatorHeight <= 0 {
		return 0
	}
	return (s.IndicatorHeight + 7) / 8
}

var lowerBlocks = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// IndicatorGlyphs returns the glyph for each indicator row, top row first. The
// bar sits on the bottom edge, so only the top row can be a partial block.
func (s Style) IndicatorGlyphs() []string {
	rows := s.IndicatorRows()
	if rows == 0 {
		return nil
	}
	glyphs := make([]string, rows)
	for i := range glyphs {
		glyphs[i] = lowerBlocks[7]
	}
	if rem := s.IndicatorHeight % 8; rem != 0 {
		glyphs[0] = lowerBlocks[rem-1]
	}
	return glyphs
}
