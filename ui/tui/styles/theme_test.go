package styles

import (
	"testing"

	"tabpager/internal/config"

	"github.com/charmbracelet/lipgloss"
)

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if s.IndicatorHeight != 3 {
		t.Errorf("Expected default indicator height 3, got %d", s.IndicatorHeight)
	}
	if !s.Transparent() {
		t.Error("Expected default indicator to be transparent")
	}
	if s.Active != PrimaryText || s.Inactive != SecondaryText {
		t.Error("Expected primary/secondary text colours for labels")
	}
}

func TestIndicatorGlyphs(t *testing.T) {
	tests := []struct {
		height int
		want   []string
	}{
		{0, nil},
		{3, []string{"▃"}},
		{8, []string{"█"}},
		{11, []string{"▃", "█"}},
		{16, []string{"█", "█"}},
	}
	for _, tt := range tests {
		s := Style{IndicatorHeight: tt.height}
		got := s.IndicatorGlyphs()
		if len(got) != len(tt.want) {
			t.Fatalf("height %d: got %d rows, want %d", tt.height, len(got), len(tt.want))
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("height %d row %d: got %q, want %q", tt.height, i, got[i], tt.want[i])
			}
		}
		if s.ShowIndicator() != (tt.height > 0) {
			t.Errorf("height %d: ShowIndicator = %v", tt.height, s.ShowIndicator())
		}
	}
}

func TestFromConfig(t *testing.T) {
	s := FromConfig(config.StyleConfig{
		IndicatorHeight: 0,
		IndicatorColor:  "#ff8800",
		ActiveColor:     "205",
	})
	if s.ShowIndicator() {
		t.Error("Expected height 0 to hide the indicator")
	}
	if s.IndicatorColor != lipgloss.Color("#ff8800") {
		t.Errorf("Unexpected indicator colour %v", s.IndicatorColor)
	}
	if s.Active != lipgloss.Color("205") {
		t.Errorf("Unexpected active colour %v", s.Active)
	}
	if s.Inactive != SecondaryText {
		t.Error("Expected inactive colour to keep its default")
	}

	if !FromConfig(config.StyleConfig{IndicatorColor: "transparent"}).Transparent() {
		t.Error("Expected 'transparent' to leave the indicator blank")
	}
}
