package components

import (
	"fmt"

	"tabpager/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// traceCapacity is the number of scroll samples kept for the chart.
const traceCapacity = 60

// TracePage charts the recent pager scroll positions.
type TracePage struct {
	Chart   linechart.Model
	History []float64
	Width   int
	Height  int
	pages   int
}

// NewTracePage creates a trace for a pager with pages pages.
func NewTracePage(pages int) *TracePage {
	maxY := float64(pages - 1)
	if maxY < 1 {
		maxY = 1
	}
	// width, height, minX, maxX, minY, maxY
	lc := linechart.New(traceCapacity, 8, 0, traceCapacity, 0, maxY)
	return &TracePage{
		Chart:   lc,
		History: make([]float64, 0, traceCapacity+1),
		pages:   pages,
	}
}

// ObserveScroll records one scroll sample.
func (c *TracePage) ObserveScroll(offset float64) {
	c.History = append(c.History, offset)
	if len(c.History) > traceCapacity {
		c.History = c.History[1:]
	}
}

func (c *TracePage) Update(msg tea.Msg) tea.Cmd {
	return nil
}

func (c *TracePage) SetSize(w, h int) {
	c.Width = w
	c.Height = h
	// Leave room for the card border and title.
	cw, ch := w-4, h-4
	if cw > 10 && ch > 3 {
		c.Chart.Resize(cw, ch)
	}
}

func (c *TracePage) View() string {
	c.Chart.Clear()
	for i := 0; i < len(c.History)-1; i++ {
		c.Chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: clampY(c.History[i], c.pages)},
			canvas.Float64Point{X: float64(i + 1), Y: clampY(c.History[i+1], c.pages)},
		)
	}
	c.Chart.DrawXYAxisAndLabel()

	title := "Scroll position"
	if n := len(c.History); n > 0 {
		title = fmt.Sprintf("Scroll position: %.2f", c.History[n-1])
	}

	return styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(title),
			c.Chart.View(),
		),
	)
}

func clampY(v float64, pages int) float64 {
	if v < 0 {
		return 0
	}
	if hi := float64(pages - 1); v > hi {
		return hi
	}
	return v
}
