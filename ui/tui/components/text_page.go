package components

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// TextPage shows static text in a vertically scrollable viewport.
type TextPage struct {
	vp      viewport.Model
	content string
}

// NewTextPage creates a page showing content.
func NewTextPage(content string) *TextPage {
	vp := viewport.New(0, 0)
	vp.SetContent(content)
	return &TextPage{vp: vp, content: content}
}

// NewFilePage creates a text page from the contents of a file.
func NewFilePage(path string) (*TextPage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read page %s: %w", path, err)
	}
	return NewTextPage(string(data)), nil
}

func (p *TextPage) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return cmd
}

func (p *TextPage) SetSize(width, height int) {
	p.vp.Width = width
	p.vp.Height = height
	// Re-wrap against the new size.
	p.vp.SetContent(p.content)
}

func (p *TextPage) View() string {
	return p.vp.View()
}

// YOffset is the first visible line.
func (p *TextPage) YOffset() int {
	return p.vp.YOffset
}
