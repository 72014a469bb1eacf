package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Page is the content shown on one pager page. It is similar to tea.Model but
// tailored for widgets that are sized by their container.
type Page interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
}

// ScrollObserver is implemented by pages that want every pager scroll
// position, not just the ones where they are visible.
type ScrollObserver interface {
	ObserveScroll(offset float64)
}
