package views

import (
	"github.com/charmbracelet/lipgloss"
)

// RenderFrame lays out the whole widget: tab bar, pager body and footer.
func RenderFrame(tabBar, body, footer string) string {
	parts := []string{tabBar, body}
	if footer != "" {
		parts = append(parts, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
