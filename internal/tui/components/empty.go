// Package components turns retrieved and derived records into renderable
// blocks for the pennyflow views. Renderers are pure: same records in, same
// text out.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pennyflow/pennyflow/internal/tui/themes"
)

// EmptyState renders the placeholder shown when a list surface has nothing
// to display. Every list renders one of these instead of an empty container.
func EmptyState(theme themes.Theme, title, hint string) string {
	lines := []string{theme.Bold.Render(title)}
	if hint != "" {
		lines = append(lines, theme.Muted.Render(hint))
	}
	return theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}
