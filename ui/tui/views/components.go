package views

import (
	"fmt"

	"simconsole/internal/activity"
	"simconsole/internal/health"
	"simconsole/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// RenderEntry formats one log line as "[15:04:05] text".
func RenderEntry(p styles.Palette, e activity.Entry) string {
	stamp := p.Hint().Render(fmt.Sprintf("[%s]", e.Stamp()))
	return stamp + " " + p.Category(e.Category).Render(e.Text)
}

// RenderEntries renders at most limit entries; limit <= 0 means all.
func RenderEntries(p styles.Palette, entries []activity.Entry, limit int) []string {
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, RenderEntry(p, e))
	}
	return lines
}

// ConnectivityBadge is the online/offline indicator.
func ConnectivityBadge(p styles.Palette, s health.State) string {
	c := p.Danger
	if s.Online() {
		c = p.Success
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c).Render("● " + s.Label())
}
