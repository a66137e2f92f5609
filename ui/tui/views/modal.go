package views

import (
	"strings"

	"simconsole/ui/tui/state"
	"simconsole/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const maxPayloadLines = 14

// ModalView draws the result dialog centred over a blank backdrop.
type ModalView struct{}

func (v ModalView) Render(s state.AppState, props ViewProps) string {
	p := styles.For(s.Theme)
	m := s.Modal

	width := 64
	if props.Width > 0 && props.Width-4 < width {
		width = props.Width - 4
	}
	if width < 20 {
		width = 20
	}

	closeBtn := zone.Mark(ZoneModalClose, lipgloss.NewStyle().
		Foreground(p.Subtle).
		Render("[ x ]"))

	titleRow := lipgloss.JoinHorizontal(lipgloss.Top,
		p.Outcome(m.Success).Width(width-8).Render(m.Title),
		closeBtn,
	)

	parts := []string{titleRow, "", lipgloss.NewStyle().Width(width - 4).Render(m.Message)}
	if m.Payload != "" {
		parts = append(parts, "",
			lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(p.Border).
				Foreground(p.Subtle).
				Width(width-6).
				Render(TruncateLines(m.Payload, maxPayloadLines)),
		)
	}
	parts = append(parts, "", p.Hint().Render("[Esc] close • click outside to dismiss"))

	border := p.Danger
	if m.Success {
		border = p.Success
	}
	body := zone.Mark(ZoneModalBody, lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))

	if props.Width <= 0 || props.Height <= 0 {
		return body
	}
	return lipgloss.Place(props.Width, props.Height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(p.Border),
	)
}

// TruncateLines keeps the first n lines of s and marks the cut.
func TruncateLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n") + "\n…"
}
