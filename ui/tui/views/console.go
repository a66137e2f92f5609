package views

import (
	"fmt"
	"strings"

	"simconsole/ui/tui/state"
	"simconsole/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// ConsoleView shows the whole activity log, newest first.
type ConsoleView struct{}

func (v ConsoleView) Render(s state.AppState, props ViewProps) string {
	p := styles.For(s.Theme)
	header := consoleHeader(p, props.Width, len(s.Entries))
	availableHeight := consoleRows(header, props.Height)

	lines := RenderEntries(p, s.Entries, 0)
	totalLines := len(lines)

	scrollY := ClampScroll(props.ScrollY, totalLines, availableHeight)

	end := scrollY + availableHeight
	if end > totalLines {
		end = totalLines
	}

	viewContent := strings.Join(lines[scrollY:end], "\n")
	if totalLines == 0 {
		viewContent = p.Hint().Render("No activity yet.")
	}

	boxWidth := props.Width - 4
	if boxWidth < 10 {
		boxWidth = 10
	}
	box := lipgloss.NewStyle().
		Width(boxWidth).
		Height(availableHeight).
		Padding(0, 1).
		Render(viewContent)

	footerText := fmt.Sprintf("Scroll: %d/%d • [Tab] back • [C] clear", scrollY, totalLines)
	if totalLines > availableHeight {
		footerText += " • Use ↑/↓ to scroll"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Padding(1, 2).Render(box),
		lipgloss.NewStyle().PaddingLeft(2).Render(p.Hint().Render(footerText)),
	)
}

func consoleHeader(p styles.Palette, width, entries int) string {
	return p.Header().Width(width).Render(fmt.Sprintf("Activity Log (%d entries)", entries))
}

func consoleRows(header string, height int) int {
	rows := height - lipgloss.Height(header) - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

// ConsoleRows is how many log lines the console page shows at this size.
func ConsoleRows(s state.AppState, width, height int) int {
	return consoleRows(consoleHeader(styles.For(s.Theme), width, len(s.Entries)), height)
}

// ClampScroll keeps a scroll offset inside [0, total-visible].
func ClampScroll(scrollY, total, visible int) int {
	if scrollY > total-visible {
		scrollY = total - visible
	}
	if scrollY < 0 {
		scrollY = 0
	}
	return scrollY
}
