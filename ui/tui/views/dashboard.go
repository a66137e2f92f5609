package views

import (
	"fmt"

	"simconsole/ui/tui/state"
	"simconsole/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// DashboardView is the main page: actions on the left, latency and recent log on the right.
type DashboardView struct{}

func (v DashboardView) Render(s state.AppState, props ViewProps) string {
	p := styles.For(s.Theme)

	header := v.header(s, p, props)

	menu := p.Card().Render(ActionMenu{}.Render(s, props))

	logLimit := props.Height - lipgloss.Height(header) - 20
	if logLimit < 5 {
		logLimit = 5
	}
	logLines := RenderEntries(p, s.Entries, logLimit)
	if len(logLines) == 0 {
		logLines = []string{p.Hint().Render("No activity yet.")}
	}

	latency := p.Card().Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render("Response Time (ms)"),
		props.ChartView,
	))
	activityBox := p.Card().Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render("Activity Log"),
		lipgloss.JoinVertical(lipgloss.Left, logLines...),
	))

	right := lipgloss.JoinVertical(lipgloss.Left, latency, activityBox)
	body := lipgloss.JoinHorizontal(lipgloss.Top, menu, right)

	footer := p.Hint().Render("[↑/↓] Navigate • [Enter] Trigger • [Tab] Log • [T] Theme • [C] Clear • [Q] Quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (v DashboardView) header(s state.AppState, p styles.Palette, props ViewProps) string {
	title := p.Header().Render("INCIDENT RESPONSE // BUG SIMULATION CONSOLE")

	busy := ""
	if s.InFlight > 0 {
		busy = fmt.Sprintf(" %s %d in flight", props.SpinnerView, s.InFlight)
	}

	checked := ""
	if !s.LastProbe.IsZero() {
		checked = p.Hint().Render(" checked " + s.LastProbe.Format("15:04:05"))
	}

	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Center,
		title,
		"  ",
		ConnectivityBadge(p, s.Connectivity),
		checked,
		busy,
		"  ",
		zone.Mark(ZoneThemeToggle, button.Render(s.Theme.ToggleLabel())),
		zone.Mark(ZoneClearLog, button.Render("🧹 Clear")),
	)
}
