package views

import (
	"math"
	"strings"

	"simconsole/internal/catalog"
	"simconsole/ui/tui/state"
	"simconsole/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// FixedDescription replaces the bug name once a button has succeeded.
const FixedDescription = "Active"

// ActionMenu lists every action grouped by section.
type ActionMenu struct{}

func (v ActionMenu) Render(s state.AppState, props ViewProps) string {
	p := styles.For(s.Theme)

	var rows []string
	var group catalog.Group
	for i, a := range s.Actions {
		if a.Group != group {
			group = a.Group
			if len(rows) > 0 {
				rows = append(rows, "")
			}
			rows = append(rows, lipgloss.NewStyle().Bold(true).Foreground(p.Brand).Render(strings.ToUpper(group.Title())))
		}
		rows = append(rows, zone.Mark(ActionZone(a.ID), v.renderButton(p, a, s.Affordance(a.ID), i, props)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v ActionMenu) renderButton(p styles.Palette, a catalog.Action, aff state.Affordance, i int, props ViewProps) string {
	// selection eases toward the cursor
	dist := math.Abs(float64(i) - props.AnimCursor)
	strength := 0.0
	if dist < 1.0 {
		strength = 1.0 - dist
	}
	popOut := int(strength * 2)

	marker, markerColor := "✗", p.Danger
	desc := a.Description
	switch {
	case aff.InFlight():
		marker, markerColor = "…", p.Info
	case aff.Fixed:
		marker, markerColor = "✓", p.Success
		desc = FixedDescription
	}

	label := lipgloss.NewStyle().Width(18).Foreground(p.Text).Render(a.Label)
	if i == props.Cursor {
		label = lipgloss.NewStyle().Width(18).Bold(true).Foreground(p.Brand).Render(a.Label)
	}

	return lipgloss.NewStyle().MarginLeft(1+popOut).Render(
		lipgloss.NewStyle().Foreground(markerColor).Render(marker) + " " +
			label + " " +
			p.Hint().Render(desc),
	)
}
