package styles

import (
	"simconsole/internal/activity"

	"github.com/charmbracelet/lipgloss"
)

// Mode is the active colour scheme. The zero value is light.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeLight {
		return ModeDark
	}
	return ModeLight
}

// ToggleLabel names the mode the toggle switches to.
func (m Mode) ToggleLabel() string {
	if m == ModeLight {
		return "🌙 Dark"
	}
	return "☀️ Light"
}

// Palette is the set of colours a view draws with.
type Palette struct {
	Text    lipgloss.Color
	Subtle  lipgloss.Color
	Border  lipgloss.Color
	Brand   lipgloss.Color
	Success lipgloss.Color
	Danger  lipgloss.Color
	Info    lipgloss.Color
	System  lipgloss.Color
	Surface lipgloss.Color
}

var (
	dark = Palette{
		Text:    lipgloss.Color("#EEEEEE"),
		Subtle:  lipgloss.Color("#777777"),
		Border:  lipgloss.Color("#444444"),
		Brand:   lipgloss.Color("#F27B24"),
		Success: lipgloss.Color("#73F59F"),
		Danger:  lipgloss.Color("#FF5F5F"),
		Info:    lipgloss.Color("#7D56F4"),
		System:  lipgloss.Color("#E5C07B"),
		Surface: lipgloss.Color("#1E1E2E"),
	}
	light = Palette{
		Text:    lipgloss.Color("#1F1F1F"),
		Subtle:  lipgloss.Color("#8A8A8A"),
		Border:  lipgloss.Color("#D9DCCF"),
		Brand:   lipgloss.Color("#D35400"),
		Success: lipgloss.Color("#2E9E4F"),
		Danger:  lipgloss.Color("#C0392B"),
		Info:    lipgloss.Color("#874BFD"),
		System:  lipgloss.Color("#B7791F"),
		Surface: lipgloss.Color("#FAFAFA"),
	}
)

// For returns the palette for m.
func For(m Mode) Palette {
	if m == ModeLight {
		return light
	}
	return dark
}

func (p Palette) Header() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(p.Brand).
		Padding(0, 2)
}

func (p Palette) Card() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
}

func (p Palette) Hint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Subtle)
}

// Outcome tints modal titles: success or danger.
func (p Palette) Outcome(success bool) lipgloss.Style {
	c := p.Danger
	if success {
		c = p.Success
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}

// Category colours a log entry.
func (p Palette) Category(c activity.Category) lipgloss.Style {
	s := lipgloss.NewStyle()
	switch c {
	case activity.CategorySuccess:
		return s.Foreground(p.Success)
	case activity.CategoryError:
		return s.Foreground(p.Danger)
	case activity.CategorySystem:
		return s.Foreground(p.System)
	default:
		return s.Foreground(p.Info)
	}
}
