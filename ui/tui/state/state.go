package state

import (
	"time"

	"simconsole/internal/activity"
	"simconsole/internal/catalog"
	"simconsole/internal/health"
	"simconsole/ui/tui/styles"
)

type Page int

const (
	PageDashboard Page = iota
	PageConsole        // full activity log
)

// Affordance is the display state of one action button.
type Affordance struct {
	Busy  int // calls in flight from this button
	Fixed bool
}

// InFlight reports whether at least one call from the button is pending.
func (a Affordance) InFlight() bool {
	return a.Busy > 0
}

// Modal is the single result dialog.
type Modal struct {
	Title   string
	Message string
	Payload string
	Success bool
	Visible bool
}

// Show replaces the dialog content and opens it.
func (m *Modal) Show(title, message, payload string, success bool) {
	m.Title = title
	m.Message = message
	m.Payload = payload
	m.Success = success
	m.Visible = true
}

// Close hides the dialog. Content is kept until the next Show.
func (m *Modal) Close() {
	m.Visible = false
}

// AppState holds everything the views render.
type AppState struct {
	Actions      []catalog.Action
	Affordances  map[string]Affordance
	Entries      []activity.Entry // newest first
	Connectivity health.State
	LastProbe    time.Time
	Modal        Modal
	Theme        styles.Mode
	InFlight     int
	CurrentPage  Page
}

// New builds the initial state for actions.
func New(actions []catalog.Action) AppState {
	return AppState{
		Actions:      actions,
		Affordances:  make(map[string]Affordance, len(actions)),
		Connectivity: health.StateUnknown,
		Theme:        styles.ModeLight,
		CurrentPage:  PageDashboard,
	}
}

// Affordance returns the button state for id.
func (s AppState) Affordance(id string) Affordance {
	return s.Affordances[id]
}

// AdjustBusy adds delta to the button's in-flight count, never going below zero.
func (s *AppState) AdjustBusy(id string, delta int) {
	if s.Affordances == nil {
		s.Affordances = make(map[string]Affordance)
	}
	a := s.Affordances[id]
	a.Busy += delta
	if a.Busy < 0 {
		a.Busy = 0
	}
	s.Affordances[id] = a
}

// MarkFixed flips the button to fixed. It never flips back.
func (s *AppState) MarkFixed(id string) {
	if s.Affordances == nil {
		s.Affordances = make(map[string]Affordance)
	}
	a := s.Affordances[id]
	a.Fixed = true
	s.Affordances[id] = a
}
