package tui

import (
	"context"
	"time"

	"simconsole/internal/activity"
	"simconsole/internal/catalog"
	"simconsole/internal/config"
	"simconsole/internal/health"
	"simconsole/internal/logger"
	"simconsole/internal/metrics"
	"simconsole/internal/orchestrator"
	"simconsole/internal/simclient"
	"simconsole/ui/tui/components"
	"simconsole/ui/tui/state"
	"simconsole/ui/tui/views"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Deps are the services the console drives.
type Deps struct {
	Client  simclient.Doer
	Journal *activity.Log
	Table   *catalog.Table
	Monitor *health.Monitor  // built from Client when nil
	Metrics *metrics.Metrics // optional
	Logger  *logger.Logger   // optional
}

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	cfg     config.Config
	journal *activity.Log
	orch    *orchestrator.Orchestrator
	monitor *health.Monitor
	metrics *metrics.Metrics
	bridge  *bridge
	log     *logger.Logger

	state    state.AppState
	spinner  spinner.Model
	latency  *components.LatencyWidget
	cursor   int
	anim     float64
	velocity float64 // Physics velocity
	spring   harmonica.Spring
	scrollY  int

	// hit reports whether msg landed in the zone id.
	hit func(id string, msg tea.MouseMsg) bool

	ctx      context.Context
	cancel   context.CancelFunc
	quitting bool
	width    int
	height   int
}

// Messages
type TickMsg time.Time
type AnimateMsg time.Time
type ProbeResultMsg struct {
	State health.State
	At    time.Time
}

func InitialModel(cfg config.Config, deps Deps) *MainModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	// Increased frequency (12.0) for faster response and damping (0.9) to prevent overshoot
	spring := harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9)

	log := deps.Logger
	if log == nil {
		log = logger.Discard()
	}
	journal := deps.Journal
	if journal == nil {
		journal = activity.New()
	}

	actions := catalog.Actions()
	ids := make([]string, len(actions))
	for i, a := range actions {
		ids[i] = a.ID
	}
	b := newBridge(ids)

	opts := []orchestrator.Option{
		orchestrator.WithAffordances(b),
		orchestrator.WithObserver(b),
		orchestrator.WithLogger(log),
	}
	if deps.Metrics != nil {
		opts = append(opts, orchestrator.WithObserver(deps.Metrics))
	}

	monitor := deps.Monitor
	if monitor == nil {
		monitor = health.NewMonitor(deps.Client, journal,
			health.WithInterval(cfg.ProbeInterval),
			health.WithTimeout(cfg.ProbeTimeout),
			health.WithLogger(log),
		)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &MainModel{
		cfg:     cfg,
		journal: journal,
		orch:    orchestrator.New(deps.Client, journal, b, deps.Table, opts...),
		monitor: monitor,
		metrics: deps.Metrics,
		bridge:  b,
		log:     log.WithComponent("tui"),
		state:   state.New(actions),
		spinner: s,
		latency: components.NewLatencyWidget(30, 8, cfg.LatencyHistory),
		spring:  spring,
		hit: func(id string, msg tea.MouseMsg) bool {
			return zone.Get(id).InBounds(msg)
		},
		ctx:    ctx,
		cancel: cancel,
	}
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return tea.Batch(
		m.spinner.Tick,
		m.probeCmd(),
		m.tickCmd(),
		animateCmd(),
	)
}

// Commands
func (m *MainModel) tickCmd() tea.Cmd {
	return tea.Tick(m.monitor.Interval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func (m *MainModel) probeCmd() tea.Cmd {
	ctx, monitor := m.ctx, m.monitor
	return func() tea.Msg {
		return ProbeResultMsg{State: monitor.Probe(ctx), At: time.Now()}
	}
}

// triggerCmd runs one action. Its effects come back through the bridge.
func (m *MainModel) triggerCmd(a catalog.Action) tea.Cmd {
	ctx, orch := m.ctx, m.orch
	return func() tea.Msg {
		orch.Execute(ctx, orchestrator.CallFor(a))
		return nil
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case TickMsg:
		return m, tea.Batch(m.probeCmd(), m.tickCmd())

	case ProbeResultMsg:
		m.state.Connectivity = msg.State
		m.state.LastProbe = msg.At
		m.metrics.SetConnectivity(msg.State)
		m.syncEntries()
		return m, nil

	case modalMsg:
		m.state.Modal.Show(msg.Title, msg.Message, msg.Payload, msg.Success)
		return m, nil

	case affordanceMsg:
		m.state.AdjustBusy(msg.ID, msg.Delta)
		m.syncEntries()
		return m, nil

	case affordanceFixedMsg:
		m.state.MarkFixed(msg.ID)
		return m, nil

	case callDoneMsg:
		return m.handleCallDone(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	}

	if m.state.Modal.Visible {
		switch msg.String() {
		case "esc", "x", "enter":
			m.state.Modal.Close()
		}
		return m, nil
	}

	switch msg.String() {
	case "t":
		m.toggleTheme()
		return m, nil
	case "c":
		m.clearLog()
		return m, nil
	case "tab":
		if m.state.CurrentPage == state.PageDashboard {
			m.state.CurrentPage = state.PageConsole
		} else {
			m.state.CurrentPage = state.PageDashboard
			m.scrollY = 0
		}
		return m, nil
	}

	if m.state.CurrentPage == state.PageDashboard {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.state.Actions)-1 {
				m.cursor++
			}
		case "enter":
			return m, m.trigger(m.cursor)
		}
		return m, nil
	}

	if m.state.CurrentPage == state.PageConsole {
		switch msg.String() {
		case "up", "k":
			if m.scrollY > 0 {
				m.scrollY--
			}
		case "down", "j":
			m.scrollY = m.clampScroll(m.scrollY + 1)
		case "b", "esc", "backspace":
			m.state.CurrentPage = state.PageDashboard
			m.scrollY = 0
		}
	}

	return m, nil
}

func (m *MainModel) trigger(i int) tea.Cmd {
	if i < 0 || i >= len(m.state.Actions) {
		return nil
	}
	a := m.state.Actions[i]
	m.state.InFlight++
	m.log.Debug("action triggered", "action", a.ID, "endpoint", a.Endpoint)
	return m.triggerCmd(a)
}

func (m *MainModel) toggleTheme() {
	m.state.Theme = m.state.Theme.Toggle()
}

func (m *MainModel) clearLog() {
	m.journal.Clear()
	m.scrollY = 0
	m.syncEntries()
}

func (m *MainModel) syncEntries() {
	m.state.Entries = m.journal.Entries()
	m.scrollY = m.clampScroll(m.scrollY)
}

func (m *MainModel) clampScroll(y int) int {
	return views.ClampScroll(y, len(m.state.Entries), views.ConsoleRows(m.state, m.width, m.height))
}

func (m *MainModel) handleCallDone(msg callDoneMsg) (tea.Model, tea.Cmd) {
	if m.state.InFlight > 0 {
		m.state.InFlight--
	}
	if msg.Outcome.Kind != simclient.KindTransport {
		m.latency.Push(float64(msg.Outcome.Millis()))
	}
	m.syncEntries()
	return m, nil
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	m.anim, m.velocity = m.spring.Update(m.anim, m.velocity, float64(m.cursor))
	return m, animateCmd()
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	newW := msg.Width - 66
	if newW > 10 {
		m.latency.Resize(newW, 8)
	}
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	if m.state.Modal.Visible {
		// anything outside the body is backdrop
		if m.hit(views.ZoneModalClose, msg) || !m.hit(views.ZoneModalBody, msg) {
			m.state.Modal.Close()
		}
		return m, nil
	}

	if m.state.CurrentPage != state.PageDashboard {
		return m, nil
	}

	switch {
	case m.hit(views.ZoneThemeToggle, msg):
		m.toggleTheme()
		return m, nil
	case m.hit(views.ZoneClearLog, msg):
		m.clearLog()
		return m, nil
	}

	for i, a := range m.state.Actions {
		if m.hit(views.ActionZone(a.ID), msg) {
			m.cursor = i
			return m, m.trigger(i)
		}
	}
	return m, nil
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	if m.state.Modal.Visible {
		return zone.Scan(views.RenderModal(m.state, m.width, m.height))
	}

	switch m.state.CurrentPage {
	case state.PageConsole:
		return zone.Scan(views.RenderConsole(m.state, m.width, m.height, m.scrollY))
	default:
		return zone.Scan(views.RenderDashboard(m.state, m.width, m.height, m.cursor, m.anim, m.spinner.View(), m.latency.View()))
	}
}

func Start(cfg config.Config, deps Deps) error {
	m := InitialModel(cfg, deps)
	defer m.cancel()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	m.bridge.attach(p.Send)
	_, err := p.Run()
	return err
}
