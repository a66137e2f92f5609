// Package health tracks whether the simulation backend is reachable.
package health

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"simconsole/internal/activity"
	"simconsole/internal/logger"
	"simconsole/internal/simclient"
)

// State is the connectivity indicator.
type State int32

const (
	StateUnknown State = iota // before the first probe completes
	StateOnline
	StateOffline
)

func (s State) String() string {
	switch s {
	case StateOnline:
		return "online"
	case StateOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// Online reports whether the indicator should read "Online". Unknown reads offline.
func (s State) Online() bool {
	return s == StateOnline
}

// Label is the indicator text.
func (s State) Label() string {
	if s.Online() {
		return "Online"
	}
	return "Offline"
}

// ReconnectMessage is logged once per failed probe.
const ReconnectMessage = "📡 Connecting to backend..."

// Journal receives the reconnect notice.
type Journal interface {
	Append(category activity.Category, text string)
}

// Monitor probes GET / and keeps the last classification.
type Monitor struct {
	doer     simclient.Doer
	journal  Journal
	interval time.Duration
	timeout  time.Duration
	logger   *logger.Logger

	state     atomic.Int32
	lastCheck atomic.Value // time.Time
	lastError atomic.Value // string
	probes    atomic.Int64
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithInterval sets the probe period (default 30s).
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithTimeout bounds a single probe (default 5s).
func WithTimeout(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithLogger attaches a diagnostic logger.
func WithLogger(l *logger.Logger) Option {
	return func(m *Monitor) {
		if l != nil {
			m.logger = l.WithComponent("health")
		}
	}
}

// NewMonitor creates a monitor in StateUnknown. Nothing runs until Probe or Run.
func NewMonitor(doer simclient.Doer, journal Journal, opts ...Option) *Monitor {
	m := &Monitor{
		doer:     doer,
		journal:  journal,
		interval: 30 * time.Second,
		timeout:  5 * time.Second,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	m.state.Store(int32(StateUnknown))
	m.lastError.Store("")
	return m
}

// Probe issues one GET / and records the result. Any 2xx is online,
// everything else is offline and appends one system entry.
func (m *Monitor) Probe(ctx context.Context) State {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	out := m.doer.Do(ctx, simclient.Request{Method: http.MethodGet, Path: "/"})
	m.probes.Add(1)
	m.lastCheck.Store(time.Now())

	if out.OK() {
		m.state.Store(int32(StateOnline))
		m.lastError.Store("")
		return StateOnline
	}

	errMsg := out.ErrorMessage()
	if errMsg == "" {
		errMsg = http.StatusText(out.StatusCode)
		if errMsg == "" {
			errMsg = "unexpected status"
		}
	}
	m.state.Store(int32(StateOffline))
	m.lastError.Store(errMsg)
	m.journal.Append(activity.CategorySystem, ReconnectMessage)
	m.logger.Debug("health probe failed", "status_code", out.StatusCode, "error", errMsg)
	return StateOffline
}

// Run probes immediately and then every interval until ctx is done. notify,
// if set, receives each probe's state.
func (m *Monitor) Run(ctx context.Context, notify func(State)) {
	emit := func(s State) {
		if notify != nil {
			notify(s)
		}
	}

	emit(m.Probe(ctx))

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			emit(m.Probe(ctx))
		}
	}
}

// State returns the most recent classification.
func (m *Monitor) State() State {
	return State(m.state.Load())
}

// Interval is the probe period.
func (m *Monitor) Interval() time.Duration {
	return m.interval
}

// LastCheck returns the time of the last probe.
func (m *Monitor) LastCheck() time.Time {
	if v := m.lastCheck.Load(); v != nil {
		return v.(time.Time)
	}
	return time.Time{}
}

// LastError returns the last failure reason, if any.
func (m *Monitor) LastError() string {
	if v := m.lastError.Load(); v != nil {
		return v.(string)
	}
	return ""
}

// Probes is the number of completed probes.
func (m *Monitor) Probes() int64 {
	return m.probes.Load()
}
