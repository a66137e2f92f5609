package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"simconsole/internal/activity"
	"simconsole/internal/simclient"
)

func newClient(t *testing.T, url string) *simclient.Client {
	t.Helper()
	c, err := simclient.New(url, 2*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func systemEntries(l *activity.Log) int {
	n := 0
	for _, e := range l.Entries() {
		if e.Category == activity.CategorySystem {
			n++
		}
	}
	return n
}

func TestMonitor_InitialState(t *testing.T) {
	m := NewMonitor(&stubDoer{}, activity.New())

	if m.State() != StateUnknown {
		t.Errorf("expected unknown before first probe, got %s", m.State())
	}
	if m.State().Online() || m.State().Label() != "Offline" {
		t.Error("unknown must render as offline")
	}
	if !m.LastCheck().IsZero() || m.LastError() != "" {
		t.Error("no probe yet")
	}
}

func TestMonitor_Online(t *testing.T) {
	var gotPath, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Incident Response Simulation Backend"}`))
	}))
	defer server.Close()

	journal := activity.New()
	m := NewMonitor(newClient(t, server.URL), journal)

	if s := m.Probe(context.Background()); s != StateOnline {
		t.Fatalf("expected online, got %s", s)
	}
	if gotPath != "/" || gotMethod != http.MethodGet {
		t.Errorf("probe hit %s %s", gotMethod, gotPath)
	}
	if journal.Len() != 0 {
		t.Errorf("successful probes log nothing, got %d entries", journal.Len())
	}
	if m.State().Label() != "Online" || m.LastError() != "" {
		t.Errorf("state=%s err=%q", m.State(), m.LastError())
	}
}

func TestMonitor_HTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	journal := activity.New()
	m := NewMonitor(newClient(t, server.URL), journal)

	if s := m.Probe(context.Background()); s != StateOffline {
		t.Fatalf("expected offline, got %s", s)
	}
	if m.LastError() == "" {
		t.Error("expected an error reason")
	}

	entries := journal.Entries()
	if len(entries) != 1 || entries[0].Category != activity.CategorySystem || entries[0].Text != ReconnectMessage {
		t.Errorf("unexpected entries %+v", entries)
	}
}

func TestMonitor_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	journal := activity.New()
	m := NewMonitor(newClient(t, url), journal, WithTimeout(time.Second))

	if s := m.Probe(context.Background()); s != StateOffline {
		t.Fatalf("expected offline on connection error, got %s", s)
	}
	if m.LastError() == "" {
		t.Error("expected error message for connection failure")
	}
}

func TestMonitor_OneEntryPerFailedProbe(t *testing.T) {
	var healthy atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	journal := activity.New()
	m := NewMonitor(newClient(t, server.URL), journal)
	ctx := context.Background()

	m.Probe(ctx)
	m.Probe(ctx)
	m.Probe(ctx)
	if n := systemEntries(journal); n != 3 {
		t.Errorf("expected 3 system entries after 3 failures, got %d", n)
	}

	healthy.Store(true)
	m.Probe(ctx)
	m.Probe(ctx)
	if n := systemEntries(journal); n != 3 {
		t.Errorf("successful probes must not log, got %d", n)
	}
	if m.State() != StateOnline {
		t.Errorf("expected online after recovery, got %s", m.State())
	}

	healthy.Store(false)
	m.Probe(ctx)
	if m.State() != StateOffline || systemEntries(journal) != 4 {
		t.Errorf("expected offline with 4 entries, got %s / %d", m.State(), systemEntries(journal))
	}
	if m.Probes() != 6 {
		t.Errorf("expected 6 probes, got %d", m.Probes())
	}
}

func TestMonitor_Run(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m := NewMonitor(newClient(t, server.URL), activity.New(), WithInterval(20*time.Millisecond))
	if m.Interval() != 20*time.Millisecond {
		t.Fatalf("interval = %v", m.Interval())
	}

	ctx, cancel := context.WithCancel(context.Background())
	var mu sync.Mutex
	var states []State
	done := make(chan struct{})
	go func() {
		m.Run(ctx, func(s State) {
			mu.Lock()
			states = append(states, s)
			mu.Unlock()
		})
		close(done)
	}()

	time.Sleep(110 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(states) < 2 {
		t.Fatalf("expected an initial probe plus ticks, got %d", len(states))
	}
	for _, s := range states {
		if s != StateOnline {
			t.Errorf("unexpected state %s", s)
		}
	}
}

type stubDoer struct{}

func (stubDoer) Do(context.Context, simclient.Request) simclient.Outcome {
	return simclient.Outcome{Kind: simclient.KindSuccess, StatusCode: 200}
}
