package tui

import (
	"sync"

	"simconsole/internal/orchestrator"
	"simconsole/internal/simclient"

	tea "github.com/charmbracelet/bubbletea"
)

// Messages delivered from call goroutines into the event loop.
type modalMsg orchestrator.Result

type affordanceMsg struct {
	ID    string
	Delta int
}

type affordanceFixedMsg struct {
	ID string
}

type callDoneMsg struct {
	Call    orchestrator.Call
	Outcome simclient.Outcome
}

// bridge turns orchestrator callbacks into tea messages so that only
// Update ever touches the model.
type bridge struct {
	mu    sync.RWMutex
	send  func(tea.Msg)
	known map[string]struct{}
}

func newBridge(ids []string) *bridge {
	known := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}
	return &bridge{known: known}
}

func (b *bridge) attach(send func(tea.Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = send
}

func (b *bridge) dispatch(msg tea.Msg) {
	b.mu.RLock()
	send := b.send
	b.mu.RUnlock()
	if send != nil {
		send(msg)
	}
}

func (b *bridge) Show(title, message, payload string, success bool) {
	b.dispatch(modalMsg{Title: title, Message: message, Payload: payload, Success: success})
}

func (b *bridge) Resolve(id string) (orchestrator.Affordance, bool) {
	if _, ok := b.known[id]; !ok {
		return nil, false
	}
	return button{b: b, id: id}, true
}

func (b *bridge) Observe(call orchestrator.Call, outcome simclient.Outcome) {
	b.dispatch(callDoneMsg{Call: call, Outcome: outcome})
}

// button is the orchestrator's handle on one action button.
type button struct {
	b  *bridge
	id string
}

func (h button) Busy() { h.b.dispatch(affordanceMsg{ID: h.id, Delta: 1}) }
func (h button) Idle() { h.b.dispatch(affordanceMsg{ID: h.id, Delta: -1}) }
func (h button) Fix()  { h.b.dispatch(affordanceFixedMsg{ID: h.id}) }
