// Package orchestrator drives one labeled call from start to finish: it logs
// the attempt, performs the request, classifies the outcome and pushes the
// result to the log, the result dialog and the triggering affordance.
package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"simconsole/internal/activity"
	"simconsole/internal/catalog"
	"simconsole/internal/logger"
	"simconsole/internal/simclient"
)

// Call is one user-triggered action.
type Call struct {
	Endpoint     string
	Method       string
	Label        string
	Payload      any
	AffordanceID string // optional
}

// CallFor builds the Call an action triggers.
func CallFor(a catalog.Action) Call {
	return Call{
		Endpoint:     a.Endpoint,
		Method:       a.Method,
		Label:        a.Label,
		Payload:      a.Payload,
		AffordanceID: a.ID,
	}
}

// Journal receives log lines.
type Journal interface {
	Append(category activity.Category, text string)
}

// Presenter shows the result dialog. A new Show replaces whatever is open.
type Presenter interface {
	Show(title, message, payload string, success bool)
}

// Affordance is the UI element that triggered a call.
type Affordance interface {
	Busy()
	Idle()
	Fix()
}

// Affordances resolves affordance ids to live elements.
type Affordances interface {
	Resolve(id string) (Affordance, bool)
}

// Observer is told about every finished call.
type Observer interface {
	Observe(call Call, outcome simclient.Outcome)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(call Call, outcome simclient.Outcome)

// Observe calls f.
func (f ObserverFunc) Observe(call Call, outcome simclient.Outcome) {
	f(call, outcome)
}

// Orchestrator coordinates a single request's lifecycle.
type Orchestrator struct {
	doer        simclient.Doer
	journal     Journal
	presenter   Presenter
	affordances Affordances
	table       *catalog.Table
	observers   []Observer
	logger      *logger.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithAffordances lets Execute resolve affordance ids.
func WithAffordances(a Affordances) Option {
	return func(o *Orchestrator) {
		o.affordances = a
	}
}

// WithObserver adds an outcome observer.
func WithObserver(obs Observer) Option {
	return func(o *Orchestrator) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// WithLogger attaches a diagnostic logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l.WithComponent("orchestrator")
		}
	}
}

// New creates an orchestrator. A nil table falls back to the default descriptor.
func New(doer simclient.Doer, journal Journal, presenter Presenter, table *catalog.Table, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		doer:      doer,
		journal:   journal,
		presenter: presenter,
		table:     table,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// Derive returns a copy that shows results on p and applies opts on top of
// the receiver's configuration. The receiver is not modified.
func (o *Orchestrator) Derive(p Presenter, opts ...Option) *Orchestrator {
	cp := *o
	cp.presenter = p
	cp.observers = append([]Observer(nil), o.observers...)
	for _, opt := range opts {
		if opt != nil {
			opt(&cp)
		}
	}
	return &cp
}

// Execute runs call. It has no result: every outcome ends in the journal,
// the presenter and, on success, the affordance.
func (o *Orchestrator) Execute(ctx context.Context, call Call) {
	o.journal.Append(activity.CategoryInfo, fmt.Sprintf("➡️ Sending %s request to %s...", call.Method, call.Endpoint))

	var aff Affordance
	if call.AffordanceID != "" && o.affordances != nil {
		if a, ok := o.affordances.Resolve(call.AffordanceID); ok {
			aff = a
			aff.Busy()
			defer aff.Idle()
		}
	}

	outcome := o.doer.Do(ctx, simclient.Request{
		Method:  strings.ToUpper(call.Method),
		Path:    call.Endpoint,
		Payload: call.Payload,
	})

	o.report(call, outcome, aff)

	for _, obs := range o.observers {
		obs.Observe(call, outcome)
	}
}

func (o *Orchestrator) report(call Call, outcome simclient.Outcome, aff Affordance) {
	ms := outcome.Millis()

	switch outcome.Kind {
	case simclient.KindTransport:
		o.journal.Append(activity.CategoryError, "💥 connection_refused: "+outcome.ErrorMessage())
		o.show(NetworkErrorTitle, NetworkErrorMessage, outcome.ErrorMessage(), false)
		o.logger.Warn("backend unreachable", "endpoint", call.Endpoint, "request_id", outcome.RequestID, "error", outcome.ErrorMessage())

	case simclient.KindApplication:
		o.journal.Append(activity.CategoryError, fmt.Sprintf("🔥 %s Failed (%dms)", call.Label, ms))
		o.show(
			"❌ System Error: "+call.Label,
			fmt.Sprintf("The request failed with status %d. \nThis indicates a bug in the backend code for this feature.", outcome.StatusCode),
			outcome.PrettyBody(),
			false,
		)
		o.logger.Info("backend defect", "endpoint", call.Endpoint, "status_code", outcome.StatusCode, "duration_ms", ms, "request_id", outcome.RequestID)

	case simclient.KindSuccess:
		o.journal.Append(activity.CategorySuccess, fmt.Sprintf("✅ %s Completed in %dms", call.Label, ms))
		d := o.table.Lookup(call.Endpoint)
		o.show(d.Heading(), d.Message, outcome.PrettyBody(), true)
		if aff != nil {
			aff.Fix()
		}
		o.logger.Info("call succeeded", "endpoint", call.Endpoint, "status_code", outcome.StatusCode, "duration_ms", ms, "request_id", outcome.RequestID)
	}
}

func (o *Orchestrator) show(title, message, payload string, success bool) {
	if o.presenter != nil {
		o.presenter.Show(title, message, payload, success)
	}
}

// Network failure dialog text.
const (
	NetworkErrorTitle   = "💥 Network Error"
	NetworkErrorMessage = "Could not reach the backend server."
)
