package mcpserver

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"simconsole/internal/activity"
	"simconsole/internal/catalog"
	"simconsole/internal/health"
	"simconsole/internal/logger"
	"simconsole/internal/metrics"
	"simconsole/internal/orchestrator"
	"simconsole/internal/simclient"
)

const (
	defaultLogLimit = 50
	maxLogLimit     = 500
)

// Server exposes the simulation console as MCP tools so an agent can
// trigger the same calls a person would.
type Server struct {
	mcpServer *mcp.Server
	orch      *orchestrator.Orchestrator
	journal   *activity.Log
	monitor   *health.Monitor
	table     *catalog.Table
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

// Config holds configuration for the MCP server.
type Config struct {
	ServerName    string
	ServerVersion string
}

// Deps are the services the tools drive.
type Deps struct {
	Client  simclient.Doer
	Journal *activity.Log
	Table   *catalog.Table
	Monitor *health.Monitor  // built from Client when nil
	Metrics *metrics.Metrics // optional
	Logger  *logger.Logger   // optional
}

// NewServer creates a new MCP server instance.
func NewServer(cfg Config, deps Deps) (*Server, error) {
	if deps.Client == nil {
		return nil, fmt.Errorf("mcpserver: client is required")
	}
	if cfg.ServerName == "" {
		cfg.ServerName = "simconsole"
	}
	if cfg.ServerVersion == "" {
		cfg.ServerVersion = "1.0.0"
	}

	log := deps.Logger
	if log == nil {
		log = logger.Discard()
	}
	journal := deps.Journal
	if journal == nil {
		journal = activity.New()
	}
	table := deps.Table
	if table == nil {
		table = catalog.Default()
	}
	monitor := deps.Monitor
	if monitor == nil {
		monitor = health.NewMonitor(deps.Client, journal, health.WithLogger(log))
	}

	opts := []orchestrator.Option{orchestrator.WithLogger(log)}
	if deps.Metrics != nil {
		opts = append(opts, orchestrator.WithObserver(deps.Metrics))
	}

	impl := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}

	s := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		orch:      orchestrator.New(deps.Client, journal, nil, table, opts...),
		journal:   journal,
		monitor:   monitor,
		table:     table,
		metrics:   deps.Metrics,
		logger:    log.WithComponent("mcpserver"),
	}

	s.registerTools()
	return s, nil
}

// ListSimulationsArgs defines the input for list_simulations.
type ListSimulationsArgs struct {
	Group string `json:"group,omitempty" jsonschema:"only list one group: handled, unhandled, script or data"`
}

// Simulation describes one triggerable action.
type Simulation struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Description  string `json:"description"`
	Method       string `json:"method"`
	Endpoint     string `json:"endpoint"`
	Group        string `json:"group"`
	SuccessTitle string `json:"success_title"`
}

// ListSimulationsResult defines the output for list_simulations.
type ListSimulationsResult struct {
	Simulations []Simulation `json:"simulations"`
}

// TriggerArgs defines the input for trigger_simulation.
type TriggerArgs struct {
	ActionID string         `json:"action_id,omitempty" jsonschema:"id from list_simulations; takes precedence over endpoint"`
	Endpoint string         `json:"endpoint,omitempty" jsonschema:"path on the simulation backend, e.g. /simulate/bug/value_error"`
	Method   string         `json:"method,omitempty" jsonschema:"HTTP method, defaults to GET"`
	Label    string         `json:"label,omitempty" jsonschema:"human label used in the activity log"`
	Payload  map[string]any `json:"payload,omitempty" jsonschema:"optional JSON body"`
}

// TriggerResult defines the output for trigger_simulation.
type TriggerResult struct {
	Endpoint   string              `json:"endpoint"`
	Method     string              `json:"method"`
	Outcome    string              `json:"outcome"`
	StatusCode int                 `json:"status_code,omitempty"`
	DurationMs int64               `json:"duration_ms"`
	RequestID  string              `json:"request_id,omitempty"`
	Result     orchestrator.Result `json:"result"`
}

// ActivityLogArgs defines the input for get_activity_log.
type ActivityLogArgs struct {
	Limit int `json:"limit,omitempty" jsonschema:"max entries to return, newest first"`
}

// LogEntry is one activity line.
type LogEntry struct {
	Time     string `json:"time"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

// ActivityLogResult defines the output for get_activity_log.
type ActivityLogResult struct {
	Entries []LogEntry `json:"entries"`
	Total   int        `json:"total"`
}

// ClearArgs defines the input for clear_activity_log.
type ClearArgs struct{}

// ClearResult defines the output for clear_activity_log.
type ClearResult struct {
	Cleared int `json:"cleared"`
}

// HealthArgs defines the input for check_health.
type HealthArgs struct{}

// HealthResult defines the output for check_health.
type HealthResult struct {
	State     string `json:"state"`
	Online    bool   `json:"online"`
	CheckedAt string `json:"checked_at"`
	Error     string `json:"error,omitempty"`
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_simulations",
		Description: "List the simulated bugs and data operations that can be triggered on the backend, with the method and endpoint each one calls.",
	}, s.handleListSimulations)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "trigger_simulation",
		Description: "Trigger one simulation by action id (or by raw endpoint and method). Returns the outcome classification, status code, duration and the result the console would show.",
	}, s.handleTrigger)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_activity_log",
		Description: "Read the console activity log, newest first.",
	}, s.handleGetActivityLog)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "clear_activity_log",
		Description: "Remove every entry from the console activity log.",
	}, s.handleClearActivityLog)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "check_health",
		Description: "Probe the simulation backend root and report whether it is online.",
	}, s.handleCheckHealth)
}

func (s *Server) handleListSimulations(ctx context.Context, _ *mcp.CallToolRequest, args ListSimulationsArgs) (*mcp.CallToolResult, ListSimulationsResult, error) {
	group := catalog.Group(strings.ToLower(strings.TrimSpace(args.Group)))
	switch group {
	case "", catalog.GroupHandled, catalog.GroupUnhandled, catalog.GroupScript, catalog.GroupData:
	default:
		return nil, ListSimulationsResult{}, fmt.Errorf("invalid group: %s (must be handled, unhandled, script or data)", args.Group)
	}

	var out []Simulation
	for _, a := range catalog.Actions() {
		if group != "" && a.Group != group {
			continue
		}
		out = append(out, Simulation{
			ID:           a.ID,
			Label:        a.Label,
			Description:  a.Description,
			Method:       a.Method,
			Endpoint:     a.Endpoint,
			Group:        string(a.Group),
			SuccessTitle: s.table.Lookup(a.Endpoint).Heading(),
		})
	}
	return nil, ListSimulationsResult{Simulations: out}, nil
}

func (s *Server) handleTrigger(ctx context.Context, _ *mcp.CallToolRequest, args TriggerArgs) (*mcp.CallToolResult, TriggerResult, error) {
	call, err := resolveCall(args)
	if err != nil {
		return nil, TriggerResult{}, err
	}

	rec := &orchestrator.Recorder{}
	var outcome simclient.Outcome
	capture := orchestrator.ObserverFunc(func(_ orchestrator.Call, o simclient.Outcome) {
		outcome = o
	})

	s.orch.Derive(rec, orchestrator.WithObserver(capture)).Execute(ctx, call)

	result, _ := rec.Last()
	s.logger.Info("simulation triggered", "endpoint", call.Endpoint, "outcome", outcome.Kind.String(), "status_code", outcome.StatusCode)

	return nil, TriggerResult{
		Endpoint:   call.Endpoint,
		Method:     call.Method,
		Outcome:    outcome.Kind.String(),
		StatusCode: outcome.StatusCode,
		DurationMs: outcome.Millis(),
		RequestID:  outcome.RequestID,
		Result:     result,
	}, nil
}

func resolveCall(args TriggerArgs) (orchestrator.Call, error) {
	if args.ActionID != "" {
		a, ok := catalog.FindAction(args.ActionID)
		if !ok {
			return orchestrator.Call{}, fmt.Errorf("unknown action_id: %s", args.ActionID)
		}
		call := orchestrator.CallFor(a)
		call.AffordanceID = ""
		return call, nil
	}

	endpoint := strings.TrimSpace(args.Endpoint)
	if endpoint == "" {
		return orchestrator.Call{}, fmt.Errorf("either action_id or endpoint is required")
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	method := strings.ToUpper(strings.TrimSpace(args.Method))
	if method == "" {
		method = http.MethodGet
	}
	label := args.Label
	if label == "" {
		label = method + " " + endpoint
	}

	call := orchestrator.Call{Endpoint: endpoint, Method: method, Label: label}
	if args.Payload != nil {
		call.Payload = args.Payload
	}
	return call, nil
}

func (s *Server) handleGetActivityLog(ctx context.Context, _ *mcp.CallToolRequest, args ActivityLogArgs) (*mcp.CallToolResult, ActivityLogResult, error) {
	limit := args.Limit
	if limit <= 0 {
		limit = defaultLogLimit
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}

	entries := s.journal.Latest(limit)
	out := make([]LogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, LogEntry{Time: e.Stamp(), Category: string(e.Category), Text: e.Text})
	}
	return nil, ActivityLogResult{Entries: out, Total: s.journal.Len()}, nil
}

func (s *Server) handleClearActivityLog(ctx context.Context, _ *mcp.CallToolRequest, _ ClearArgs) (*mcp.CallToolResult, ClearResult, error) {
	n := s.journal.Len()
	s.journal.Clear()
	return nil, ClearResult{Cleared: n}, nil
}

func (s *Server) handleCheckHealth(ctx context.Context, _ *mcp.CallToolRequest, _ HealthArgs) (*mcp.CallToolResult, HealthResult, error) {
	state := s.monitor.Probe(ctx)
	s.metrics.SetConnectivity(state)

	return nil, HealthResult{
		State:     state.String(),
		Online:    state.Online(),
		CheckedAt: s.monitor.LastCheck().Format(activity.TimeLayout),
		Error:     s.monitor.LastError(),
	}, nil
}

// Start runs the background health monitor and serves MCP on stdio until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	go s.monitor.Run(ctx, s.metrics.SetConnectivity)

	s.logger.Info("starting MCP server on stdio")
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}

// MCP returns the underlying server, for callers that bring their own transport.
func (s *Server) MCP() *mcp.Server {
	return s.mcpServer
}
