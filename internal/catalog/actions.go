package catalog

import "net/http"

// Group buckets actions the way the console lays them out.
type Group string

const (
	GroupHandled   Group = "handled"
	GroupUnhandled Group = "unhandled"
	GroupScript    Group = "script"
	GroupData      Group = "data"
)

// Title is the section heading for a group.
func (g Group) Title() string {
	switch g {
	case GroupHandled:
		return "Handled Bugs"
	case GroupUnhandled:
		return "Unhandled Errors"
	case GroupScript:
		return "Script Bugs"
	case GroupData:
		return "Data & Ops"
	default:
		return string(g)
	}
}

// Action is one affordance: a button bound to a single backend call.
type Action struct {
	ID          string
	Label       string
	Description string // shown while the feature is broken
	Method      string
	Endpoint    string
	Payload     any
	Group       Group
}

var actions = []Action{
	{ID: "btn-attribute-error", Label: "Add to Cart", Description: "AttributeError", Method: http.MethodPost, Endpoint: "/simulate/bug/attribute_error", Group: GroupHandled},
	{ID: "btn-name-error", Label: "Load Profile", Description: "NameError", Method: http.MethodPost, Endpoint: "/simulate/bug/name_error", Group: GroupHandled},
	{ID: "btn-value-error", Label: "Process Payment", Description: "ValueError", Method: http.MethodPost, Endpoint: "/simulate/bug/value_error", Group: GroupHandled},
	{ID: "btn-file-not-found", Label: "Load Config", Description: "FileNotFoundError", Method: http.MethodPost, Endpoint: "/simulate/bug/file_not_found", Group: GroupHandled},
	{ID: "btn-module-not-found", Label: "Enable Plugin", Description: "ModuleNotFoundError", Method: http.MethodPost, Endpoint: "/simulate/bug/module_not_found", Group: GroupHandled},
	{ID: "btn-unbound-local", Label: "Increment Counter", Description: "UnboundLocalError", Method: http.MethodPost, Endpoint: "/simulate/bug/unbound_local", Group: GroupHandled},
	{ID: "btn-json-decode", Label: "Parse Webhook", Description: "JSONDecodeError", Method: http.MethodPost, Endpoint: "/simulate/bug/json_decode", Group: GroupHandled},
	{ID: "btn-permission-error", Label: "Open Audit Log", Description: "PermissionError", Method: http.MethodPost, Endpoint: "/simulate/bug/permission_error", Group: GroupHandled},
	{ID: "btn-division-by-zero", Label: "Divide", Description: "ZeroDivisionError", Method: http.MethodPost, Endpoint: "/simulate/division_by_zero", Group: GroupHandled},

	{ID: "btn-index-error", Label: "List Access", Description: "IndexError", Method: http.MethodPost, Endpoint: "/simulate/unhandled/index_error", Group: GroupUnhandled},
	{ID: "btn-key-error", Label: "Dict Lookup", Description: "KeyError", Method: http.MethodPost, Endpoint: "/simulate/unhandled/key_error", Group: GroupUnhandled},
	{ID: "btn-type-error", Label: "Type Mix", Description: "TypeError", Method: http.MethodPost, Endpoint: "/simulate/unhandled/type_error", Group: GroupUnhandled},
	{ID: "btn-recursion-error", Label: "Deep Recursion", Description: "RecursionError", Method: http.MethodPost, Endpoint: "/simulate/unhandled/recursion_error", Group: GroupUnhandled},
	{ID: "btn-syntax-error", Label: "Eval Snippet", Description: "SyntaxError", Method: http.MethodPost, Endpoint: "/simulate/unhandled/syntax_error", Group: GroupUnhandled},

	{ID: "btn-script-dict", Label: "Server Config", Description: "KeyError + TypeError", Method: http.MethodPost, Endpoint: "/simulate/script/dict", Group: GroupScript},
	{ID: "btn-script-list", Label: "Priority Task", Description: "IndexError + AttributeError", Method: http.MethodPost, Endpoint: "/simulate/script/list", Group: GroupScript},
	{ID: "btn-script-math", Label: "Efficiency Ratio", Description: "ZeroDivisionError", Method: http.MethodPost, Endpoint: "/simulate/script/math", Group: GroupScript},

	{ID: "btn-todos-list", Label: "Fetch Todos", Description: "Database read", Method: http.MethodGet, Endpoint: "/todos", Group: GroupData},
	{ID: "btn-todos-create", Label: "Create Todo", Description: "Database write", Method: http.MethodPost, Endpoint: "/todos", Payload: map[string]any{"title": "Investigate incident", "completed": false}, Group: GroupData},
	{ID: "btn-metrics", Label: "Server Metrics", Description: "Resource usage", Method: http.MethodGet, Endpoint: "/metrics", Group: GroupData},
}

// Actions returns a copy of the built-in action list in display order.
func Actions() []Action {
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// FindAction looks an action up by id.
func FindAction(id string) (Action, bool) {
	for _, a := range actions {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}
