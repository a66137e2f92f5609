// Package catalog holds the static data the console is built around: the
// human readable descriptor for each simulated endpoint and the list of
// actions a user can trigger.
package catalog

import (
	"fmt"
	"sort"
)

// Descriptor is the human readable success text shown for an endpoint.
type Descriptor struct {
	Path    string
	Title   string
	Message string
	Icon    string
}

// Heading is the modal title for a successful call.
func (d Descriptor) Heading() string {
	return d.Icon + " " + d.Title
}

// DefaultDescriptor is used for every endpoint missing from the table.
var DefaultDescriptor = Descriptor{
	Title:   "Success",
	Message: "Operation completed successfully.",
	Icon:    "✅",
}

// Table is an immutable endpoint -> descriptor lookup.
type Table struct {
	byPath map[string]Descriptor
}

// NewTable builds a table. Paths must be non-empty and unique.
func NewTable(descriptors []Descriptor) (*Table, error) {
	byPath := make(map[string]Descriptor, len(descriptors))
	for _, d := range descriptors {
		if d.Path == "" {
			return nil, fmt.Errorf("descriptor %q has no path", d.Title)
		}
		if _, dup := byPath[d.Path]; dup {
			return nil, fmt.Errorf("duplicate descriptor for %s", d.Path)
		}
		byPath[d.Path] = d
	}
	return &Table{byPath: byPath}, nil
}

// Lookup returns the descriptor for path, or DefaultDescriptor.
func (t *Table) Lookup(path string) Descriptor {
	if t != nil {
		if d, ok := t.byPath[path]; ok {
			return d
		}
	}
	d := DefaultDescriptor
	d.Path = path
	return d
}

// Known reports whether path has its own descriptor.
func (t *Table) Known(path string) bool {
	if t == nil {
		return false
	}
	_, ok := t.byPath[path]
	return ok
}

// Paths returns the registered paths in lexical order.
func (t *Table) Paths() []string {
	if t == nil {
		return nil
	}
	paths := make([]string, 0, len(t.byPath))
	for p := range t.byPath {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Len returns the number of registered descriptors.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byPath)
}

var builtin = []Descriptor{
	{Path: "/simulate/bug/attribute_error", Title: "Shopping Cart Updated", Message: `Success! Item "Banana" has been added to your cart.`, Icon: "🛒"},
	{Path: "/simulate/bug/name_error", Title: "Profile Loaded", Message: "Welcome back, Alice! Your profile data has been retrieved.", Icon: "👤"},
	{Path: "/simulate/bug/value_error", Title: "Payment Processed", Message: "Payment of $50 has been successfully processed.", Icon: "💳"},
	{Path: "/simulate/bug/file_not_found", Title: "Configuration Valid", Message: "System settings loaded successfully from config file.", Icon: "⚙️"},
	{Path: "/simulate/bug/module_not_found", Title: "Plugin Enabled", Message: "PDF Export Plugin has been loaded and initialized.", Icon: "🔌"},
	{Path: "/simulate/bug/unbound_local", Title: "Counter Updated", Message: "Visitor count incremented successfully.", Icon: "🔢"},
	{Path: "/simulate/bug/json_decode", Title: "Webhook Parsed", Message: "Incoming webhook payload successfully decoded and processed.", Icon: "📨"},
	{Path: "/simulate/bug/permission_error", Title: "Access Granted", Message: "Security audit log accessed successfully.", Icon: "🔒"},
	{Path: "/simulate/division_by_zero", Title: "Calculation Info", Message: "Division operation completed (or crashed as expected).", Icon: "➗"},
	{Path: "/simulate/unhandled/index_error", Title: "Index Op", Message: "List operation attempted.", Icon: "📉"},
	{Path: "/simulate/unhandled/key_error", Title: "Key Lookup", Message: "Dictionary lookup attempted.", Icon: "🔑"},
	{Path: "/simulate/unhandled/type_error", Title: "Type Check", Message: "Type operation attempted.", Icon: "🔣"},
	{Path: "/simulate/unhandled/recursion_error", Title: "Recursion Test", Message: "Recursive depth test.", Icon: "🔄"},
	{Path: "/simulate/unhandled/syntax_error", Title: "Syntax Check", Message: "Code evaluation attempted.", Icon: "📝"},
	{Path: "/todos", Title: "Task List Fetched", Message: "Retrieved latest todo items from database.", Icon: "📋"},
}

// Default returns the built-in descriptor table.
func Default() *Table {
	t, err := NewTable(builtin)
	if err != nil {
		panic(err)
	}
	return t
}
