package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestDefaultTable(t *testing.T) {
	table := Default()

	if table.Len() != 15 {
		t.Fatalf("expected 15 descriptors, got %d", table.Len())
	}

	tests := []struct {
		path    string
		heading string
		message string
	}{
		{"/simulate/bug/value_error", "💳 Payment Processed", "Payment of $50 has been successfully processed."},
		{"/simulate/bug/attribute_error", "🛒 Shopping Cart Updated", `Success! Item "Banana" has been added to your cart.`},
		{"/todos", "📋 Task List Fetched", "Retrieved latest todo items from database."},
		{"/simulate/unhandled/key_error", "🔑 Key Lookup", "Dictionary lookup attempted."},
		{"/metrics", "✅ Success", "Operation completed successfully."},
		{"/simulate/script/math", "✅ Success", "Operation completed successfully."},
	}

	for _, tt := range tests {
		d := table.Lookup(tt.path)
		if d.Heading() != tt.heading {
			t.Errorf("Lookup(%q).Heading() = %q; want %q", tt.path, d.Heading(), tt.heading)
		}
		if d.Message != tt.message {
			t.Errorf("Lookup(%q).Message = %q; want %q", tt.path, d.Message, tt.message)
		}
	}
}

func TestNewTableRejectsDuplicates(t *testing.T) {
	_, err := NewTable([]Descriptor{
		{Path: "/a", Title: "A"},
		{Path: "/a", Title: "B"},
	})
	if err == nil {
		t.Fatal("expected duplicate path error")
	}

	if _, err := NewTable([]Descriptor{{Title: "no path"}}); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestNilTableFallsBack(t *testing.T) {
	var table *Table
	if got := table.Lookup("/todos"); got.Title != DefaultDescriptor.Title {
		t.Errorf("nil table lookup = %q; want default", got.Title)
	}
	if table.Known("/todos") {
		t.Error("nil table should know nothing")
	}
}

func TestLookupProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)
	table := Default()

	properties.Property("unknown paths resolve to the default descriptor", prop.ForAll(
		func(suffix string) bool {
			path := "/unknown/" + suffix
			d := table.Lookup(path)
			return !table.Known(path) &&
				d.Title == DefaultDescriptor.Title &&
				d.Message == DefaultDescriptor.Message &&
				d.Icon == DefaultDescriptor.Icon
		},
		gen.AlphaString(),
	))

	properties.Property("known paths resolve to their own descriptor", prop.ForAll(
		func(path string) bool {
			d := table.Lookup(path)
			return table.Known(path) && d.Path == path && d.Title != DefaultDescriptor.Title
		},
		gen.OneConstOf(stringsToAny(table.Paths())...),
	))

	properties.Property("lookup is pure", prop.ForAll(
		func(path string) bool {
			return table.Lookup(path) == table.Lookup(path)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestActions(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range Actions() {
		if seen[a.ID] {
			t.Errorf("duplicate action id %s", a.ID)
		}
		seen[a.ID] = true
		if a.Method == "" || !strings.HasPrefix(a.Endpoint, "/") {
			t.Errorf("action %s has an invalid method/endpoint: %s %s", a.ID, a.Method, a.Endpoint)
		}
		if a.Group.Title() == "" {
			t.Errorf("action %s has no group title", a.ID)
		}
	}

	a, ok := FindAction("btn-value-error")
	if !ok || a.Endpoint != "/simulate/bug/value_error" {
		t.Errorf("FindAction(btn-value-error) = %+v, %v", a, ok)
	}
	if _, ok := FindAction("missing"); ok {
		t.Error("FindAction(missing) should fail")
	}

	list := Actions()
	list[0].Label = "mutated"
	if Actions()[0].Label == "mutated" {
		t.Error("Actions() must return a copy")
	}
}

func stringsToAny(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
