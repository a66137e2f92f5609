package components

import "testing"

func TestLatencyWidgetPush(t *testing.T) {
	w := NewLatencyWidget(30, 8, 3)
	for _, v := range []float64{10, 20, -5, 40} {
		w.Push(v)
	}

	if len(w.History) != 3 {
		t.Fatalf("expected history capped at 3, got %d", len(w.History))
	}
	if w.History[0] != 20 || w.History[1] != 0 || w.History[2] != 40 {
		t.Errorf("unexpected history %v", w.History)
	}
}

func TestLatencyWidgetCeiling(t *testing.T) {
	w := NewLatencyWidget(30, 8, 10)
	if w.Ceiling() != minLatencyCeiling {
		t.Errorf("empty ceiling = %v", w.Ceiling())
	}
	w.Push(500)
	if w.Ceiling() != 600 {
		t.Errorf("ceiling = %v, want 600", w.Ceiling())
	}
}

func TestLatencyWidgetView(t *testing.T) {
	w := NewLatencyWidget(20, 6, 5)
	w.Push(12)
	w.Push(30)
	w.Resize(24, 6)
	if w.View() == "" {
		t.Error("expected chart output")
	}
}
