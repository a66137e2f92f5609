package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.LevelInfo, true, &buf)

	l.WithComponent("orchestrator").WithError(errors.New("boom")).Info("call failed")

	out := buf.String()
	for _, want := range []string{`"component":"orchestrator"`, `"error":"boom"`, `"msg":"call failed"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}

func TestOpenFile(t *testing.T) {
	l, closeFn, err := OpenFile("", "info")
	if err != nil || l == nil || closeFn == nil {
		t.Fatalf("OpenFile(\"\") = %v, %v", l, err)
	}

	path := filepath.Join(t.TempDir(), "simconsole.log")
	l, closeFn, err = OpenFile(path, "debug")
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	l.Info("hello")
	if err := closeFn(); err != nil {
		t.Errorf("close: %v", err)
	}

	if _, _, err := OpenFile(path, "nope"); err == nil {
		t.Error("expected error for bad level")
	}
}
