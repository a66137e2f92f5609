// Package activity is the user-facing activity log: timestamped entries,
// newest first, cleared only in bulk.
package activity

import (
	"sync"
	"time"
)

// Category classifies an entry for display.
type Category string

const (
	CategoryInfo    Category = "info"
	CategorySuccess Category = "success"
	CategoryError   Category = "error"
	CategorySystem  Category = "system"
)

// TimeLayout is the 24-hour wall clock format entries are stamped with.
const TimeLayout = "15:04:05"

// Entry is one immutable log line.
type Entry struct {
	Time     time.Time
	Category Category
	Text     string
}

// Stamp formats the entry time in local 24-hour form.
func (e Entry) Stamp() string {
	return e.Time.Local().Format(TimeLayout)
}

// Log is an unbounded, append-only (until Clear) list of entries.
// It is safe for concurrent use.
type Log struct {
	mu      sync.RWMutex
	entries []Entry // insertion order; readers see it reversed
	now     func() time.Time
}

// Option configures a Log.
type Option func(*Log)

// WithClock overrides the wall clock, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

// New creates an empty log.
func New(opts ...Option) *Log {
	l := &Log{now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Append records text under category at the current time.
func (l *Log) Append(category Category, text string) {
	e := Entry{Time: l.now(), Category: category, Text: text}
	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()
}

// Clear drops every entry.
func (l *Log) Clear() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()
}

// Entries returns a snapshot, most recent first.
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// Latest returns up to n entries, most recent first.
func (l *Log) Latest(n int) []Entry {
	all := l.Entries()
	if n > 0 && n < len(all) {
		return all[:n]
	}
	return all
}

// Len returns the number of entries.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
