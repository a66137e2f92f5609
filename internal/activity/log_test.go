package activity

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	cur := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := cur
		cur = cur.Add(time.Second)
		return t
	}
}

func TestAppendNewestFirst(t *testing.T) {
	l := New(WithClock(fixedClock(time.Date(2024, 1, 1, 13, 4, 5, 0, time.Local))))

	l.Append(CategoryInfo, "first")
	l.Append(CategorySuccess, "second")
	l.Append(CategoryError, "third")

	entries := l.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	want := []string{"third", "second", "first"}
	for i, e := range entries {
		if e.Text != want[i] {
			t.Errorf("entry %d = %q; want %q", i, e.Text, want[i])
		}
	}

	if entries[2].Stamp() != "13:04:05" {
		t.Errorf("expected 24-hour stamp 13:04:05, got %s", entries[2].Stamp())
	}
	if entries[0].Category != CategoryError {
		t.Errorf("expected newest category error, got %s", entries[0].Category)
	}
}

func TestClear(t *testing.T) {
	l := New()
	l.Append(CategoryInfo, "before")
	l.Clear()

	if l.Len() != 0 {
		t.Fatalf("expected empty log after Clear, got %d", l.Len())
	}

	l.Append(CategorySystem, "after")
	entries := l.Entries()
	if len(entries) != 1 || entries[0].Text != "after" {
		t.Errorf("expected only the post-clear entry, got %+v", entries)
	}
}

func TestLatest(t *testing.T) {
	l := New()
	for i := 0; i < 5; i++ {
		l.Append(CategoryInfo, fmt.Sprintf("e%d", i))
	}

	got := l.Latest(2)
	if len(got) != 2 || got[0].Text != "e4" || got[1].Text != "e3" {
		t.Errorf("Latest(2) = %+v", got)
	}
	if len(l.Latest(0)) != 5 {
		t.Error("Latest(0) should return everything")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	l := New()
	l.Append(CategoryInfo, "a")

	snap := l.Entries()
	snap[0].Text = "changed"

	if l.Entries()[0].Text != "a" {
		t.Error("mutating a snapshot must not touch the log")
	}
}

func TestConcurrentAppend(t *testing.T) {
	l := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Append(CategoryInfo, fmt.Sprintf("entry %d", i))
		}(i)
	}
	wg.Wait()

	if l.Len() != 50 {
		t.Errorf("expected 50 entries, got %d", l.Len())
	}
}
