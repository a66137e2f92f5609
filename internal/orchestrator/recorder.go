package orchestrator

import "sync"

// Result is what a Presenter was last asked to show.
type Result struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Payload string `json:"payload"`
	Success bool   `json:"success"`
}

// Recorder is a headless Presenter that keeps the last result shown.
// Later calls overwrite earlier ones.
type Recorder struct {
	mu    sync.Mutex
	last  Result
	shown int
}

// Show records the result.
func (r *Recorder) Show(title, message, payload string, success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = Result{Title: title, Message: message, Payload: payload, Success: success}
	r.shown++
}

// Last returns the most recent result and whether anything was shown.
func (r *Recorder) Last() (Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last, r.shown > 0
}

// Count is how many times Show was called.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shown
}
