package trace

import (
	"sync"

	"energy_env/internal/env"
)

// History buffers the current episode's transitions in memory so that
// late-joining observers can catch up. It implements env.Recorder and is
// safe for concurrent use; reads return copies.
type History struct {
	mu          sync.RWMutex
	reset       env.ResetEvent
	transitions []env.Transition
}

func NewHistory() *History {
	return &History{}
}

// OnReset drops the previous episode's buffer and records the new start.
func (h *History) OnReset(ev env.ResetEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reset = ev
	h.transitions = h.transitions[:0]
}

// OnTransition appends one step to the buffer.
func (h *History) OnTransition(tr env.Transition) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.transitions = append(h.transitions, tr)
}

// Snapshot returns the episode start event and a copy of the transitions
// recorded so far. ok is false before the first reset.
func (h *History) Snapshot() (reset env.ResetEvent, transitions []env.Transition, ok bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.reset.EpisodeID == "" {
		return env.ResetEvent{}, nil, false
	}
	out := make([]env.Transition, len(h.transitions))
	copy(out, h.transitions)
	return h.reset, out, true
}

// Len returns the number of buffered transitions.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.transitions)
}
