package server

import (
	"sync"

	"nodevitals/internal/vitals"
)

// Health holds the node's current lifecycle state. The owning process
// moves it forward (healthy after setup, ready after bootstrapping);
// handlers only read it. The zero value means nothing has been
// reported yet.
type Health struct {
	mu    sync.RWMutex
	state vitals.HealthState
}

func NewHealth() *Health {
	return &Health{}
}

// Set records a new lifecycle state.
func (h *Health) Set(state vitals.HealthState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = state
}

// State returns the last recorded lifecycle state.
func (h *Health) State() vitals.HealthState {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.state
}
