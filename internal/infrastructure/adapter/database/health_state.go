package database

import (
	"errors"
	"sync"
)

// ConnState is the store connection state reported by the health endpoint
type ConnState int

const (
	StateDisconnected  ConnState = 0
	StateConnected     ConnState = 1
	StateConnecting    ConnState = 2
	StateDisconnecting ConnState = 3
)

// String returns the display name of the state
func (s ConnState) String() string {
	switch s {
	case StateConnected:
		return "Connected"
	case StateConnecting:
		return "Connecting"
	case StateDisconnecting:
		return "Disconnecting"
	default:
		return "Disconnected"
	}
}

// ErrNotConnected is the last error before the first connection attempt finishes
var ErrNotConnected = errors.New("database connection not established")

// HealthSnapshot is a consistent copy of the health state
type HealthSnapshot struct {
	State ConnState
	Err   error
}

// HealthState records the outcome of connection attempts and health checks.
// It is safe for concurrent use.
type HealthState struct {
	mu    sync.RWMutex
	state ConnState
	err   error
}

// NewHealthState returns a state that reports Disconnected with ErrNotConnected
func NewHealthState() *HealthState {
	return &HealthState{
		state: StateDisconnected,
		err:   ErrNotConnected,
	}
}

// Snapshot returns the current state and last error
func (h *HealthState) Snapshot() HealthSnapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return HealthSnapshot{State: h.state, Err: h.err}
}

// SetConnecting marks a connection attempt in progress
func (h *HealthState) SetConnecting() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = StateConnecting
}

// SetConnected marks the store reachable and clears the last error
func (h *HealthState) SetConnected() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = StateConnected
	h.err = nil
}

// SetDisconnecting marks an orderly shutdown in progress
func (h *HealthState) SetDisconnecting() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = StateDisconnecting
}

// SetDisconnected marks the store unreachable. A nil err keeps the previous error.
func (h *HealthState) SetDisconnected(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = StateDisconnected
	if err != nil {
		h.err = err
	}
}
