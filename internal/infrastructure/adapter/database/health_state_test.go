package database

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthState_Transitions(t *testing.T) {
	h := NewHealthState()

	snap := h.Snapshot()
	assert.Equal(t, StateDisconnected, snap.State)
	assert.ErrorIs(t, snap.Err, ErrNotConnected)

	h.SetConnecting()
	assert.Equal(t, StateConnecting, h.Snapshot().State)

	h.SetConnected()
	snap = h.Snapshot()
	assert.Equal(t, StateConnected, snap.State)
	assert.NoError(t, snap.Err)

	lost := errors.New("connection refused")
	h.SetDisconnected(lost)
	snap = h.Snapshot()
	assert.Equal(t, StateDisconnected, snap.State)
	assert.Equal(t, lost, snap.Err)

	h.SetDisconnecting()
	assert.Equal(t, StateDisconnecting, h.Snapshot().State)
}

func TestConnState_String(t *testing.T) {
	assert.Equal(t, "Disconnected", StateDisconnected.String())
	assert.Equal(t, "Connected", StateConnected.String())
	assert.Equal(t, "Connecting", StateConnecting.String())
	assert.Equal(t, "Disconnecting", StateDisconnecting.String())
	assert.Equal(t, "Disconnected", ConnState(9).String())
}

func TestHealthState_ConcurrentAccess(t *testing.T) {
	h := NewHealthState()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				h.SetConnected()
			} else {
				h.SetDisconnected(errors.New("down"))
			}
		}(i)
		go func() {
			defer wg.Done()
			_ = h.Snapshot()
		}()
	}
	wg.Wait()

	state := h.Snapshot().State
	assert.Contains(t, []ConnState{StateConnected, StateDisconnected}, state)
}
