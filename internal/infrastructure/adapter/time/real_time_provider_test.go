package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider_WithTimeout(t *testing.T) {
	p := NewRealTimeProvider()

	ctx, cancel := p.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)

	unbounded, cancelUnbounded := p.WithTimeout(context.Background(), 0)
	defer cancelUnbounded()
	_, ok = unbounded.Deadline()
	assert.False(t, ok)
}

func TestRealTimeProvider_Since(t *testing.T) {
	p := NewRealTimeProvider()
	start := p.Now().Add(-time.Second)

	assert.GreaterOrEqual(t, p.Since(start), time.Second)
}
