package core

import (
	"context"
	"time"
)

// TimeProvider abstracts the server clock so write stamps can be controlled in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}

// UnixMilli returns the provider's current time as epoch milliseconds
func UnixMilli(tp TimeProvider) int64 {
	return tp.Now().UnixMilli()
}
