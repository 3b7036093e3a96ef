package database

import (
	"context"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/loan-tracker/internal/domain/port/core"
)

// ConnectionPoolMetrics tracks database connection pool metrics
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
	MaxIdleClosed      int64
	MaxLifetimeClosed  int64
}

// HealthChecker pings the store on an interval, keeps HealthState current
// and runs onConnected once after the first successful ping
type HealthChecker struct {
	manager     *Manager
	logger      coreport.Logger
	interval    time.Duration
	onConnected func(ctx context.Context) error

	mu           sync.RWMutex
	bootstrapped bool
	metrics      ConnectionPoolMetrics

	stopChan chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewHealthChecker creates a new health checker. onConnected may be nil.
func NewHealthChecker(manager *Manager, logger coreport.Logger, interval time.Duration, onConnected func(ctx context.Context) error) *HealthChecker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &HealthChecker{
		manager:     manager,
		logger:      logger,
		interval:    interval,
		onConnected: onConnected,
		stopChan:    make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// MarkBootstrapped records that onConnected already ran
func (h *HealthChecker) MarkBootstrapped() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bootstrapped = true
}

// Bootstrapped reports whether onConnected has succeeded
func (h *HealthChecker) Bootstrapped() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.bootstrapped
}

// StartMonitoring starts the health monitoring goroutine
func (h *HealthChecker) StartMonitoring(ctx context.Context) {
	go h.monitorHealth(ctx)
}

// StopMonitoring stops the health monitoring goroutine and waits for it
func (h *HealthChecker) StopMonitoring() {
	h.stopOnce.Do(func() { close(h.stopChan) })
	<-h.done
}

// GetMetrics returns the pool metrics from the last check
func (h *HealthChecker) GetMetrics() ConnectionPoolMetrics {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.metrics
}

func (h *HealthChecker) monitorHealth(ctx context.Context) {
	defer close(h.done)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.logger.Info("Database health monitoring started", map[string]any{
		"interval_s": h.interval.Seconds(),
	})

	for {
		select {
		case <-h.stopChan:
			h.logger.Info("Database health monitoring stopped", nil)
			return
		case <-ctx.Done():
			h.logger.Info("Database health monitoring stopped", nil)
			return
		case <-ticker.C:
			h.CheckHealth(ctx)
		}
	}
}

// CheckHealth pings the store once, runs the deferred bootstrap if the store
// became reachable, and records pool stats
func (h *HealthChecker) CheckHealth(ctx context.Context) {
	before := h.manager.Health().Snapshot().State

	if err := h.manager.Ping(ctx); err != nil {
		if before == StateConnected {
			h.logger.Error("Database connection lost", map[string]any{"error": err.Error()})
		} else {
			h.logger.Warn("Database ping failed", map[string]any{"error": err.Error()})
		}
		return
	}

	if before != StateConnected {
		h.logger.Info("Database connection established", nil)
	}

	if h.onConnected != nil && !h.Bootstrapped() {
		if err := h.onConnected(ctx); err != nil {
			h.logger.Error("Deferred database bootstrap failed", map[string]any{"error": err.Error()})
		} else {
			h.MarkBootstrapped()
		}
	}

	h.collectMetrics()
}

func (h *HealthChecker) collectMetrics() {
	db := h.manager.DB()
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		return
	}

	stats := sqlDB.Stats()
	metrics := ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}

	h.mu.Lock()
	h.metrics = metrics
	h.mu.Unlock()

	fields := map[string]any{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		h.logger.Warn("Database connection pool nearly exhausted", fields)
		return
	}
	h.logger.Debug("Database connection pool stats", fields)
}
