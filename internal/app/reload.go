package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/glassy/internal/catalog"
	"github.com/five82/glassy/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartReloader keeps the store in sync with the catalog at pattern. It
// watches the file system when it can and polls otherwise. The returned
// function stops whichever mechanism is running.
func StartReloader(ctx context.Context, store *state.Store, pattern string, interval time.Duration, logger *zap.Logger) (stop func()) {
	if logger == nil {
		logger = zap.NewNop()
	}

	w, err := catalog.NewWatcher(pattern, store.Update, logger)
	if err == nil {
		if err = w.Start(); err == nil {
			go func() {
				<-ctx.Done()
				_ = w.Stop()
			}()
			return func() { _ = w.Stop() }
		}
		_ = w.Stop()
	}

	logger.Warn("catalog watcher unavailable, polling instead",
		zap.Error(err),
		zap.Duration("interval", interval))
	pollCtx, cancel := context.WithCancel(ctx)
	StartPoller(pollCtx, store, pattern, interval, logger)
	return cancel
}

// StartPoller launches a background goroutine that reloads the catalog at a
// fixed cadence, backing off while loads keep failing. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, pattern string, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	go func() {
		for {
			failures := refresh(store, pattern, logger)
			timer := time.NewTimer(calculateBackoff(failures, interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// refresh loads the catalog once and returns the consecutive failure count.
func refresh(store *state.Store, pattern string, logger *zap.Logger) int {
	cat, err := catalog.LoadPattern(pattern)
	if err != nil {
		logger.Warn("catalog poll failed", zap.String("pattern", pattern), zap.Error(err))
	}
	store.Update(cat, err)
	return store.Snapshot().ConsecutiveFailures
}

// calculateBackoff doubles the interval per consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	if failures >= 16 {
		return maxBackoff
	}
	backoff := interval << failures
	if backoff > maxBackoff {
		return maxBackoff
	}
	return backoff
}
