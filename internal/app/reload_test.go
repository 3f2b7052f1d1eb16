package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/glassy/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	// Verify that backoff never exceeds maxBackoff regardless of input
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 80; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff || got <= 0 {
			t.Errorf("calculateBackoff(%d, %v) = %v, outside (0, %v]", failures, baseInterval, got, maxBackoff)
		}
	}
}

func TestStartPoller_PublishesChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	writeCatalog(t, path, `{"components": [{"title": "A", "route": "/a"}]}`)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	store := &state.Store{}
	StartPoller(ctx, store, path, 10*time.Millisecond, nil)

	require.Eventually(t, func() bool { return store.Snapshot().Version == 1 }, 5*time.Second, 5*time.Millisecond)

	writeCatalog(t, path, `{"components": [{"title": "A", "route": "/a"}, {"title": "B", "route": "/b"}]}`)
	require.Eventually(t, func() bool { return store.Snapshot().Version == 2 }, 5*time.Second, 5*time.Millisecond)
	assert.Equal(t, 2, store.Snapshot().Catalog.Len())
}

func TestStartPoller_KeepsCatalogOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	writeCatalog(t, path, `{"components": [{"title": "A", "route": "/a"}]}`)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	store := &state.Store{}
	StartPoller(ctx, store, path, 10*time.Millisecond, nil)
	require.Eventually(t, func() bool { return store.Snapshot().HasCatalog() }, 5*time.Second, 5*time.Millisecond)

	writeCatalog(t, path, `{"components": [`)
	require.Eventually(t, func() bool { return store.Snapshot().LastError != nil }, 5*time.Second, 5*time.Millisecond)

	snap := store.Snapshot()
	assert.Equal(t, 1, snap.Version)
	assert.Equal(t, 1, snap.Catalog.Len())
}

func TestStartReloader_WatchesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	writeCatalog(t, path, `{"components": [{"title": "A", "route": "/a"}]}`)

	store := &state.Store{}
	stop := StartReloader(context.Background(), store, path, time.Hour, nil)
	t.Cleanup(stop)

	// The watcher only reacts to changes, so nothing is published yet.
	assert.False(t, store.Snapshot().HasCatalog())

	writeCatalog(t, path, `{"components": [{"title": "B", "route": "/b"}]}`)
	require.Eventually(t, func() bool { return store.Snapshot().HasCatalog() }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, "B", store.Snapshot().Catalog.At(0).Title)
}

func TestStartReloader_FallsBackToPolling(t *testing.T) {
	pattern := filepath.Join(t.TempDir(), "missing", "*.json")

	store := &state.Store{}
	stop := StartReloader(context.Background(), store, pattern, 10*time.Millisecond, nil)
	t.Cleanup(stop)

	require.Eventually(t, func() bool { return store.Snapshot().ConsecutiveFailures >= 1 }, 5*time.Second, 5*time.Millisecond)
	assert.False(t, store.Snapshot().HasCatalog())
}

func writeCatalog(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
