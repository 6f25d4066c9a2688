package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOverlay(t *testing.T) {
	assert.True(t, isOverlay("notes/ownership.yml"))
	assert.True(t, isOverlay("notes/basics.yaml"))
	assert.False(t, isOverlay("notes/README.md"))
	assert.False(t, isOverlay("notes/basics.yml~"))
}

func TestWatcherReportsOverlayChanges(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var batches [][]string
	done := make(chan struct{}, 4)

	w, err := New(dir, 50*time.Millisecond, nil, func(paths []string) {
		mu.Lock()
		batches = append(batches, paths)
		mu.Unlock()
		done <- struct{}{}
	})
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	// Give the watch loop a moment to come up.
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(dir, "ownership.yml")
	require.NoError(t, os.WriteFile(path, []byte("units: {}"), 0644))

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, batches)
	assert.Contains(t, batches[0], path)
}

func TestWatcherIgnoresNonOverlayFiles(t *testing.T) {
	dir := t.TempDir()

	notified := make(chan struct{}, 1)
	w, err := New(dir, 30*time.Millisecond, nil, func([]string) {
		select {
		case notified <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "scratch.txt"), []byte("x"), 0644))

	select {
	case <-notified:
		t.Fatal("non-overlay file triggered a notification")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	calls := 0
	w, err := New(dir, 150*time.Millisecond, nil, func([]string) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	time.Sleep(100 * time.Millisecond)

	// A burst of writes inside the debounce window.
	path := filepath.Join(dir, "basics.yml")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("units: {}"), 0644))
		time.Sleep(20 * time.Millisecond)
	}

	time.Sleep(500 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls, "burst of writes should collapse into one notification")
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nosuch"), time.Millisecond, nil, func([]string) {})
	require.Error(t, err)
}
