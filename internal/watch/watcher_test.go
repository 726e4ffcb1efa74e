package watch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ferry/internal/watch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherLifecycle(t *testing.T) {
	w, err := watch.New()
	require.NoError(t, err)

	assert.False(t, w.IsRunning())
	require.NoError(t, w.Start())
	assert.True(t, w.IsRunning())

	err = w.Start()
	assert.Error(t, err, "starting twice is rejected")

	w.Stop()
	assert.False(t, w.IsRunning())
	w.Stop() // idempotent
}

func TestWatcherDetectsChanges(t *testing.T) {
	tmpDir := t.TempDir()

	w, err := watch.New()
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	w.Rearm(tmpDir)
	require.Equal(t, []string{tmpDir}, w.Watched())

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "new.txt"), []byte("x"), 0644))

	select {
	case change := <-w.Changes():
		assert.Equal(t, tmpDir, change.Dir)
		assert.False(t, change.Timestamp.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("no change event received")
	}
}

func TestRearmSwapsWatchedSet(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	w, err := watch.New()
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	w.Rearm(first)
	w.Rearm(second)
	assert.Equal(t, []string{second}, w.Watched())

	// Activity in the dropped directory no longer produces events
	require.NoError(t, os.WriteFile(filepath.Join(first, "stale.txt"), []byte("x"), 0644))
	select {
	case change := <-w.Changes():
		t.Fatalf("unexpected event for %s", change.Dir)
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(filepath.Join(second, "fresh.txt"), []byte("x"), 0644))
	select {
	case change := <-w.Changes():
		assert.Equal(t, second, change.Dir)
	case <-time.After(2 * time.Second):
		t.Fatal("no change event for the new directory")
	}
}

func TestRearmSkipsMissingDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	missing := filepath.Join(tmpDir, "missing")

	w, err := watch.New()
	require.NoError(t, err)
	defer w.Stop()

	w.Rearm(missing, tmpDir)
	assert.Equal(t, []string{tmpDir}, w.Watched())
}
