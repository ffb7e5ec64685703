package content

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newContentDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "de"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "en"), 0o755))
	return dir
}

func TestWatcher_ReloadsAfterYAMLChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := newContentDir(t)
	var calls atomic.Int32
	w, err := NewWatcher(dir, func(context.Context) error {
		calls.Add(1)
		return nil
	}, 20*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "de", "market.yaml"), []byte("tam: \"1\"\n"), 0o644))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	w.Stop()

	stats := w.Stats()
	assert.GreaterOrEqual(t, stats.Reloads, 1)
	assert.GreaterOrEqual(t, stats.Events, 1)
	assert.Contains(t, stats.LastEventPath, "market.yaml")
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := newContentDir(t)
	var calls atomic.Int32
	w, err := NewWatcher(dir, func(context.Context) error {
		calls.Add(1)
		return nil
	}, 200*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	path := filepath.Join(dir, "en", "finance.yaml")
	for i := 0; i < 10; i++ {
		require.NoError(t, os.WriteFile(path, []byte("unit: k\n"), 0o644))
	}

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 10*time.Millisecond)
	w.Stop()
	assert.Less(t, calls.Load(), int32(10))
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := newContentDir(t)
	var calls atomic.Int32
	w, err := NewWatcher(dir, func(context.Context) error {
		calls.Add(1)
		return nil
	}, 10*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "de", "notes.txt"), []byte("x"), 0o644))
	time.Sleep(100 * time.Millisecond)
	w.Stop()

	assert.Equal(t, int32(0), calls.Load())
}

func TestWatcher_ReloadErrorIsCounted(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := newContentDir(t)
	w, err := NewWatcher(dir, func(context.Context) error {
		return assert.AnError
	}, 10*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "de", "risks.yaml"), []byte("items: []\n"), 0o644))
	assert.Eventually(t, func() bool { return w.Stats().ReloadErrors >= 1 }, 2*time.Second, 10*time.Millisecond)
	w.Stop()
	assert.Equal(t, 0, w.Stats().Reloads)
}

func TestWatcher_ContextCancelStopsLoop(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := newContentDir(t)
	w, err := NewWatcher(dir, func(context.Context) error { return nil }, 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()
	w.Stop()
}

func TestWatcher_StartOnMissingDirectory(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), func(context.Context) error { return nil }, 0)
	require.NoError(t, err)
	assert.Error(t, w.Start(context.Background()))
	w.Stop()
}
