package am

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders.yaml")
	other := filepath.Join(dir, "unrelated.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), DefaultFilePermissions))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	w.WithLogger(zaptest.NewLogger(t).Sugar())
	w.SetDebounce(50 * time.Millisecond)

	var calls atomic.Int32
	got := make(chan string, 4)
	w.OnChange(func(p string) error {
		calls.Add(1)
		got <- p
		return nil
	})
	w.Start()
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, os.WriteFile(other, []byte("x"), DefaultFilePermissions))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('b' + i)}, DefaultFilePermissions))
	}

	select {
	case p := <-got:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, p)
	case <-time.After(3 * time.Second):
		t.Fatal("no change callback")
	}
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatcher_Stop(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, nil, DefaultFilePermissions))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	w.Start()
	require.NoError(t, w.Stop())

	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("event loop did not exit")
	}
}

func TestNewWatcher_NoPaths(t *testing.T) {
	_, err := NewWatcher()
	require.Error(t, err)
}
