package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/lecs/internal/logging"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) record(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.paths...)
}

func TestMatches(t *testing.T) {
	w := New(Options{Extensions: []string{".lecs", ".EDN"}})
	w.files["/tmp/notes.txt"] = true

	assert.True(t, w.Matches("/a/b.lecs"))
	assert.True(t, w.Matches("/a/b.edn"))
	assert.True(t, w.Matches("/tmp/./notes.txt"))
	assert.False(t, w.Matches("/a/b.go"))
}

func TestWatchDirectory(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := New(Options{
		Extensions: []string{".lecs"},
		Debounce:   20 * time.Millisecond,
		OnChange:   rec.record,
		Logger:     logging.Discard(),
	})
	require.NoError(t, w.Start(ctx, dir))

	target := filepath.Join(dir, "a.lecs")
	require.NoError(t, os.WriteFile(target, []byte("(a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(target, []byte("(a)"), 0o644))

	assert.Eventually(t, func() bool {
		return len(rec.seen()) > 0
	}, 2*time.Second, 10*time.Millisecond)

	for _, path := range rec.seen() {
		assert.Equal(t, target, path)
	}

	cancel()
	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(target, []byte(""), 0o644))

	rec := &recorder{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := New(Options{
		Debounce: 10 * time.Millisecond,
		OnChange: rec.record,
		Logger:   logging.Discard(),
	})
	require.NoError(t, w.Start(ctx, target))

	require.NoError(t, os.WriteFile(target, []byte("[x]"), 0o644))

	assert.Eventually(t, func() bool {
		return len(rec.seen()) > 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, target, rec.seen()[0])
}

func TestStartMissingPath(t *testing.T) {
	w := New(Options{Logger: logging.Discard()})
	err := w.Start(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
