package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Options configures a Watcher
type Options struct {
	// Extensions limits directory watches to files with these extensions.
	// Files named explicitly are always watched.
	Extensions []string
	// Debounce is how long a file must stay quiet before OnChange is called
	Debounce time.Duration
	// OnChange is called from the watcher goroutine with the changed path
	OnChange func(path string)
	Logger   *slog.Logger
}

// Watcher calls OnChange whenever a watched file is created or written
type Watcher struct {
	opts  Options
	files map[string]bool

	watcher *fsnotify.Watcher
	fire    chan string
	done    chan struct{}

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// New creates a Watcher
func New(opts Options) *Watcher {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	if opts.OnChange == nil {
		opts.OnChange = func(string) {}
	}
	return &Watcher{
		opts:    opts,
		files:   map[string]bool{},
		fire:    make(chan string),
		done:    make(chan struct{}),
		pending: map[string]*time.Timer{},
	}
}

// Matches returns true if changes to path should be reported
func (w *Watcher) Matches(path string) bool {
	path = filepath.Clean(path)
	if w.files[path] {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range w.opts.Extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// Start begins watching paths, which may be files or directories. Files are
// watched through their parent directory. Watching stops when ctx is done.
func (w *Watcher) Start(ctx context.Context, paths ...string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	dirs := map[string]bool{}
	for _, path := range paths {
		path = filepath.Clean(path)

		info, err := os.Stat(path)
		if err != nil {
			watcher.Close()
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}

		dir := path
		if !info.IsDir() {
			w.files[path] = true
			dir = filepath.Dir(path)
		}
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	w.watcher = watcher
	w.opts.Logger.Info("watching for changes", "paths", len(paths), "dirs", len(dirs))

	go w.loop(ctx)

	return nil
}

// Done is closed once the watcher has stopped
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) loop(ctx context.Context) {
	defer func() {
		w.mu.Lock()
		for path, timer := range w.pending {
			timer.Stop()
			delete(w.pending, path)
		}
		w.mu.Unlock()

		w.watcher.Close()
		close(w.done)
	}()

	for {
		select {
		case <-ctx.Done():
			w.opts.Logger.Debug("stopping watcher", "reason", ctx.Err())
			return

		case path := <-w.fire:
			w.opts.OnChange(path)

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.opts.Logger.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !w.Matches(event.Name) {
		return
	}

	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		w.schedule(ctx, filepath.Clean(event.Name))

	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		w.opts.Logger.Info("file removed", "file", event.Name)
	}
}

// schedule reports path once it has not changed for the debounce period
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.opts.Debounce)
		return
	}

	w.pending[path] = time.AfterFunc(w.opts.Debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		select {
		case w.fire <- path:
		case <-ctx.Done():
		}
	})
}
