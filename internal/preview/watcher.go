package preview

import (
	"context"
	"os"
	"sort"
	"sync"
	"time"
)

// Watcher polls a set of files and reports the ones whose modification
// time changed, appeared or disappeared.
type Watcher struct {
	interval   time.Duration
	onChange   func(paths []string)
	mu         sync.Mutex
	timestamps map[string]time.Time
}

// NewWatcher creates a watcher polling every interval. Zero means 200ms.
func NewWatcher(interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	return &Watcher{
		interval:   interval,
		timestamps: make(map[string]time.Time),
	}
}

// OnChange sets the callback for a batch of changed paths.
func (w *Watcher) OnChange(fn func(paths []string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// SetPaths replaces the watched files. Files already watched keep their
// last seen modification time.
func (w *Watcher) SetPaths(paths []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	next := make(map[string]time.Time, len(paths))
	for _, p := range paths {
		if t, ok := w.timestamps[p]; ok {
			next[p] = t
			continue
		}
		next[p] = modTime(p)
	}
	w.timestamps = next
}

// Paths returns the watched files, sorted.
func (w *Watcher) Paths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]string, 0, len(w.timestamps))
	for p := range w.timestamps {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Run polls until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Check()
		}
	}
}

// Check polls once and reports changes to the callback.
func (w *Watcher) Check() []string {
	w.mu.Lock()
	var changed []string
	for p, last := range w.timestamps {
		now := modTime(p)
		if !now.Equal(last) {
			w.timestamps[p] = now
			changed = append(changed, p)
		}
	}
	callback := w.onChange
	w.mu.Unlock()

	if len(changed) == 0 {
		return nil
	}
	sort.Strings(changed)
	if callback != nil {
		callback(changed)
	}
	return changed
}

// modTime is the zero time for missing files.
func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
