package adapter

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	m "github.com/mouse-blink/tally/internal/model"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher wraps fsnotify with recursive directory registration and
// debounced change notification.
type Watcher struct {
	debounce time.Duration
}

// NewWatcher creates a watcher with the given debounce interval.
// A non-positive interval falls back to the default.
func NewWatcher(debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	return &Watcher{debounce: debounce}
}

// Watch blocks until ctx is done, invoking onChange with the batch of
// paths that changed since the last debounce window. Newly created
// directories are added to the watch set.
func (w *Watcher) Watch(ctx context.Context, root m.Path, onChange func(changed []m.Path)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := addWatchRecursive(watcher, string(root)); err != nil {
		return err
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	pending := make(map[m.Path]struct{})

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					_ = addWatchRecursive(watcher, event.Name)
				}
			}

			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if len(pending) == 0 {
				timer.Reset(w.debounce)
			}

			pending[m.Path(filepath.Clean(event.Name))] = struct{}{}

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			if watchErr != nil {
				return watchErr
			}

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}

			changed := make([]m.Path, 0, len(pending))
			for path := range pending {
				changed = append(changed, path)
			}

			pending = make(map[m.Path]struct{})

			onChange(changed)
		}
	}
}

func addWatchRecursive(watcher *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return watcher.Add(filepath.Dir(root))
	}

	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		if name := info.Name(); name == ".git" || name == "node_modules" || name == "vendor" {
			return filepath.SkipDir
		}

		return watcher.Add(path)
	})
}
