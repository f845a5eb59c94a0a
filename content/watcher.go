package content

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a content file when it changes on disk and hands the new
// content to a callback. A file that fails to load is logged and skipped;
// the previous content stays in effect.
type Watcher struct {
	path     string
	logger   *zap.Logger
	onChange func(*Content)

	// Debounce is how long the file must stay quiet before reloading.
	Debounce time.Duration
}

func NewWatcher(path string, logger *zap.Logger, onChange func(*Content)) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		logger:   logger,
		onChange: onChange,
		Debounce: 200 * time.Millisecond,
	}
}

// Run watches until ctx is cancelled. The parent directory is watched rather
// than the file so editors that save by rename are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create content watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	w.logger.Info("Watching content", zap.String("path", w.path))

	ticker := time.NewTicker(max(w.Debounce/4, 10*time.Millisecond))
	defer ticker.Stop()

	var lastEvent time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			lastEvent = time.Now()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Content watcher error", zap.Error(err))

		case <-ticker.C:
			if lastEvent.IsZero() || time.Since(lastEvent) < w.Debounce {
				continue
			}
			lastEvent = time.Time{}
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	c, err := Load(w.path)
	if err != nil {
		w.logger.Warn("Content reload failed", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.logger.Info("Content reloaded", zap.String("path", w.path))
	w.onChange(c)
}
