package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/raylink/internal/core/domain"
	"github.com/custodia-labs/raylink/internal/core/ports/driven"
	"github.com/custodia-labs/raylink/internal/logger"
)

// Verify interface compliance.
var _ driven.PromptWatcher = (*PromptWatcher)(nil)

// DefaultDebounce is how long a file must stay quiet before it is reported.
// Editors often save in several writes.
const DefaultDebounce = 200 * time.Millisecond

// PromptWatcher watches a prompts directory with fsnotify.
type PromptWatcher struct {
	debounce time.Duration
}

// NewPromptWatcher creates a watcher with the given debounce.
// A non-positive debounce uses DefaultDebounce.
func NewPromptWatcher(debounce time.Duration) *PromptWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &PromptWatcher{debounce: debounce}
}

// Watch blocks until ctx is done, reporting created or written prompt files.
func (w *PromptWatcher) Watch(ctx context.Context, dir string, onChange func(path string)) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("prompts directory %s: %w", dir, domain.ErrNotFound)
		}
		return fmt.Errorf("prompts directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory: %w", dir, domain.ErrInvalidInput)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Debug("Watching prompts directory %s", dir)

	ticker := time.NewTicker(max(w.debounce/2, time.Millisecond))
	defer ticker.Stop()

	pending := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if path, ok := promptEvent(event); ok {
				pending[path] = time.Now()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Prompt watcher error: %v", err)

		case now := <-ticker.C:
			var ready []string
			for path, seen := range pending {
				if now.Sub(seen) >= w.debounce {
					ready = append(ready, path)
					delete(pending, path)
				}
			}

			for _, path := range ready {
				onChange(path)
			}
		}
	}
}

// promptEvent returns the path of a create or write on a prompt file.
func promptEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}
	if !IsPromptFile(filepath.Base(event.Name)) {
		return "", false
	}
	return event.Name, true
}
