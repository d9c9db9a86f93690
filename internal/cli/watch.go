package cli

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces bursts of editor write events into one
// re-conversion.
const watchDebounce = 500 * time.Millisecond

// watchNotebook blocks watching the notebook file and invokes reconvert
// after each (debounced) change until the context is cancelled. The parent
// directory is watched rather than the file itself so atomic save-and-rename
// editors keep triggering events.
func watchNotebook(ctx context.Context, notebookPath string, reconvert func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(notebookPath)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	log.Printf("Watching %s for changes...", notebookPath)

	var debounceTimer *time.Timer
	changed := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			// Restart the debounce window on every event in a burst.
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(watchDebounce, func() {
				select {
				case changed <- struct{}{}:
				default:
				}
			})

		case <-changed:
			log.Printf("Notebook changed, re-converting...")
			reconvert()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watch error: %v", err)
		}
	}
}
