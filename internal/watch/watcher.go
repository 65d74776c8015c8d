// Package watch invalidates content caches when files under the content
// root change on disk.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/marovec/folio/internal/catalog"
	"github.com/marovec/folio/internal/links"
)

// debounceWindow batches rapid editor write bursts into one cache reset.
const debounceWindow = 300 * time.Millisecond

// EventCallback is called after a watcher-driven cache reset.
// kind is "project" (id carries the folder) or "links" (id empty).
type EventCallback func(kind, id string)

// Watch starts an fsnotify watcher on the content root and processes file
// change events until ctx is cancelled. Changes under a project folder reset
// the catalog; changes to the link document reset the link store. Resets are
// debounced, and cb (if non-nil) fires once per affected resource per flush.
//
// New directories created at runtime are added to the watch list so fresh
// project folders are picked up without a restart.
func Watch(ctx context.Context, root, linksFile string, cat *catalog.Catalog, ls *links.Store, logger *slog.Logger, cb EventCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, root); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", root))

	pendingFolders := make(map[string]struct{})
	pendingLinks := false

	var flushTimer *time.Timer
	var flushCh <-chan time.Time

	scheduleFlush := func() {
		if flushTimer == nil {
			flushTimer = time.NewTimer(debounceWindow)
			flushCh = flushTimer.C
		} else {
			flushTimer.Reset(debounceWindow)
		}
	}

	flush := func() {
		if pendingLinks {
			ls.Reset()
			logger.Debug("watcher: link store reset")
			if cb != nil {
				cb("links", "")
			}
			pendingLinks = false
		}
		if len(pendingFolders) > 0 {
			cat.Reset()
			logger.Debug("watcher: catalog reset", slog.Int("folders", len(pendingFolders)))
			if cb != nil {
				for folder := range pendingFolders {
					cb("project", folder)
				}
			}
			clear(pendingFolders)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if flushTimer != nil {
				flushTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-flushCh:
			flush()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					}
				}
			}

			rel, relErr := filepath.Rel(root, ev.Name)
			if relErr != nil || strings.HasPrefix(rel, "..") {
				continue
			}
			rel = filepath.ToSlash(rel)

			switch {
			case rel == linksFile:
				pendingLinks = true
				scheduleFlush()
			default:
				// A bare top-level name is a fresh project folder; deeper
				// paths map to their top-level segment.
				folder, _, _ := strings.Cut(rel, "/")
				if folder == "" || strings.HasPrefix(folder, ".") {
					continue
				}
				pendingFolders[folder] = struct{}{}
				scheduleFlush()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
