// Package watch reports content file changes under the content root.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/osirris/internal/content"
	"github.com/starford/osirris/internal/parser"
)

// Change kinds passed to the callback.
const (
	Created = "created"
	Updated = "updated"
	Deleted = "deleted"
)

// Event describes one content file change. Path is slash separated and
// relative to the content root; Collection is empty for files outside the
// known collection directories.
type Event struct {
	Kind       string
	Path       string
	Collection string
}

// Callback receives change events.
type Callback func(Event)

// settleDelay coalesces the burst of Write events editors emit on save.
const settleDelay = 100 * time.Millisecond

// Watch starts an fsnotify watcher on root and reports content file changes
// to cb until ctx is cancelled.
//
// New directories created at runtime are added to the watch list and their
// existing files reported as created. fsnotify reports a rename on the old
// path only, so renames are reported as deletions; the new path arrives as a
// separate create.
func Watch(ctx context.Context, root string, logger *slog.Logger, cb Callback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := os.MkdirAll(root, 0o755); err != nil {
		return err
	}
	if err := addDirsRecursive(w, root); err != nil {
		return err
	}
	logger.Info("watcher: started", slog.String("root", root))

	// pending holds updates waiting for settleDelay to pass.
	pending := make(map[string]string)
	var settleTimer *time.Timer
	var settleCh <-chan time.Time

	schedule := func() {
		if settleTimer == nil {
			settleTimer = time.NewTimer(settleDelay)
			settleCh = settleTimer.C
		} else {
			settleTimer.Reset(settleDelay)
		}
	}

	emit := func(kind, rel string) {
		ev := Event{Kind: kind, Path: rel, Collection: collectionOf(rel)}
		logger.Debug("watcher: change",
			slog.String("path", rel),
			slog.String("op", kind),
			slog.String("collection", ev.Collection))
		if cb != nil {
			cb(ev)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if settleTimer != nil {
				settleTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-settleCh:
			for rel, kind := range pending {
				emit(kind, rel)
			}
			clear(pending)

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
						continue
					}
					walkNewDir(root, ev.Name, func(rel string) { emit(Created, rel) })
					continue
				}
			}

			rel, ok := relPath(root, ev.Name)
			if !ok {
				continue
			}

			switch {
			case ev.Op&fsnotify.Create != 0:
				pending[rel] = Created
				schedule()
			case ev.Op&fsnotify.Write != 0:
				if _, seen := pending[rel]; !seen {
					pending[rel] = Updated
				}
				schedule()
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				delete(pending, rel)
				emit(Deleted, rel)
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// relPath returns the slash-separated path of a content file relative to
// root. Hidden files, temp files and unsupported extensions are rejected.
func relPath(root, abs string) (string, bool) {
	if !parser.Supported(abs) || strings.HasPrefix(filepath.Base(abs), ".") {
		return "", false
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// collectionOf maps a relative path to the name of the collection whose
// directory holds it.
func collectionOf(rel string) string {
	dir := path.Dir(rel)
	if c, ok := content.ByDir(dir); ok {
		return c.Name
	}
	return ""
}

// walkNewDir reports content files already present in a newly created directory.
func walkNewDir(root, dirPath string, fn func(rel string)) {
	_ = filepath.WalkDir(dirPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if rel, ok := relPath(root, p); ok {
			fn(rel)
		}
		return nil
	})
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(p)
		}
		return nil
	})
}
