package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/starford/osirris/internal/apperr"
	"github.com/starford/osirris/internal/content"
	"github.com/starford/osirris/internal/parser"
	"github.com/starford/osirris/internal/storage"
)

// Local reads flat content files below the content root.
type Local struct {
	store  storage.Provider
	logger *slog.Logger
}

// NewLocal creates a local file source.
func NewLocal(store storage.Provider, logger *slog.Logger) *Local {
	if logger == nil {
		logger = slog.Default()
	}
	return &Local{store: store, logger: logger}
}

// Name returns "local".
func (l *Local) Name() string { return NameLocal }

// Fetch reads <dir>/<key>.* and returns it as one record. A missing file is
// apperr.ErrNotFound; a file that does not parse is apperr.ErrMalformedContent.
func (l *Local) Fetch(ctx context.Context, c content.Collection, key string) content.Result {
	if err := ctx.Err(); err != nil {
		return content.Failed(err)
	}
	if !validKey(key) {
		return content.Failed(fmt.Errorf("local: invalid key %q: %w", key, apperr.ErrNotFound))
	}
	entries, err := l.store.Glob(path.Join(c.Dir, key) + ".*")
	if err != nil {
		return content.Failed(err)
	}
	for _, e := range entries {
		// "a.*" also matches "a.b.mdx", whose id is "a.b".
		if e.Stem != key || !parser.Supported(e.Path) {
			continue
		}
		rec, err := l.load(e)
		if err != nil {
			return content.Failed(err)
		}
		return content.Found(rec)
	}
	return content.Failed(fmt.Errorf("local: %s/%s: %w", c.Dir, key, apperr.ErrNotFound))
}

// FetchAll reads every file directly inside the collection directory.
// Files that fail to parse are skipped; a second file with an already seen
// stem is skipped so ids stay unique.
func (l *Local) FetchAll(ctx context.Context, c content.Collection) content.Result {
	if err := ctx.Err(); err != nil {
		return content.Failed(err)
	}
	entries, err := l.store.Glob(c.Dir + "/*.*")
	if err != nil {
		return content.Failed(err)
	}

	seen := make(map[string]struct{}, len(entries))
	recs := make([]content.Record, 0, len(entries))
	for _, e := range entries {
		if !parser.Supported(e.Path) {
			continue
		}
		if _, dup := seen[e.Stem]; dup {
			l.logger.Warn("local: duplicate slug skipped",
				slog.String("collection", c.Name),
				slog.String("path", e.Path))
			continue
		}
		rec, err := l.load(e)
		if err != nil {
			l.logger.Warn("local: file skipped",
				slog.String("collection", c.Name),
				slog.String("path", e.Path),
				slog.String("error", err.Error()))
			continue
		}
		seen[e.Stem] = struct{}{}
		recs = append(recs, rec)
	}
	if len(recs) == 0 {
		return content.Empty()
	}
	return content.Found(recs...)
}

func (l *Local) load(e storage.Entry) (content.Record, error) {
	data, err := l.store.Read(e.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return content.Record{}, fmt.Errorf("local: %s: %w", e.Path, apperr.ErrNotFound)
		}
		return content.Record{}, err
	}
	doc, err := parser.Parse(e.Path, data)
	if err != nil {
		return content.Record{}, err
	}
	return content.Record{
		ID:      e.Stem,
		Fields:  doc.Fields,
		Body:    doc.Body,
		ModTime: e.ModTime,
	}, nil
}
