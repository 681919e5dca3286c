// Package export writes every resolved page to static JSON files.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/starford/osirris/internal/checksum"
	"github.com/starford/osirris/internal/listing"
	"github.com/starford/osirris/internal/models"
)

// ManifestPath is the file listing everything written by one run.
const ManifestPath = "manifest.json"

// Resolver is the subset of the resolution pipeline the export needs.
type Resolver interface {
	Home(ctx context.Context) models.HomePage
	Global(ctx context.Context) models.GlobalSettings
	Blog(ctx context.Context, q listing.BlogQuery) models.BlogPage
	Post(ctx context.Context, slug string) models.PostPage
	Media(ctx context.Context, q listing.MediaQuery) models.MediaPage
}

// Writer stores one output file. storage.FS writes atomically.
type Writer interface {
	Write(path string, content []byte) error
}

// Manifest describes one export run.
type Manifest struct {
	RunID       string    `json:"runId"`
	GeneratedAt time.Time `json:"generatedAt"`
	Files       []string  `json:"files"`
	// Checksums maps each file to the SHA-256 of its contents.
	Checksums map[string]string `json:"checksums"`
}

// Exporter resolves pages concurrently and writes them out.
type Exporter struct {
	resolver    Resolver
	out         Writer
	logger      *slog.Logger
	concurrency int
	now         func() time.Time
}

// New creates an Exporter. concurrency <= 0 means 4 pages at a time.
func New(resolver Resolver, out Writer, logger *slog.Logger, concurrency int) *Exporter {
	if concurrency <= 0 {
		concurrency = 4
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{resolver: resolver, out: out, logger: logger, concurrency: concurrency, now: time.Now}
}

// Run writes global.json, pages/home.json, blog/index.json, one
// blog/<slug>.json per post, media/index.json and finally the manifest.
// Resolution itself cannot fail; the first write error stops the run.
func (e *Exporter) Run(ctx context.Context) (*Manifest, error) {
	var (
		mu        sync.Mutex
		files     []string
		checksums = make(map[string]string)
	)
	write := func(p string, v any) error {
		data, err := e.writeJSON(p, v)
		if err != nil {
			return err
		}
		mu.Lock()
		files = append(files, p)
		checksums[p] = checksum.Sum(data)
		mu.Unlock()
		e.logger.Debug("export: wrote", slog.String("path", p))
		return nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	g.Go(func() error { return write("global.json", e.resolver.Global(gCtx)) })
	g.Go(func() error { return write("pages/home.json", e.resolver.Home(gCtx)) })
	g.Go(func() error { return write("media/index.json", e.resolver.Media(gCtx, listing.MediaQuery{})) })

	blog := e.resolver.Blog(ctx, listing.BlogQuery{})
	g.Go(func() error { return write("blog/index.json", blog) })
	for _, post := range blog.Posts {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			return write(path.Join("blog", post.ID+".json"), e.resolver.Post(gCtx, post.ID))
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.Sort(files)
	m := &Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: e.now().UTC(),
		Files:       files,
		Checksums:   checksums,
	}
	if _, err := e.writeJSON(ManifestPath, m); err != nil {
		return nil, err
	}
	e.logger.Info("export: done",
		slog.String("run_id", m.RunID),
		slog.Int("files", len(m.Files)))
	return m, nil
}

func (e *Exporter) writeJSON(p string, v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: encode %s: %w", p, err)
	}
	data = append(data, '\n')
	if err := e.out.Write(p, data); err != nil {
		return nil, fmt.Errorf("export: write %s: %w", p, err)
	}
	return data, nil
}
