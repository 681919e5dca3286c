package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/starford/osirris/internal/export"
	"github.com/starford/osirris/internal/listing"
	"github.com/starford/osirris/internal/mcpserver"
	"github.com/starford/osirris/internal/resolve"
	"github.com/starford/osirris/internal/storage"
)

// Pages accepted by Resolve.
var Pages = []string{resolve.PageHome, resolve.PageGlobal, resolve.PageBlog, resolve.PagePost, resolve.PageMedia}

// Resolve resolves one page and writes its view model as indented JSON to w.
// arg is the slug for "post", the category for "blog" and the media type
// for "media".
func Resolve(ctx context.Context, w io.Writer, page, arg string, opts ...Option) error {
	rt, err := setup(newApplication(opts))
	if err != nil {
		return err
	}
	defer rt.Close()

	var v any
	switch page {
	case resolve.PageHome:
		v = rt.resolver.Home(ctx)
	case resolve.PageGlobal:
		v = rt.resolver.Global(ctx)
	case resolve.PageBlog:
		v = rt.resolver.Blog(ctx, listing.BlogQuery{Category: arg})
	case resolve.PagePost:
		if arg == "" {
			return fmt.Errorf("post requires a slug")
		}
		v = rt.resolver.Post(ctx, arg)
	case resolve.PageMedia:
		v = rt.resolver.Media(ctx, listing.MediaQuery{Type: arg})
	default:
		return fmt.Errorf("unknown page %q, want one of %v", page, Pages)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Export writes every page as static JSON below outDir.
func Export(ctx context.Context, outDir string, concurrency int, opts ...Option) error {
	rt, err := setup(newApplication(opts))
	if err != nil {
		return err
	}
	defer rt.Close()

	out, err := storage.NewFS(outDir)
	if err != nil {
		return fmt.Errorf("init export dir: %w", err)
	}
	m, err := export.New(rt.resolver, out, rt.logger, concurrency).Run(ctx)
	if err != nil {
		return err
	}
	rt.logger.Info("Export finished",
		slog.String("out", out.Root()),
		slog.String("run_id", m.RunID),
		slog.Int("files", len(m.Files)))
	return nil
}

// ServeMCP serves the content tools over stdio until stdin closes.
func ServeMCP(_ context.Context, opts ...Option) error {
	app := newApplication(opts)
	rt, err := setup(app)
	if err != nil {
		return err
	}
	defer rt.Close()

	rt.logger.Info("MCP server starting", slog.String("version", app.version))
	return mcpserver.New(rt.resolver, app.version).ServeStdio()
}
