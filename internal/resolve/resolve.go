// Package resolve runs the per-page fallback chain: each configured source in
// order, then the compiled-in defaults. Resolution never fails.
package resolve

import (
	"context"
	"log/slog"

	"github.com/starford/osirris/internal/audit"
	"github.com/starford/osirris/internal/content"
	"github.com/starford/osirris/internal/defaults"
	"github.com/starford/osirris/internal/listing"
	"github.com/starford/osirris/internal/metrics"
	"github.com/starford/osirris/internal/models"
	"github.com/starford/osirris/internal/normalize"
	"github.com/starford/osirris/internal/source"
)

// ServedByDefault names the static templates when no source had data.
const ServedByDefault = "default"

// Page names used in logs and the audit trail.
const (
	PageHome   = "home"
	PageGlobal = "global"
	PageBlog   = "blog"
	PagePost   = "post"
	PageMedia  = "media"
)

// Resolver produces display-ready page data.
type Resolver struct {
	sources  []source.Source
	norm     *normalize.Normalizer
	logger   *slog.Logger
	recorder audit.Recorder
	metrics  *metrics.Metrics
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSources sets the ordered source chain. Earlier sources win.
func WithSources(srcs ...source.Source) Option {
	return func(r *Resolver) {
		r.sources = srcs
	}
}

// WithNormalizer sets the normalizer, typically to inject a clock.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(r *Resolver) {
		r.norm = n
	}
}

// WithLogger sets the logger for source failures.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// WithRecorder records every resolution in an audit log.
func WithRecorder(rec audit.Recorder) Option {
	return func(r *Resolver) {
		r.recorder = rec
	}
}

// WithMetrics counts attempts and resolutions.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Resolver) {
		r.metrics = m
	}
}

// New creates a Resolver. Without sources every page resolves to defaults.
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	if r.norm == nil {
		r.norm = normalize.New()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Home resolves the home page content and global settings.
func (r *Resolver) Home(ctx context.Context) models.HomePage {
	res := r.fetchOne(ctx, PageHome, content.Pages, content.IndexKey)
	return models.HomePage{
		Content: r.norm.Page(res.First()),
		Global:  r.global(ctx, PageHome),
	}
}

// Global resolves the site-wide header and footer settings.
func (r *Resolver) Global(ctx context.Context) models.GlobalSettings {
	return r.global(ctx, PageGlobal)
}

func (r *Resolver) global(ctx context.Context, page string) models.GlobalSettings {
	res := r.fetchOne(ctx, page, content.Global, content.IndexKey)
	return r.norm.Global(res.First())
}

// Blog resolves the blog listing. Posts are sorted newest first and then
// filtered by q; categories are computed over every post.
func (r *Resolver) Blog(ctx context.Context, q listing.BlogQuery) models.BlogPage {
	posts := r.Posts(ctx)
	filtered := listing.FilterPosts(posts, q)
	return models.BlogPage{
		Posts:      filtered,
		Featured:   listing.Featured(filtered),
		Categories: listing.Categories(posts),
		Global:     r.global(ctx, PageBlog),
	}
}

// Posts resolves every blog post, newest first.
func (r *Resolver) Posts(ctx context.Context) []models.BlogPost {
	res := r.fetchAll(ctx, PageBlog, content.Posts)
	posts := defaults.Posts()
	if res.Outcome() == content.OutcomeFound {
		posts = r.norm.Posts(res.Records)
	}
	listing.SortPosts(posts)
	return posts
}

// Post resolves a single post by slug. When no source has it, Found is false
// and Post is the default template carrying the requested slug.
func (r *Resolver) Post(ctx context.Context, slug string) models.PostPage {
	res := r.fetchOne(ctx, PagePost, content.Posts, slug)
	page := models.PostPage{Global: r.global(ctx, PagePost)}
	if rec := res.First(); rec != nil {
		page.Post = r.norm.Post(rec)
		page.Found = true
		return page
	}
	page.Post = r.norm.Post(&content.Record{ID: slug})
	return page
}

// Media resolves the gallery and publications. Media items are filtered by q.
func (r *Resolver) Media(ctx context.Context, q listing.MediaQuery) models.MediaPage {
	return models.MediaPage{
		Media:        listing.FilterMedia(r.mediaItems(ctx), q),
		Publications: r.Publications(ctx),
		Global:       r.global(ctx, PageMedia),
	}
}

func (r *Resolver) mediaItems(ctx context.Context) []models.MediaItem {
	res := r.fetchAll(ctx, PageMedia, content.Media)
	if res.Outcome() != content.OutcomeFound {
		return defaults.Media()
	}
	return r.norm.Media(res.Records)
}

// Publications resolves the downloadable publications.
func (r *Resolver) Publications(ctx context.Context) []models.Publication {
	res := r.fetchAll(ctx, PageMedia, content.Publications)
	if res.Outcome() != content.OutcomeFound {
		return defaults.Publications()
	}
	return r.norm.Publications(res.Records)
}

// fetchOne walks the chain for a singleton or keyed record.
func (r *Resolver) fetchOne(ctx context.Context, page string, c content.Collection, key string) content.Result {
	return r.walk(ctx, page, c, key, func(src source.Source) content.Result {
		return src.Fetch(ctx, c, key)
	})
}

// fetchAll walks the chain for a list collection.
func (r *Resolver) fetchAll(ctx context.Context, page string, c content.Collection) content.Result {
	return r.walk(ctx, page, c, "", func(src source.Source) content.Result {
		return src.FetchAll(ctx, c)
	})
}

// walk tries each source in order and stops at the first Found result. Failed
// and Empty attempts are logged and swallowed. If nothing is found the
// returned result is Empty and callers use their defaults.
func (r *Resolver) walk(ctx context.Context, page string, c content.Collection, key string, fetch func(source.Source) content.Result) content.Result {
	attempts := make([]audit.Attempt, 0, len(r.sources))
	served, found := ServedByDefault, content.Empty()

	for _, src := range r.sources {
		res := fetch(src)
		outcome := res.Outcome()
		r.metrics.Attempt(c.Name, src.Name(), outcome.String())

		attempt := audit.Attempt{Source: src.Name(), Outcome: outcome.String()}
		switch outcome {
		case content.OutcomeFound:
			served, found = src.Name(), res
		case content.OutcomeFailed:
			attempt.Error = res.Err.Error()
			r.logger.Warn("resolve: source failed",
				slog.String("page", page),
				slog.String("source", src.Name()),
				slog.String("collection", c.Name),
				slog.String("key", key),
				slog.String("error", res.Err.Error()))
		case content.OutcomeEmpty:
			r.logger.Info("resolve: source empty",
				slog.String("page", page),
				slog.String("source", src.Name()),
				slog.String("collection", c.Name),
				slog.String("key", key))
		}
		attempts = append(attempts, attempt)
		if outcome == content.OutcomeFound {
			break
		}
	}

	r.metrics.Resolved(c.Name, served)
	if r.recorder != nil {
		err := r.recorder.Record(audit.Entry{
			Page:       page,
			Collection: c.Name,
			Key:        key,
			ServedBy:   served,
			Attempts:   attempts,
		})
		if err != nil {
			r.logger.Error("resolve: audit record failed", slog.String("error", err.Error()))
		}
	}
	return found
}
