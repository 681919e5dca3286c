package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RouterConfig collects what the API router serves.
type RouterConfig struct {
	Resolver Resolver
	// Status may be nil; /status then reports an empty log.
	Status StatusReader
	// CMS may be nil; /cms/* is then not mounted.
	CMS *CMSGate
	// Events, if non-nil, is mounted at GET /events.
	Events      http.Handler
	AuthEnabled bool
	Token       string
}

// NewRouter creates a chi router with all API routes mounted. Content routes
// are public; status and the CMS passthrough require the Bearer token when
// auth is enabled.
func NewRouter(cfg RouterConfig) chi.Router {
	h := NewHandler(cfg.Resolver, cfg.Status)

	r := chi.NewRouter()

	// Resolved pages.
	r.Get("/pages/home", h.Home)
	r.Get("/global", h.Global)
	r.Get("/blog", h.Blog)
	r.Get("/blog/{slug}", h.Post)
	r.Get("/media", h.Media)

	// Live preview events.
	if cfg.Events != nil {
		r.Get("/events", cfg.Events.ServeHTTP)
	}

	// Operator routes.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(cfg.AuthEnabled, cfg.Token))
		r.Get("/status", h.Status)
		if cfg.CMS != nil {
			r.Handle("/cms", cfg.CMS)
			r.Handle("/cms/*", cfg.CMS)
		}
	})

	return r
}
