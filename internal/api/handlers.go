package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/osirris/internal/audit"
	"github.com/starford/osirris/internal/listing"
	"github.com/starford/osirris/internal/models"
)

// Resolver produces the page view models served by the API.
type Resolver interface {
	Home(ctx context.Context) models.HomePage
	Global(ctx context.Context) models.GlobalSettings
	Blog(ctx context.Context, q listing.BlogQuery) models.BlogPage
	Post(ctx context.Context, slug string) models.PostPage
	Media(ctx context.Context, q listing.MediaQuery) models.MediaPage
}

// StatusReader exposes the resolution audit log.
type StatusReader interface {
	Recent(limit int) ([]audit.Entry, error)
	LastServed() (map[string]string, error)
}

// StatusResponse reports which source served each collection most recently.
type StatusResponse struct {
	LastServed map[string]string `json:"lastServed" validate:"required"`
	Recent     []audit.Entry     `json:"recent" validate:"required"`
}

// Handler holds API route handlers.
type Handler struct {
	resolver Resolver
	status   StatusReader
}

// NewHandler creates a new Handler. status may be nil.
func NewHandler(resolver Resolver, status StatusReader) *Handler {
	return &Handler{resolver: resolver, status: status}
}

// Home handles GET /api/pages/home.
//
//	@Summary		Resolved home page content and global settings
//	@Tags			pages
//	@Produce		json
//	@Success		200	{object}	models.HomePage
//	@Success		304
//	@Router			/pages/home [get]
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	writeView(w, r, http.StatusOK, h.resolver.Home(r.Context()))
}

// Global handles GET /api/global.
//
//	@Summary		Resolved header and footer settings
//	@Tags			pages
//	@Produce		json
//	@Success		200	{object}	models.GlobalSettings
//	@Router			/global [get]
func (h *Handler) Global(w http.ResponseWriter, r *http.Request) {
	writeView(w, r, http.StatusOK, h.resolver.Global(r.Context()))
}

// Blog handles GET /api/blog.
//
//	@Summary		Blog listing, newest first
//	@Tags			blog
//	@Produce		json
//	@Param			category	query		string	false	"Exact category, All for every category"
//	@Param			q			query		string	false	"Case-insensitive title or excerpt match"
//	@Success		200			{object}	models.BlogPage
//	@Router			/blog [get]
func (h *Handler) Blog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := h.resolver.Blog(r.Context(), listing.BlogQuery{
		Category: q.Get("category"),
		Query:    q.Get("q"),
	})
	writeView(w, r, http.StatusOK, page)
}

// Post handles GET /api/blog/{slug}. An unknown slug answers 404 with the
// default post so the page still renders.
//
//	@Summary		Single blog post
//	@Tags			blog
//	@Produce		json
//	@Param			slug	path		string	true	"Post slug (file name without extension)"
//	@Success		200		{object}	models.PostPage
//	@Failure		404		{object}	models.PostPage
//	@Router			/blog/{slug} [get]
func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page := h.resolver.Post(r.Context(), slug)
	status := http.StatusOK
	if !page.Found {
		status = http.StatusNotFound
	}
	writeView(w, r, status, page)
}

// Media handles GET /api/media.
//
//	@Summary		Media gallery and publications
//	@Tags			media
//	@Produce		json
//	@Param			type	query		string	false	"Gallery filter"	Enums(all, photos, videos)
//	@Success		200		{object}	models.MediaPage
//	@Router			/media [get]
func (h *Handler) Media(w http.ResponseWriter, r *http.Request) {
	page := h.resolver.Media(r.Context(), listing.MediaQuery{Type: r.URL.Query().Get("type")})
	writeView(w, r, http.StatusOK, page)
}

// Status handles GET /api/status.
//
//	@Summary		Recent resolutions and the source serving each collection
//	@Tags			status
//	@Produce		json
//	@Param			limit	query		int	false	"Number of recent resolutions"
//	@Success		200		{object}	StatusResponse
//	@Security		BearerAuth
//	@Router			/status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{LastServed: map[string]string{}, Recent: []audit.Entry{}}
	if h.status == nil {
		writeJSON(w, http.StatusOK, resp)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	recent, err := h.status.Recent(limit)
	if err != nil {
		slog.Error("status recent failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	served, err := h.status.LastServed()
	if err != nil {
		slog.Error("status last served failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	resp.Recent, resp.LastServed = recent, served
	writeJSON(w, http.StatusOK, resp)
}
