package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// uploadsDir is where the CMS media manager stores images, below the content root.
const uploadsDir = "uploads"

// UploadHandler serves media files referenced by content, e.g. /uploads/hero.jpg.
type UploadHandler struct {
	contentRoot string
}

// NewUploadHandler creates a handler rooted at the content directory.
func NewUploadHandler(contentRoot string) *UploadHandler {
	return &UploadHandler{contentRoot: contentRoot}
}

func (h *UploadHandler) uploadsPath() string {
	return filepath.Join(h.contentRoot, uploadsDir)
}

// safeName validates that the filename is a plain name (no path separators,
// no traversal) and returns the absolute path under the uploads dir.
func (h *UploadHandler) safeName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("filename is required")
	}
	cleaned := filepath.Clean(name)
	if cleaned != filepath.Base(cleaned) || strings.Contains(cleaned, "..") || strings.HasPrefix(cleaned, ".") {
		return "", fmt.Errorf("invalid filename: %s", name)
	}
	abs := filepath.Join(h.uploadsPath(), cleaned)
	if !strings.HasPrefix(abs, h.uploadsPath()+string(os.PathSeparator)) {
		return "", fmt.Errorf("path escapes uploads directory")
	}
	return abs, nil
}

// ServeFile handles GET /uploads/{filename}.
func (h *UploadHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	abs, err := h.safeName(chi.URLParam(r, "filename"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if info, statErr := os.Stat(abs); statErr != nil || info.IsDir() {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	http.ServeFile(w, r, abs)
}
