package web

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ImageHandler serves preview images uploaded next to the documents.
type ImageHandler struct {
	root string
}

// NewImageHandler creates a handler rooted at the images directory.
func NewImageHandler(root string) *ImageHandler {
	return &ImageHandler{root: root}
}

// safeName validates that the filename is a plain name (no path separators,
// no traversal) and returns the absolute path under the images dir.
func (h *ImageHandler) safeName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("filename is required")
	}
	// Reject anything with path separators or traversal.
	cleaned := filepath.Clean(name)
	if cleaned != filepath.Base(cleaned) || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("invalid filename: %s", name)
	}
	abs := filepath.Join(h.root, cleaned)
	// Double-check the resolved path is under the images dir.
	if !strings.HasPrefix(abs, h.root+string(os.PathSeparator)) && abs != h.root {
		return "", fmt.Errorf("path escapes images directory")
	}
	return abs, nil
}

// ServeFile handles GET /images/{filename}.
func (h *ImageHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	abs, err := h.safeName(filename)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, statErr := os.Stat(abs); os.IsNotExist(statErr) {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, abs)
}
