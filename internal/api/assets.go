package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// assetExtensions is the allowlist for files served from project folders.
var assetExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true,
	".webp": true, ".gif": true, ".svg": true,
}

// AssetHandler serves image assets from project folders.
type AssetHandler struct {
	contentRoot string
}

// NewAssetHandler creates a handler rooted at the content directory.
func NewAssetHandler(contentRoot string) *AssetHandler {
	return &AssetHandler{contentRoot: filepath.Clean(contentRoot)}
}

// safePath validates that folder and name are plain path segments, that the
// extension is allowlisted, and returns the absolute path under the content
// root.
func (h *AssetHandler) safePath(folder, name string) (string, error) {
	for _, seg := range []string{folder, name} {
		if seg == "" {
			return "", fmt.Errorf("folder and file are required")
		}
		cleaned := filepath.Clean(seg)
		if cleaned != filepath.Base(cleaned) || strings.Contains(cleaned, "..") {
			return "", fmt.Errorf("invalid path segment: %s", seg)
		}
	}
	if !assetExtensions[strings.ToLower(filepath.Ext(name))] {
		return "", fmt.Errorf("unsupported asset type: %s", name)
	}
	abs := filepath.Join(h.contentRoot, folder, name)
	if !strings.HasPrefix(abs, h.contentRoot+string(os.PathSeparator)) {
		return "", fmt.Errorf("path escapes content root")
	}
	return abs, nil
}

// ServeFile handles GET /assets/{folder}/{file}.
func (h *AssetHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	folder := chi.URLParam(r, "folder")
	name := chi.URLParam(r, "file")

	abs, err := h.safePath(folder, name)
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
