package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/marovec/folio/internal/apperr"
	"github.com/marovec/folio/internal/portfolio"
)

// Handler holds API route handlers.
type Handler struct {
	svc *portfolio.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *portfolio.Service) *Handler {
	return &Handler{svc: svc}
}

// ListProjects handles GET /projects with optional ?tag= and ?featured=
// filters. An empty tag returns the full catalog; the featured flag accepts
// any strconv boolean form.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tag := q.Get("tag")
	featured, _ := strconv.ParseBool(q.Get("featured"))

	snap := h.svc.Snapshot(r.Context())
	projects := h.svc.ListProjects(r.Context(), tag, featured)

	writeJSON(w, http.StatusOK, ProjectListResponse{
		Projects: projects,
		Total:    len(projects),
		Version:  snap.Version,
	})
}

// GetProject handles GET /projects/{id}.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("id is required"))
		return
	}
	detail, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("get project failed", slog.String("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	w.Header().Set("ETag", `"`+detail.Checksum+`"`)
	writeJSON(w, http.StatusOK, detail)
}

// ProjectImages handles GET /projects/{id}/images.
func (h *Handler) ProjectImages(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	images, err := h.svc.ProjectImages(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("project images failed", slog.String("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, ImagesResponse{Images: images})
}

// Links handles GET /links. The document is served verbatim; a degraded
// load still yields the empty category shape, never an error status.
func (h *Handler) Links(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Links(r.Context()))
}
