package web

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nsodat/vitrina/internal/apperr"
	"github.com/nsodat/vitrina/internal/render"
	"github.com/nsodat/vitrina/internal/ui"
)

// Handler holds the HTTP route handlers.
type Handler struct {
	svc *Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Page handles GET /.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Page(r.Context())
	if err != nil {
		slog.Error("render page failed", slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// DataFile handles GET /data/{file}, the well-known document paths the
// published static page fetches. Responses carry a strong ETag.
func (h *Handler) DataFile(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	data, sum, err := h.svc.RawDocument(file)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	etag := `"` + sum + `"`
	if strings.Trim(r.Header.Get("If-None-Match"), `"`) == sum {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(data)
}

// ListSections handles GET /api/sections.
//
//	@Summary	List the four portfolio documents and their state
//	@Tags		sections
//	@Produce	json
//	@Success	200	{object}	SectionListResponse
//	@Router		/sections [get]
func (h *Handler) ListSections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SectionListResponse{Sections: h.svc.Sections(r.Context())})
}

// GetSection handles GET /api/sections/{section}.
//
//	@Summary	Get one document with its checksum
//	@Tags		sections
//	@Produce	json
//	@Param		section	path		string	true	"Section key"	Enums(modules, thesis, courseworks, practicals)
//	@Success	200		{object}	SectionPayload
//	@Failure	404		{object}	errResponse
//	@Router		/sections/{section} [get]
func (h *Handler) GetSection(w http.ResponseWriter, r *http.Request) {
	payload, err := h.svc.GetSection(r.Context(), chi.URLParam(r, "section"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// UpdateSection handles PUT /api/sections/{section}. The body is the
// whole document.
//
//	@Summary	Replace a document with optimistic concurrency
//	@Tags		sections
//	@Accept		json
//	@Produce	json
//	@Param		section		path		string	true	"Section key"
//	@Param		If-Match	header		string	false	"Checksum for optimistic concurrency"
//	@Success	200			{object}	SectionPayload
//	@Failure	400			{object}	errResponse
//	@Failure	404			{object}	errResponse
//	@Failure	409			{object}	errResponse
//	@Security	BearerAuth
//	@Router		/sections/{section} [put]
func (h *Handler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("failed to read body"))
		return
	}

	ifMatch := strings.Trim(r.Header.Get("If-Match"), `"`)
	key := chi.URLParam(r, "section")

	payload, err := h.svc.UpdateSection(r.Context(), key, body, ifMatch)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		case errors.Is(err, apperr.ErrInvalid):
			writeJSON(w, http.StatusBadRequest, errorBody("invalid document body"))
		case errors.Is(err, apperr.ErrConflict):
			writeJSON(w, http.StatusConflict, errorBody("checksum mismatch"))
		default:
			slog.Error("update section failed", slog.String("section", key), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// Stats handles GET /api/stats.
//
//	@Summary	Hero counter targets derived from the content
//	@Tags		stats
//	@Produce	json
//	@Success	200	{object}	content.Stats
//	@Router		/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Stats(r.Context()))
}

// SectionFragment handles GET /fragments/{section}. An empty section
// answers 204 so clients can blank the container.
func (h *Handler) SectionFragment(w http.ResponseWriter, r *http.Request) {
	html, ok, err := h.svc.Fragment(chi.URLParam(r, "section"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

// ModuleFragment handles GET /fragments/modules/{index}. The state
// query selects the collapse state of the returned card.
func (h *Handler) ModuleFragment(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid module index"))
		return
	}
	state := ui.ParseCollapseState(r.URL.Query().Get("state"))
	html, err := h.svc.ModuleFragment(index, state)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
			return
		}
		slog.Error("module fragment failed", slog.Int("index", index), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

// PublishSite handles POST /api/publish.
//
//	@Summary	Commit and push the site repository
//	@Tags		publish
//	@Accept		json
//	@Produce	json
//	@Param		body	body		PublishRequest	false	"Commit message"
//	@Success	200		{object}	PublishResponse
//	@Failure	503		{object}	errResponse
//	@Security	BearerAuth
//	@Router		/publish [post]
func (h *Handler) PublishSite(w http.ResponseWriter, r *http.Request) {
	var req PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	out, err := h.svc.PublishSite(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, apperr.ErrUnavailable) {
			writeJSON(w, http.StatusServiceUnavailable, errorBody("publishing not configured"))
			return
		}
		slog.Error("publish failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("publish failed"))
		return
	}
	writeJSON(w, http.StatusOK, PublishResponse{Output: out})
}

// Asset handles GET /assets/{asset}.
func (h *Handler) Asset(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "asset") {
	case "style.css":
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		_, _ = w.Write([]byte(render.StyleCSS))
	case "app.js":
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		_, _ = w.Write([]byte(render.AppJS))
	default:
		http.NotFound(w, r)
	}
}
