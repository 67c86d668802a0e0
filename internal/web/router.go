package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with the page, document, fragment and
// management routes mounted. authEnabled controls whether Bearer token
// auth is enforced on the mutating routes.
// sseHandler, if non-nil, is mounted at GET /api/events. imagesDir is
// where uploaded preview images are served from.
func NewRouter(svc *Service, authEnabled bool, token string, sseHandler http.Handler, imagesDir string) chi.Router {
	h := NewHandler(svc)
	ih := NewImageHandler(imagesDir)

	r := chi.NewRouter()

	// Page and static surface.
	r.Get("/", h.Page)
	r.Get("/assets/{asset}", h.Asset)
	r.Get("/data/{file}", h.DataFile)
	r.Get("/images/{filename}", ih.ServeFile)

	// Server-rendered fragments.
	r.Get("/fragments/modules/{index}", h.ModuleFragment)
	r.Get("/fragments/{section}", h.SectionFragment)

	// Management API.
	r.Route("/api", func(api chi.Router) {
		api.Get("/sections", h.ListSections)
		api.Get("/sections/{section}", h.GetSection)
		api.Get("/stats", h.Stats)

		if sseHandler != nil {
			api.Get("/events", sseHandler.ServeHTTP)
		}

		// Mutating routes sit behind auth.
		api.Group(func(priv chi.Router) {
			priv.Use(AuthMiddleware(authEnabled, token))
			priv.Put("/sections/{section}", h.UpdateSection)
			priv.Post("/publish", h.PublishSite)
		})
	})

	return r
}
