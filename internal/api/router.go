package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(h *Handler, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Mock AI assistance.
	r.Post("/ai/generate", h.Generate)
	r.Post("/ai/generate/stream", h.GenerateStream)
	r.Post("/ai/suggest-fields", h.SuggestFields)
	r.Post("/ai/rewrite-block", h.RewriteBlock)

	// Workflow preset catalog (read-only).
	r.Get("/workflows", h.ListWorkflows)

	// Template registry CRUD.
	r.Get("/templates", h.ListTemplates)
	r.Post("/templates", h.CreateTemplate)
	r.Get("/templates/{id}", h.GetTemplate)
	r.Put("/templates/{id}", h.UpdateTemplate)
	r.Delete("/templates/{id}", h.DeleteTemplate)

	// Content dictionary.
	r.Get("/content", h.GetContent)
	r.Post("/content", h.UpdateContent)

	// SSE endpoint (protected by the same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
