package web

import (
	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/second-draft/internal/draft"
	"github.com/ziadkadry99/second-draft/internal/render"
)

// Web serves the email form and the API behind it.
type Web struct {
	service  *draft.Service
	md       *render.Markdown
	defaults draft.Request
	models   []string
}

// New creates the form handlers. defaults seeds any field a submission
// leaves out; models is the list offered in the model picker.
func New(service *draft.Service, md *render.Markdown, defaults draft.Request, models []string) *Web {
	return &Web{
		service:  service,
		md:       md,
		defaults: defaults,
		models:   models,
	}
}

// RegisterRoutes mounts all form routes onto the given router.
func (h *Web) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ServeIndex)
	r.Get("/api/options", h.handleOptions)
	r.Post("/api/prompt", h.handlePrompt)
	r.Post("/api/rewrite", h.handleRewrite)
	r.Get("/ws/rewrite", h.handleWebSocket)
}
