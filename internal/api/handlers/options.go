package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/rohits-web03/voxdesk/internal/utils"
)

// listHandler adapts a catalog list call into an endpoint that always
// answers with a JSON array.
func listHandler[T any](what string, list func(context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r.Context())
		if err != nil {
			log.Printf("list %s: %v", what, err)
			utils.Fail(w, http.StatusInternalServerError, "Failed to fetch "+what)
			return
		}
		if items == nil {
			items = []T{}
		}
		utils.WriteJSON(w, http.StatusOK, items)
	}
}

// GET /api/v1/languages
// ListLanguages godoc
// @Summary List languages
// @Tags Options
// @Produce json
// @Success 200 {array} models.Language
// @Router /api/v1/languages [get]
func (h *Handler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	listHandler("languages", h.catalog.ListLanguages)(w, r)
}

// GET /api/v1/voices
// ListVoices godoc
// @Summary List voices
// @Tags Options
// @Produce json
// @Success 200 {array} models.Voice
// @Router /api/v1/voices [get]
func (h *Handler) ListVoices(w http.ResponseWriter, r *http.Request) {
	listHandler("voices", h.catalog.ListVoices)(w, r)
}

// GET /api/v1/prompts
// ListPrompts godoc
// @Summary List prompts
// @Tags Options
// @Produce json
// @Success 200 {array} models.Prompt
// @Router /api/v1/prompts [get]
func (h *Handler) ListPrompts(w http.ResponseWriter, r *http.Request) {
	listHandler("prompts", h.catalog.ListPrompts)(w, r)
}

// GET /api/v1/models
// ListModels godoc
// @Summary List models
// @Tags Options
// @Produce json
// @Success 200 {array} models.Model
// @Router /api/v1/models [get]
func (h *Handler) ListModels(w http.ResponseWriter, r *http.Request) {
	listHandler("models", h.catalog.ListModels)(w, r)
}
