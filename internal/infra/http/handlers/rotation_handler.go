package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matheusvll/casaflor-api/internal/entity"
	"github.com/matheusvll/casaflor-api/internal/rotator"
)

// RotationHandler expõe o rotator de depoimentos para o widget do site
// público. Falha de conteúdo aqui nunca vira erro HTTP: o rotator já
// degradou para o fallback por conta própria.
type RotationHandler struct {
	Rotator *rotator.Rotator
}

func NewRotationHandler(rot *rotator.Rotator) *RotationHandler {
	return &RotationHandler{Rotator: rot}
}

func (h *RotationHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleCurrent)
	r.Post("/next", h.HandleNext)
	r.Post("/prev", h.HandlePrev)
	return r
}

type RotationResponse struct {
	Testimonial entity.Testimonial `json:"testimonial"`
	Index       int                `json:"index"`
	Total       int                `json:"total"`
}

func (h *RotationHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	h.writeCurrent(w)
}

func (h *RotationHandler) HandleNext(w http.ResponseWriter, r *http.Request) {
	h.Rotator.Next()
	h.writeCurrent(w)
}

func (h *RotationHandler) HandlePrev(w http.ResponseWriter, r *http.Request) {
	h.Rotator.Prev()
	h.writeCurrent(w)
}

func (h *RotationHandler) writeCurrent(w http.ResponseWriter) {
	item, index, total, ok := h.Rotator.Current()
	if !ok {
		// Sequência vazia: nada para renderizar.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, RotationResponse{
		Testimonial: item,
		Index:       index,
		Total:       total,
	})
}
