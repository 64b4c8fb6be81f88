package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matheusvll/casaflor-api/internal/entity"
	"github.com/matheusvll/casaflor-api/internal/infra/http/middleware"
	"github.com/matheusvll/casaflor-api/internal/usecase"
)

type LeadHandler struct {
	Leads     entity.LeadRepositoryInterface
	ConvertUC *usecase.ConvertLeadUseCase
}

func NewLeadHandler(leads entity.LeadRepositoryInterface, convertUC *usecase.ConvertLeadUseCase) *LeadHandler {
	return &LeadHandler{
		Leads:     leads,
		ConvertUC: convertUC,
	}
}

func (h *LeadHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Patch("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	r.Post("/{id}/convert", h.HandleConvert)
	return r
}

type ListLeadsResponse struct {
	Leads []entity.Lead `json:"leads"`
	// Counts só tem os estágios com pelo menos um lead: badge ausente e
	// badge zero são coisas diferentes para o front.
	Counts map[entity.LeadStatus]int `json:"counts"`
}

// HandleList (GET /api/leads?status=new). Sem status (ou "all") traz tudo.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := r.URL.Query().Get("status")
	if status == "" {
		status = entity.LeadStatusAll
	}

	leads, err := h.Leads.List(ctx, status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "falha ao buscar leads: "+err.Error(), "")
		return
	}

	// Os badges contam o funil inteiro, não só o estágio filtrado.
	all := leads
	if status != entity.LeadStatusAll {
		all, err = h.Leads.List(ctx, entity.LeadStatusAll)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "falha ao contar o funil: "+err.Error(), "")
			return
		}
	}

	if leads == nil {
		leads = []entity.Lead{}
	}

	writeJSON(w, http.StatusOK, ListLeadsResponse{
		Leads:  leads,
		Counts: usecase.StageCounts(all),
	})
}

type CreateLeadRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Status  string `json:"status,omitempty"`
	Source  string `json:"source,omitempty"`
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido", "")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", "")
		return
	}
	if req.Status == "" {
		req.Status = string(entity.LeadStatusNew)
	}

	created, err := h.Leads.Create(r.Context(), &entity.Lead{
		Name:    req.Name,
		Contact: req.Contact,
		Status:  req.Status,
		Source:  req.Source,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "falha ao criar lead: "+err.Error(), "")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido", "")
		return
	}
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "nenhum campo para atualizar", "")
		return
	}

	updated, err := h.Leads.Update(r.Context(), id, fields)
	if err != nil {
		writeStoreError(w, "leads", err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Leads.Delete(r.Context(), id); err != nil {
		writeStoreError(w, "leads", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleConvert (POST /api/leads/{id}/convert) dispara as duas escritas da
// conversão. Uma conversão pela metade volta como 409 com o código
// PARTIAL_CONVERSION para o front mostrar a inconsistência.
func (h *LeadHandler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	var input usecase.ConvertLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido", "")
		return
	}
	input.LeadID = chi.URLParam(r, "id")

	event, err := h.ConvertUC.Execute(r.Context(), input)
	if err != nil {
		var de *usecase.DomainError
		switch {
		case usecase.IsPartialConversion(err):
			middleware.RecordPartialConversion()
			writeError(w, http.StatusConflict, err.Error(), usecase.CodePartialConversion)
		case asDomainError(err, &de) && de.Code == usecase.CodeValidation:
			writeError(w, http.StatusBadRequest, err.Error(), usecase.CodeValidation)
		case asDomainError(err, &de) && de.Code == usecase.CodeLeadNotFound:
			writeError(w, http.StatusNotFound, err.Error(), usecase.CodeLeadNotFound)
		default:
			writeError(w, http.StatusInternalServerError, err.Error(), "")
		}
		return
	}

	middleware.RecordLeadConversion()
	writeJSON(w, http.StatusCreated, event)
}
