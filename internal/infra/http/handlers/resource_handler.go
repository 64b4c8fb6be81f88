package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matheusvll/casaflor-api/internal/infra/database"
)

// ResourceHandler é o CRUD genérico que as telas do dashboard usam para
// qualquer tabela sem lógica de domínio própria (eventos, caixa,
// depoimentos, galeria, seções do site). T é o shape esperado das linhas; a
// mecânica toda mora no Store.
type ResourceHandler[T any] struct {
	Store        *database.Store
	Table        string
	DefaultOrder string

	// DefaultAscending é a direção usada quando o caller não manda ?dir=.
	DefaultAscending bool
}

func NewResourceHandler[T any](store *database.Store, table, defaultOrder string, defaultAscending bool) *ResourceHandler[T] {
	return &ResourceHandler[T]{
		Store:            store,
		Table:            table,
		DefaultOrder:     defaultOrder,
		DefaultAscending: defaultAscending,
	}
}

func (h *ResourceHandler[T]) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Patch("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}

// HandleList (GET /?order=date&dir=desc&filter=status&value=pending). O
// filtro é um único predicado de igualdade; pedir dir=desc em order_index é
// silenciosamente normalizado para ascendente pelo Store.
func (h *ResourceHandler[T]) HandleList(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q := database.Query{
		Table:     h.Table,
		OrderBy:   h.DefaultOrder,
		Ascending: h.DefaultAscending,
	}
	if order := params.Get("order"); order != "" {
		q.OrderBy = order
	}
	switch params.Get("dir") {
	case "asc":
		q.Ascending = true
	case "desc":
		q.Ascending = false
	}
	if column := params.Get("filter"); column != "" {
		q.Filter = &database.Eq{Column: column, Value: params.Get("value")}
	}

	items, err := database.Fetch[T](r.Context(), h.Store, q)
	if err != nil {
		writeStoreError(w, h.Table, err)
		return
	}
	if items == nil {
		items = []T{}
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *ResourceHandler[T]) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var item T
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido", "")
		return
	}

	created, err := database.Add(r.Context(), h.Store, h.Table, item)
	if err != nil {
		writeStoreError(w, h.Table, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *ResourceHandler[T]) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	updated, err := database.Update[T](r.Context(), h.Store, h.Table, id, fields)
	if err != nil {
		writeStoreError(w, h.Table, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *ResourceHandler[T]) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := database.Remove(r.Context(), h.Store, h.Table, id); err != nil {
		writeStoreError(w, h.Table, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
