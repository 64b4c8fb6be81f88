package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/matheusvll/casaflor-api/internal/infra/database"
	"github.com/matheusvll/casaflor-api/internal/infra/http/middleware"
	"github.com/matheusvll/casaflor-api/internal/usecase"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Falha de mutação é sempre visível para o usuário (nada de só logar).
func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}

func writeStoreError(w http.ResponseWriter, table string, err error) {
	middleware.RecordStoreError(table)

	var se *database.StoreError
	if errors.As(err, &se) && se.Code == database.CodeNotFound {
		writeError(w, http.StatusNotFound, se.Message, se.Code)
		return
	}
	if errors.As(err, &se) {
		writeError(w, http.StatusInternalServerError, se.Message, se.Code)
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error(), "")
}

func asDomainError(err error, target **usecase.DomainError) bool {
	return errors.As(err, target)
}
