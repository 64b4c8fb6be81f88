package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matheusvll/casaflor-api/internal/entity"
	"github.com/matheusvll/casaflor-api/internal/rotator"
)

func offlineRotator() *rotator.Rotator {
	// Loader que nunca responde conteúdo: o rotator fica no fallback
	return rotator.New(func(ctx context.Context) ([]entity.Testimonial, error) {
		return nil, nil
	})
}

func TestRotationCurrentServesFallback(t *testing.T) {
	h := NewRotationHandler(offlineRotator())

	router := h.Routes()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp RotationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Index)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, rotator.Fallback()[0].Name, resp.Testimonial.Name)
}

func TestRotationNextAndPrevNavigate(t *testing.T) {
	h := NewRotationHandler(offlineRotator())
	router := h.Routes()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/next", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RotationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Index)

	// Prev volta para o início; prev de novo dá a volta para o fim
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/prev", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Index)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/prev", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Index)
}
