package handlers_test

import (
	"ChatVault/internal/model"
	"ChatVault/internal/service"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocuments_CreateListGet(t *testing.T) {
	s := newTestServer(t, service.Options{})

	rr := s.do(t, http.MethodPost, "/api/documents", map[string]any{
		"name": "Passport", "value": "AB123", "info": "expires 2030",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decode[model.Document](t, rr)
	assert.Positive(t, created.ID)
	assert.Nil(t, created.File)

	rr = s.do(t, http.MethodGet, "/api/documents", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[[]model.Document](t, rr)
	require.Len(t, list, 1)
	assert.Equal(t, "Passport", list[0].Name)

	rr = s.do(t, http.MethodGet, fmt.Sprintf("/api/documents/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "AB123", decode[model.Document](t, rr).Value)

	rr = s.do(t, http.MethodGet, "/api/documents/999", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = s.do(t, http.MethodGet, "/api/documents/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDocuments_CreateValidation(t *testing.T) {
	s := newTestServer(t, service.Options{RequireValue: true})

	rr := s.do(t, http.MethodPost, "/api/documents", map[string]any{"name": "", "value": "x"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.do(t, http.MethodPost, "/api/documents", map[string]any{"name": "n"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.do(t, http.MethodPost, "/api/documents", "{broken")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	assert.Empty(t, s.vault.List())
}

func TestDocuments_UpdateKeepsFile(t *testing.T) {
	s := newTestServer(t, service.Options{})
	file := map[string]any{"name": "a.pdf", "type": "application/pdf", "data": "data:application/pdf;base64,JVBERg=="}

	rr := s.do(t, http.MethodPost, "/api/documents", map[string]any{"name": "Insurance", "file": file})
	require.Equal(t, http.StatusCreated, rr.Code)
	id := decode[model.Document](t, rr).ID

	rr = s.do(t, http.MethodPut, fmt.Sprintf("/api/documents/%d", id), map[string]any{"name": "X"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	got := decode[model.Document](t, rr)
	assert.Equal(t, "X", got.Name)
	require.NotNil(t, got.File)
	assert.Equal(t, "a.pdf", got.File.Name)

	rr = s.do(t, http.MethodPut, fmt.Sprintf("/api/documents/%d", id), map[string]any{"removeFile": true})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, decode[model.Document](t, rr).File)

	rr = s.do(t, http.MethodPut, "/api/documents/999", map[string]any{"name": "ghost"})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = s.do(t, http.MethodPut, fmt.Sprintf("/api/documents/%d", id), map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDocuments_DeleteAndClear(t *testing.T) {
	s := newTestServer(t, service.Options{})

	for _, n := range []string{"A", "B"} {
		rr := s.do(t, http.MethodPost, "/api/documents", map[string]any{"name": n})
		require.Equal(t, http.StatusCreated, rr.Code)
	}
	id := s.vault.List()[0].ID

	rr := s.do(t, http.MethodDelete, fmt.Sprintf("/api/documents/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = s.do(t, http.MethodDelete, fmt.Sprintf("/api/documents/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Len(t, s.vault.List(), 1)

	rr = s.do(t, http.MethodDelete, "/api/documents", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, s.vault.List())
}

func TestDocuments_Thumbnail(t *testing.T) {
	s := newTestServer(t, service.Options{})

	rr := s.do(t, http.MethodPost, "/api/documents", map[string]any{"name": "Note"})
	require.Equal(t, http.StatusCreated, rr.Code)
	id := decode[model.Document](t, rr).ID

	rr = s.do(t, http.MethodPost, fmt.Sprintf("/api/documents/%d/thumbnail", id), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = s.do(t, http.MethodPost, "/api/documents/999/thumbnail", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
