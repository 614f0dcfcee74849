package handlers_test

import (
	"ChatVault/internal/handlers"
	"ChatVault/internal/model"
	"ChatVault/internal/service"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Scenarios(t *testing.T) {
	s := newTestServer(t, service.Options{})
	ctx := context.Background()

	rr := s.do(t, http.MethodPost, "/api/resolve", map[string]string{"text": "show all"})
	require.Equal(t, http.StatusOK, rr.Code)
	res := decode[handlers.ResolveResponse](t, rr)
	assert.Equal(t, "empty_vault", res.Intent)
	assert.Equal(t, "Your vault is empty. Add a document first!", res.Reply)
	assert.Empty(t, res.Matches)

	for _, d := range []model.Document{
		{Name: "ID Card", Value: "123"},
		{Name: "Credit Card", Value: "4111", File: &model.Attachment{Name: "c.png", Type: "image/png", Data: "data:image/png;base64,AA=="}},
	} {
		_, err := s.vault.Add(ctx, d)
		require.NoError(t, err)
	}

	rr = s.do(t, http.MethodPost, "/api/resolve", map[string]string{"text": "show my card"})
	require.Equal(t, http.StatusOK, rr.Code)
	res = decode[handlers.ResolveResponse](t, rr)
	assert.Equal(t, "targeted", res.Intent)
	require.Len(t, res.Matches, 2)
	assert.Equal(t, "1. ID Card: 123", res.Matches[0].Text)
	assert.Equal(t, "other", res.Matches[0].Kind)
	assert.Equal(t, 2, res.Matches[1].Position)
	assert.Equal(t, "image", res.Matches[1].Kind)

	rr = s.do(t, http.MethodPost, "/api/resolve", map[string]string{"text": "hello"})
	res = decode[handlers.ResolveResponse](t, rr)
	assert.Equal(t, "greeting", res.Intent)

	rr = s.do(t, http.MethodPost, "/api/resolve", map[string]string{"text": "weather"})
	res = decode[handlers.ResolveResponse](t, rr)
	assert.Equal(t, "not_found", res.Intent)
	assert.Equal(t, "No record found for that query.", res.Reply)
}

func TestResolve_RejectsBlank(t *testing.T) {
	s := newTestServer(t, service.Options{})

	rr := s.do(t, http.MethodPost, "/api/resolve", map[string]string{"text": "  "})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.do(t, http.MethodPost, "/api/resolve", "nope")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestResolve_Metrics(t *testing.T) {
	s := newTestServer(t, service.Options{})

	s.do(t, http.MethodPost, "/api/resolve", map[string]string{"text": "hi"})
	s.do(t, http.MethodPost, "/api/resolve", map[string]string{"text": "hey"})

	rr := s.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `vault_resolve_total{intent="greeting"} 2`)
	assert.Contains(t, rr.Body.String(), `http_requests_total{method="POST",path="/api/resolve",status="200"} 2`)
}
