package handlers_test

import (
	"ChatVault/internal/config"
	"ChatVault/internal/handlers"
	"ChatVault/internal/middleware"
	"ChatVault/internal/repo/sqlite"
	"ChatVault/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	h       *handlers.Handler
	vault   *service.Vault
	metrics *middleware.Metrics
}

// newTestServer собирает роутер поверх настоящей SQLite во временном каталоге.
func newTestServer(t *testing.T, opts service.Options) *testServer {
	t.Helper()
	r, err := sqlite.Open(filepath.Join(t.TempDir(), "vault.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	require.NoError(t, r.Migrate(context.Background()))

	logger := zap.NewNop().Sugar()
	vault := service.NewVault(r, logger, opts)
	require.NoError(t, vault.Open(context.Background()))

	metrics, err := middleware.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	cfg := &config.Config{AssetVersion: "2"}
	return &testServer{h: handlers.NewHandler(vault, logger, cfg, metrics), vault: vault, metrics: metrics}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	s.h.Router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

