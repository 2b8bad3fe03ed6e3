package serverhttp

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"component-linker/internal/config"
	"component-linker/internal/linkage/candidates"
	"component-linker/internal/metrics"
	"component-linker/internal/middleware"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Config{AllowOrigins: []string{"*"}, MaxUploadMB: 1}
	srv := httptest.NewServer(NewRouter(cfg, zerolog.Nop(), metrics.New(), candidates.Default()))
	t.Cleanup(srv.Close)
	return srv
}

func TestRouter_Health(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
	assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRouter_MetricsAfterRequest(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `http_request_duration_seconds_count{method="GET",status="200"}`)
}

func TestRouter_LinkageRejectsGet(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/linkage")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
