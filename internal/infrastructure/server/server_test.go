package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadishiv23/aadios/internal/domain/registry"
	"github.com/aadishiv23/aadios/internal/infrastructure/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Preferences.DBPath = ""
	cfg.RateLimit.Enabled = false
	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })
	return srv
}

func get(t *testing.T, h http.Handler, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestServerHealth(t *testing.T) {
	srv := newTestServer(t, testConfig(t))

	w := get(t, srv.Handler(), "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.EqualValues(t, len(registry.Builtin()), body["apps"])
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
	assert.Equal(t, "0.0.0.0:8000", srv.Addr())
}

func TestServerPrometheusEndpoint(t *testing.T) {
	srv := newTestServer(t, testConfig(t))

	get(t, srv.Handler(), "/apps", nil)
	w := get(t, srv.Handler(), "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "aadios_http_requests_total")
}

func TestServerCompressesResponses(t *testing.T) {
	srv := newTestServer(t, testConfig(t))

	w := get(t, srv.Handler(), "/apps", http.Header{"Accept-Encoding": {"gzip"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	cfg := testConfig(t)
	cfg.Server.Gzip = false
	plain := newTestServer(t, cfg)
	w = get(t, plain.Handler(), "/apps", http.Header{"Accept-Encoding": {"gzip"}})
	assert.Empty(t, w.Header().Get("Content-Encoding"))
}

func TestServerCORS(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.CORSOrigins = []string{"https://aadi.dev"}
	srv := newTestServer(t, cfg)

	w := get(t, srv.Handler(), "/health", http.Header{"Origin": {"https://aadi.dev"}})
	assert.Equal(t, "https://aadi.dev", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServerRejectsUnknownDefaultApp(t *testing.T) {
	cfg := testConfig(t)
	cfg.Desktop.DefaultApp = "solitaire"
	_, err := New(context.Background(), cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "solitaire")
}

func TestServerMergesCatalogDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blog.yaml"), []byte(`
apps:
  - id: blog
    name: Blog
    category: portfolio
    content_kind: about
    default_size:
      width: 500
      height: 400
`), 0o644))

	cfg := testConfig(t)
	cfg.Desktop.CatalogDir = dir
	srv := newTestServer(t, cfg)

	w := get(t, srv.Handler(), "/apps/blog", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServerStreamBypassesCompression(t *testing.T) {
	srv := newTestServer(t, testConfig(t))
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	header := http.Header{"Accept-Encoding": {"gzip"}}
	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/stream", header)
	require.NoError(t, err)
	defer conn.Close()
	resp.Body.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var hello struct {
		Type      string `json:"type"`
		DesktopID string `json:"desktop_id"`
	}
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, "hello", hello.Type)
	assert.True(t, strings.HasPrefix(hello.DesktopID, "desk_"))
}

func TestServerShutdownClosesSessions(t *testing.T) {
	srv := newTestServer(t, testConfig(t))

	req := httptest.NewRequest(http.MethodPost, "/desktops", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 1, srv.sessions.Count())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
	assert.Equal(t, 0, srv.sessions.Count())
}
