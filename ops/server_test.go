package ops

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"schoolmap/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthz(t *testing.T) {
	server := NewServer(&config.Config{Data: config.DataConfig{BaseDir: t.TempDir()}})

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestReadyzReportsDataFile(t *testing.T) {
	baseDir := t.TempDir()
	cfg := &config.Config{Data: config.DataConfig{BaseDir: baseDir}}
	server := NewServer(cfg)

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data_file":"missing"`)

	path := filepath.Join(baseDir, config.SchoolsDataRelPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("name,lat,lon\n"), 0o644))

	w = httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data_file":"present"`)
}
