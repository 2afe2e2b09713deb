package cmd

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outputFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "day", "1"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>home</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day", "1", "index.html"), []byte("<h1>day 1</h1>"), 0o644))
	return dir
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRouterServesRoot(t *testing.T) {
	h := newRouter(outputFixture(t), "/")

	rec := get(t, h, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "home")
	assert.Contains(t, rec.Header().Get("Cache-Control"), "no-cache")

	rec = get(t, h, "/day/1/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "day 1")

	assert.Equal(t, http.StatusNotFound, get(t, h, "/images/").Code)
}

func TestRouterServesUnderBaseURL(t *testing.T) {
	h := newRouter(outputFixture(t), "/trip")

	rec := get(t, h, "/trip/day/1/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "day 1")

	rec = get(t, h, "/trip")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/trip/", rec.Header().Get("Location"))
}

func TestRouterHealthz(t *testing.T) {
	rec := get(t, newRouter(t.TempDir(), "/"), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestNormalizeBase(t *testing.T) {
	assert.Equal(t, "/", normalizeBase(""))
	assert.Equal(t, "/", normalizeBase("/"))
	assert.Equal(t, "/trip/", normalizeBase("trip"))
	assert.Equal(t, "/trip/", normalizeBase("/trip/"))
}

func TestRelevantIgnoresOutput(t *testing.T) {
	old := appConfig.OutputDir
	appConfig.OutputDir = "public"
	defer func() { appConfig.OutputDir = old }()

	assert.True(t, relevant(fsnotify.Event{Name: "data.json", Op: fsnotify.Write}))
	assert.True(t, relevant(fsnotify.Event{Name: filepath.Join("notes", "rain.md"), Op: fsnotify.Create}))
	assert.False(t, relevant(fsnotify.Event{Name: "data.json", Op: fsnotify.Chmod}))
	assert.False(t, relevant(fsnotify.Event{Name: filepath.Join("public", "index.html"), Op: fsnotify.Write}))
	assert.False(t, relevant(fsnotify.Event{Name: "public", Op: fsnotify.Create}))
}
