package printer

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams(t *testing.T) {
	p := Params(Options{Landscape: true, Background: true})
	assert.True(t, p.Landscape)
	assert.True(t, p.PrintBackground)
	assert.InDelta(t, paperWidth, p.PaperWidth, 0.001)
	assert.InDelta(t, paperHeight, p.PaperHeight, 0.001)
}

func TestPrintNeedsURL(t *testing.T) {
	_, err := Print(context.Background(), "", DefaultOptions)
	assert.ErrorIs(t, err, ErrNoURL)
}

func findChrome(t *testing.T) string {
	t.Helper()
	for _, name := range []string{"headless-shell", "chromium", "chromium-browser", "google-chrome", "google-chrome-stable"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	t.Skip("no chrome binary available")
	return ""
}

func TestPrintToFile(t *testing.T) {
	chrome := findChrome(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<!DOCTYPE html><html><body><h1>行程</h1></body></html>`))
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "trip.pdf")
	opts := DefaultOptions
	opts.ExecPath = chrome
	require.NoError(t, PrintToFile(context.Background(), srv.URL, out, opts))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
