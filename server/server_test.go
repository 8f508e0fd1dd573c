package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (http.Handler, string) {
	t.Helper()
	root := t.TempDir()
	public := filepath.Join(root, "public")
	require.NoError(t, os.MkdirAll(filepath.Join(public, "js"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(public, "assets"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(public, "index.html"), []byte("<html>astrophage</html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(public, "wasm_exec.js"), []byte("// js"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(public, "game.wasm"), []byte{0, 'a', 's', 'm'}, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.txt"), []byte("top secret"), 0644))

	cfg := Config{PublicDir: public, IndexFile: "index.html", NoCache: true}
	return New(cfg, zerolog.Nop()), root
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServeIndex(t *testing.T) {
	h, _ := newTestServer(t)
	rec := get(t, h, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "<html>astrophage</html>", rec.Body.String())
}

func TestServeContentTypes(t *testing.T) {
	h, _ := newTestServer(t)

	rec := get(t, h, "/wasm_exec.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/javascript", rec.Header().Get("Content-Type"))

	rec = get(t, h, "/game.wasm")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/wasm", rec.Header().Get("Content-Type"))
}

func TestMissingFileIs404HTML(t *testing.T) {
	h, _ := newTestServer(t)
	rec := get(t, h, "/nonexistent.png")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<h1>404: File Not Found</h1>", rec.Body.String())
}

func TestDirectoryIs500WithCode(t *testing.T) {
	h, _ := newTestServer(t)
	rec := get(t, h, "/assets")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Server Error: EISDIR", rec.Body.String())
}

func TestServesRealIndexPage(t *testing.T) {
	cfg := Config{PublicDir: filepath.Join("..", "public"), IndexFile: "index.html"}
	rec := get(t, New(cfg, zerolog.Nop()), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, `src="wasm_exec.js"`)
	assert.Contains(t, body, `fetch("game.wasm")`)
}

func TestTraversalNeverEscapesRoot(t *testing.T) {
	h, _ := newTestServer(t)

	for _, target := range []string{"/../secret.txt", "/js/../../secret.txt", "/%2e%2e/secret.txt"} {
		rec := get(t, h, target)
		assert.NotEqual(t, http.StatusOK, rec.Code, target)
		assert.False(t, strings.Contains(rec.Body.String(), "top secret"), target)
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"index.html": "text/html",
		"a.JS":       "text/javascript",
		"style.css":  "text/css",
		"data.json":  "application/json",
		"img.png":    "image/png",
		"img.jpg":    "image/jpg",
		"anim.gif":   "image/gif",
		"game.wasm":  "application/wasm",
		"blob.bin":   "application/octet-stream",
		"noext":      "application/octet-stream",
	}
	for name, want := range tests {
		assert.Equal(t, want, ContentType(name), name)
	}
}
