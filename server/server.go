package server

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

// notFoundBody is served for any path that does not resolve to a file
const notFoundBody = "<h1>404: File Not Found</h1>"

// contentTypes maps file extensions to MIME types
var contentTypes = map[string]string{
	".html": "text/html",
	".js":   "text/javascript",
	".css":  "text/css",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpg",
	".gif":  "image/gif",
	".wasm": "application/wasm",
}

// ContentType returns the MIME type for a file name
func ContentType(name string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// New returns the HTTP handler serving the public directory
func New(cfg Config, logger zerolog.Logger) http.Handler {
	logger = logger.With().Str("component", "server").Logger()
	mux := http.NewServeMux()
	mux.Handle("/", &staticHandler{cfg: cfg, logger: logger})
	return requestLogger(mux, logger)
}

type staticHandler struct {
	cfg    Config
	logger zerolog.Logger
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	if name == "/" {
		name = "/" + h.cfg.IndexFile
	}

	root, err := filepath.Abs(h.cfg.PublicDir)
	if err != nil {
		h.serverError(w, err)
		return
	}
	full := filepath.Join(root, filepath.FromSlash(name))
	if rel, err := filepath.Rel(root, full); err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		notFound(w)
		return
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			notFound(w)
			return
		}
		h.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", ContentType(full))
	if h.cfg.NoCache {
		w.Header().Set("Cache-Control", "no-cache")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(notFoundBody))
}

func (h *staticHandler) serverError(w http.ResponseWriter, err error) {
	code := errorCode(err)
	h.logger.Error().Err(err).Str("code", code).Msg("read failed")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte("Server Error: " + code))
}

// errorCode names the OS error behind a failed read
func errorCode(err error) string {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		if name := errnoName(errno); name != "" {
			return name
		}
		return fmt.Sprintf("E%d", int(errno))
	}
	if errors.Is(err, fs.ErrPermission) {
		return "EACCES"
	}
	return "EIO"
}

// statusRecorder captures the status and size of a response
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// requestLogger logs one line per request
func requestLogger(next http.Handler, logger zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}

		ev := logger.Info()
		if rec.status >= http.StatusInternalServerError {
			ev = logger.Error()
		}
		ev.Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Int("bytes", rec.bytes).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
