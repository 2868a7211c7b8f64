package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// SPAHandler serves the built frontend. Paths that map to a real file under
// the dist directory are served directly; everything else falls back to
// index.html so client-side routing can take over.
type SPAHandler struct {
	Dist string
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Clean(strings.TrimPrefix(r.URL.Path, "/"))
	if path != "." && !strings.HasPrefix(path, "..") {
		full := filepath.Join(h.Dist, path)
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			http.ServeFile(w, r, full)
			return
		}
	}
	http.ServeFile(w, r, filepath.Join(h.Dist, "index.html"))
}
