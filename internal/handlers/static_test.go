package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func newTestDist(t *testing.T) string {
	t.Helper()
	dist := t.TempDir()
	if err := os.WriteFile(filepath.Join(dist, "index.html"), []byte("<html>app shell</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dist, "assets"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dist, "assets", "app.js"), []byte("console.log('app')"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dist
}

func TestSPAHandlerServesRealFiles(t *testing.T) {
	handler := &SPAHandler{Dist: newTestDist(t)}

	req := httptest.NewRequest("GET", "/assets/app.js", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}
	if rr.Body.String() != "console.log('app')" {
		t.Errorf("Expected asset bytes, got %q", rr.Body.String())
	}
}

func TestSPAHandlerFallsBackToIndex(t *testing.T) {
	handler := &SPAHandler{Dist: newTestDist(t)}

	// Client-side routes and the root both get the app shell, not a 404.
	for _, path := range []string{"/", "/inbox", "/settings/profile", "/no/such/file.js"} {
		req := httptest.NewRequest("GET", path, nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("path %q: got status %v want %v", path, rr.Code, http.StatusOK)
		}
		if rr.Body.String() != "<html>app shell</html>" {
			t.Errorf("path %q: expected index bytes, got %q", path, rr.Body.String())
		}
	}
}

func TestSPAHandlerDoesNotServeDirectories(t *testing.T) {
	handler := &SPAHandler{Dist: newTestDist(t)}

	req := httptest.NewRequest("GET", "/assets", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Body.String() != "<html>app shell</html>" {
		t.Errorf("Expected index fallback for directory path, got %q", rr.Body.String())
	}
}
