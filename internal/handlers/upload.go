package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gorilla/mux"
)

type UploadHandler struct {
	Dir string
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// secureFilename strips path components and unsafe characters so the result
// is always a plain name inside the upload directory. Can return "" for
// names with nothing salvageable (e.g. "..").
func secureFilename(name string) string {
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		respondError(w, http.StatusBadRequest, "Empty filename")
		return
	}

	filename := secureFilename(header.Filename)
	if filename == "" {
		respondError(w, http.StatusBadRequest, "Empty filename")
		return
	}

	// Overwrites any previous upload of the same name.
	dst, err := os.Create(filepath.Join(h.Dir, filename))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"filename": filename})
}

type InboxResponse struct {
	Username string   `json:"username"`
	Videos   []string `json:"videos"`
}

// Inbox always returns an empty list. Stub pending real persistence.
func (h *UploadHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	respondJSON(w, http.StatusOK, InboxResponse{
		Username: vars["username"],
		Videos:   []string{},
	})
}
