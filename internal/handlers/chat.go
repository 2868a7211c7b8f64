package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

type ChatHandler struct{}

type ChatRequest struct {
	Message string `json:"message"`
}

type TranscribeRequest struct {
	Transcript string `json:"transcript"`
}

// Chat returns a canned echo. Placeholder until an external language-model
// service is wired in.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		respondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"response": "(LLM not yet connected) You said: " + message,
	})
}

// Transcribe acknowledges the transcript without storing it. Stub pending
// real persistence.
func (h *ChatHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var req TranscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Transcript is required")
		return
	}

	transcript := strings.TrimSpace(req.Transcript)
	if transcript == "" {
		respondError(w, http.StatusBadRequest, "Transcript is required")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ok":         true,
		"transcript": transcript,
	})
}
