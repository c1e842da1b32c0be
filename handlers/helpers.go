package handlers

import (
	"encoding/json"
	"net/http"
)

type uploadResponse struct {
	Success      bool   `json:"success"`
	SubmissionID string `json:"submissionId,omitempty"`
	Message      string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, uploadResponse{Success: false, Message: msg})
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
