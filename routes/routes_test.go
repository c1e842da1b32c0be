package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vehicle-intake/handlers"
)

func TestRouterMethodNotAllowed(t *testing.T) {
	router := RegisterRoutes(handlers.NewUploadHandler(nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/upload", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Method not allowed" {
		t.Errorf("message = %q, want %q", body["message"], "Method not allowed")
	}
}

func TestRouterHealth(t *testing.T) {
	router := RegisterRoutes(handlers.NewUploadHandler(nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
