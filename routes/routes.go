package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"vehicle-intake/handlers"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(upload *handlers.UploadHandler) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/upload", upload.Upload).Methods(http.MethodPost)
	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"message": "Method not allowed"})
	})

	return recoverJSON(r)
}

// recoverJSON converts an escaped panic into the generic failure response
// instead of the default empty 500.
func recoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logrus.Error("unexpected error: ", rec)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"success": false,
					"message": "Upload failed. Please try again.",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
