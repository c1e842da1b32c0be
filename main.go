package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"

	"vehicle-intake/config"
	"vehicle-intake/handlers"
	"vehicle-intake/routes"
	"vehicle-intake/storage"
	"vehicle-intake/store"
)

var (
	Version   = "dev"
	BuildTime = ""
)

func main() {

	versionFlag := flag.Bool("version", false, "Print version info and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("Version:   %s\n", Version)
		fmt.Printf("BuildTime: %s\n", BuildTime)
		os.Exit(0)
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	cfg := config.Load()
	db := config.Connect(cfg)

	objects, err := storage.New(context.Background(), cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize object storage: ", err)
	}

	upload := handlers.NewUploadHandler(store.NewGormStore(db), objects)
	handler := routes.RegisterRoutes(upload)
	handlerWithCORS := enableCORS(handler)

	logrus.Info("Server starting at port ", cfg.Port)
	logrus.Fatal(http.ListenAndServe(":"+cfg.Port, handlerWithCORS))
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Required CORS headers
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Requested-With")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		// Handle preflight (OPTIONS)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
