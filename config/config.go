package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds the environment configuration read at startup.
type Config struct {
	Port            string
	DatabaseDSN     string
	UseGCS          bool
	StorageBucket   string
	StorageURL      string
	CredentialsFile string
	UploadDir       string
}

// Load reads configuration from .env / process environment.
// Missing required values abort startup rather than proceeding
// with clients that cannot work.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseDSN:     os.Getenv("DB_DSN"),
		UseGCS:          os.Getenv("USE_GCS") == "true",
		StorageBucket:   os.Getenv("STORAGE_BUCKET"),
		StorageURL:      os.Getenv("STORAGE_URL"),
		CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
	}

	if cfg.DatabaseDSN == "" {
		logrus.Fatal("DB_DSN is required")
	}
	if cfg.UseGCS {
		if cfg.StorageBucket == "" {
			logrus.Fatal("STORAGE_BUCKET is required when USE_GCS=true")
		}
		if cfg.CredentialsFile == "" {
			logrus.Fatal("GOOGLE_APPLICATION_CREDENTIALS is required when USE_GCS=true")
		}
	}

	return cfg
}

// Connect opens the Postgres connection and runs migrations.
func Connect(cfg *Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrations(db); err != nil {
		logrus.Fatal("Failed to run migrations: ", err)
	}

	return db
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
