// Package config loads pipeline configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// FallbackEmail is used for both the sender and recipient addresses when
// neither SENDER_EMAIL nor RECIPIENT_EMAIL is set.
const FallbackEmail = "bills@example.com"

type Config struct {
	Server Server
	Store  Store
	GCS    GCS
	Email  Email
	Model  Model
}

type Server struct {
	Port string
}

// Store identifies the BigQuery destination for bill records.
type Store struct {
	ProjectID string
	Dataset   string
	Table     string
}

type GCS struct {
	Bucket string
}

type Email struct {
	Sender    string
	Recipient string
}

type Model struct {
	Name string
}

// Load reads configuration from a .env file (if present) and the process
// environment. Missing options fall back to documented defaults; no option
// is strictly required at load time so one-shot tools can run with a
// partial environment.
func Load() (*Config, error) {
	// .env file is optional; environment variables alone are fine
	// (Docker / Cloud Run deployments).
	for _, envFile := range []string{".env", "../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	return &Config{
		Server: Server{
			Port: getEnv("PORT", "8080"),
		},
		Store: Store{
			ProjectID: getEnv("GCP_PROJECT_ID", ""),
			Dataset:   getEnv("BQ_DATASET", "billing"),
			Table:     getEnv("BQ_TABLE", "Bills"),
		},
		GCS: GCS{
			Bucket: getEnv("GCS_BUCKET", ""),
		},
		Email: Email{
			Sender:    getEnv("SENDER_EMAIL", FallbackEmail),
			Recipient: getEnv("RECIPIENT_EMAIL", FallbackEmail),
		},
		Model: Model{
			Name: getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
