package config

import (
	"os"
)

// FirebaseConfig holds the remote-backend credential settings. Either a
// service account file path or the three discrete values may be supplied;
// absence of both selects the local fallback store.
type FirebaseConfig struct {
	CredentialsFile string
	ProjectID       string
	ClientEmail     string
	// PrivateKey may arrive with literal "\n" sequences and wrapping
	// quotes (typical when injected through deployment tooling); it is
	// normalized before use.
	PrivateKey string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not
// hardcoded.
type AppConfig struct {
	Port           string
	ContentDir     string
	LocalStorePath string
	Firebase       FirebaseConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:           getEnv("PORT", "8080"),
		ContentDir:     getEnv("CONTENT_DIR", "uploads"),
		LocalStorePath: getEnv("LOCAL_STORE_FILE", "local-documents.json"),
		Firebase: FirebaseConfig{
			CredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", ""),
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
			ClientEmail:     getEnv("FIREBASE_CLIENT_EMAIL", ""),
			PrivateKey:      getEnv("FIREBASE_PRIVATE_KEY", ""),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
