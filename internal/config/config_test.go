package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origPort := os.Getenv("PORT")
	defer os.Setenv("PORT", origPort)

	os.Setenv("PORT", "9090")
	os.Setenv("CONTENT_DIR", "/tmp/content")
	os.Setenv("FIREBASE_PROJECT_ID", "test-project")
	defer os.Unsetenv("CONTENT_DIR")
	defer os.Unsetenv("FIREBASE_PROJECT_ID")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/content", cfg.ContentDir)
	assert.Equal(t, "test-project", cfg.Firebase.ProjectID)
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("LOCAL_STORE_FILE")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "local-documents.json", cfg.LocalStorePath)
	assert.Empty(t, cfg.Firebase.CredentialsFile)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}
