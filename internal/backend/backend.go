package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	fs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/Nezeon/legal-doc-backend/internal/config"
)

// Backend is the process-wide handle to the remote collaborators: the
// Firestore metadata store and the Firebase Auth token verifier. It is
// resolved once at startup and never reconfigured at runtime.
type Backend struct {
	ProjectID string
	Firestore *fs.Client
	Auth      *auth.Client
}

// Close releases the Firestore client's connections.
func (b *Backend) Close() error {
	return b.Firestore.Close()
}

// Resolve attempts to construct the remote backend from configured
// credentials: first a service account JSON file, then a bundle assembled
// from the three discrete values. A non-nil error means "no remote backend
// available" - the caller logs it and falls back to the local store; it is
// never fatal.
func Resolve(ctx context.Context, cfg config.FirebaseConfig) (*Backend, error) {
	creds, projectID, err := credentialsJSON(cfg)
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID},
		option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	store, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firestore client: %w", err)
	}

	verifier, err := app.Auth(ctx)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("init auth client: %w", err)
	}

	return &Backend{ProjectID: projectID, Firestore: store, Auth: verifier}, nil
}

// serviceAccount is the subset of the Google service account JSON format
// needed to assemble a credential bundle from discrete values.
type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
}

func credentialsJSON(cfg config.FirebaseConfig) ([]byte, string, error) {
	if cfg.CredentialsFile != "" {
		b, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, "", fmt.Errorf("read credentials file: %w", err)
		}
		var sa serviceAccount
		if err := json.Unmarshal(b, &sa); err != nil {
			return nil, "", fmt.Errorf("parse credentials file: %w", err)
		}
		if sa.ProjectID == "" {
			return nil, "", fmt.Errorf("credentials file has no project_id")
		}
		return b, sa.ProjectID, nil
	}

	if cfg.ProjectID == "" || cfg.ClientEmail == "" || cfg.PrivateKey == "" {
		return nil, "", fmt.Errorf("no firebase credentials configured")
	}

	sa := serviceAccount{
		Type:        "service_account",
		ProjectID:   cfg.ProjectID,
		ClientEmail: cfg.ClientEmail,
		PrivateKey:  normalizePrivateKey(cfg.PrivateKey),
		TokenURI:    "https://oauth2.googleapis.com/token",
	}
	b, err := json.Marshal(sa)
	if err != nil {
		return nil, "", fmt.Errorf("assemble credentials: %w", err)
	}
	return b, sa.ProjectID, nil
}

// normalizePrivateKey strips optional wrapping quotes and unescapes the
// literal "\n" sequences that environment injection leaves in PEM
// material.
func normalizePrivateKey(key string) string {
	key = strings.TrimSpace(key)
	if len(key) >= 2 && key[0] == '"' && key[len(key)-1] == '"' {
		key = key[1 : len(key)-1]
	}
	return strings.ReplaceAll(key, `\n`, "\n")
}
