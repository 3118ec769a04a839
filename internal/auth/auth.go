package auth

import (
	"context"
	"errors"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/Nezeon/legal-doc-backend/internal/model"
)

// ErrNotConfigured is returned by the disabled verifier when no identity
// provider is available (local fallback mode without Firebase credentials).
var ErrNotConfigured = errors.New("identity provider not configured")

// Verifier checks a bearer ID token and produces the caller's principal.
type Verifier interface {
	Verify(ctx context.Context, token string) (*model.Principal, error)
}

// firebaseVerifier verifies Firebase ID tokens against the Firebase Auth
// service (signature, expiry, issuer).
type firebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebase creates a Verifier backed by a Firebase Auth client.
func NewFirebase(client *fbauth.Client) Verifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) Verify(ctx context.Context, token string) (*model.Principal, error) {
	tok, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return &model.Principal{
		ID:            tok.UID,
		Email:         stringClaim(tok, "email"),
		EmailVerified: boolClaim(tok, "email_verified"),
		Name:          stringClaim(tok, "name"),
		Picture:       stringClaim(tok, "picture"),
	}, nil
}

// disabledVerifier rejects every token. It is injected when the credential
// resolver finds no remote backend, so protected routes answer 401 instead
// of panicking on a nil client.
type disabledVerifier struct{}

// NewDisabled creates a Verifier that fails every verification with
// ErrNotConfigured.
func NewDisabled() Verifier {
	return disabledVerifier{}
}

func (disabledVerifier) Verify(ctx context.Context, token string) (*model.Principal, error) {
	return nil, ErrNotConfigured
}

func stringClaim(tok *fbauth.Token, key string) string {
	if v, ok := tok.Claims[key].(string); ok {
		return v
	}
	return ""
}

func boolClaim(tok *fbauth.Token, key string) bool {
	if v, ok := tok.Claims[key].(bool); ok {
		return v
	}
	return false
}
