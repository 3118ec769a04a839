package auth

import (
	"context"
	"testing"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
)

func TestDisabledVerifierRejectsEverything(t *testing.T) {
	v := NewDisabled()

	p, err := v.Verify(context.Background(), "any-token")

	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClaimHelpers(t *testing.T) {
	tok := &fbauth.Token{
		UID: "user-1",
		Claims: map[string]interface{}{
			"email":          "u@example.com",
			"email_verified": true,
			"name":           "User One",
			"picture":        "https://example.com/p.png",
			"weird":          42,
		},
	}

	assert.Equal(t, "u@example.com", stringClaim(tok, "email"))
	assert.Equal(t, "User One", stringClaim(tok, "name"))
	assert.True(t, boolClaim(tok, "email_verified"))

	// Missing or mistyped claims degrade to zero values.
	assert.Empty(t, stringClaim(tok, "absent"))
	assert.Empty(t, stringClaim(tok, "weird"))
	assert.False(t, boolClaim(tok, "absent"))
}
