package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Nezeon/legal-doc-backend/internal/auth"
	"github.com/Nezeon/legal-doc-backend/internal/model"
)

// PrincipalLocalKey is the key under which the verified principal is
// stored in Fiber's context locals.
const PrincipalLocalKey = "principal"

// RequireAuth verifies the Authorization bearer token and attaches the
// resulting principal to the request context. It is a prerequisite for
// every protected route.
//
// Behavior:
// - Missing or malformed Authorization header: 401 NO_TOKEN.
// - Token present but failing verification: 401 INVALID_TOKEN.
// - Valid token: principal stored under PrincipalLocalKey, next handler runs.
func RequireAuth(verifier auth.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return unauthorized(c, "NO_TOKEN", "missing bearer token")
		}

		principal, err := verifier.Verify(c.UserContext(), token)
		if err != nil {
			return unauthorized(c, "INVALID_TOKEN", "token verification failed")
		}

		c.Locals(PrincipalLocalKey, principal)
		return c.Next()
	}
}

// PrincipalFromCtx returns the principal stored by RequireAuth, or false
// when the request was not authenticated.
func PrincipalFromCtx(c *fiber.Ctx) (model.Principal, bool) {
	if p, ok := c.Locals(PrincipalLocalKey).(*model.Principal); ok && p != nil {
		return *p, true
	}
	return model.Principal{}, false
}

// unauthorized writes the standardized error envelope. The shape matches
// the handler package's writeError; duplicated here to avoid an import
// cycle between middleware and handler.
func unauthorized(c *fiber.Ctx, code, message string) error {
	rid, _ := c.Locals(RequestIDLocalKey).(string)
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"request_id": rid,
		"error":      fiber.Map{"code": code, "message": message},
	})
}
