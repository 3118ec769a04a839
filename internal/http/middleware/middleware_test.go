package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authMocks "github.com/Nezeon/legal-doc-backend/internal/auth/mocks"
	"github.com/Nezeon/legal-doc-backend/internal/model"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		rid := c.Locals(RequestIDLocalKey)
		return c.SendString(rid.(string))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))
	})
}

func TestRequireAuth(t *testing.T) {
	newApp := func(verifier *authMocks.MockVerifier) *fiber.App {
		app := fiber.New()
		app.Get("/protected", RequireAuth(verifier), func(c *fiber.Ctx) error {
			p, ok := PrincipalFromCtx(c)
			if !ok {
				return c.SendStatus(fiber.StatusInternalServerError)
			}
			return c.SendString(p.ID)
		})
		return app
	}

	t.Run("missing header", func(t *testing.T) {
		verifier := new(authMocks.MockVerifier)
		app := newApp(verifier)

		resp, _ := app.Test(httptest.NewRequest("GET", "/protected", nil))

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "NO_TOKEN", body["error"].(map[string]any)["code"])
		verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	})

	t.Run("malformed header", func(t *testing.T) {
		verifier := new(authMocks.MockVerifier)
		app := newApp(verifier)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Basic abc123")
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "NO_TOKEN", body["error"].(map[string]any)["code"])
	})

	t.Run("invalid token", func(t *testing.T) {
		verifier := new(authMocks.MockVerifier)
		verifier.On("Verify", mock.Anything, "expired-token").
			Return(nil, errors.New("token expired"))
		app := newApp(verifier)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer expired-token")
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_TOKEN", body["error"].(map[string]any)["code"])
		verifier.AssertExpectations(t)
	})

	t.Run("valid token attaches principal", func(t *testing.T) {
		verifier := new(authMocks.MockVerifier)
		verifier.On("Verify", mock.Anything, "good-token").
			Return(&model.Principal{ID: "user-1", Email: "u@example.com"}, nil)
		app := newApp(verifier)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer good-token")
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, "user-1", buf.String())
		verifier.AssertExpectations(t)
	})
}
