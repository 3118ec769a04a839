package middleware

import (
	"encoding/json"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Nezeon/legal-doc-backend/internal/model"
)

// Logger is a middleware that logs each HTTP request as one JSON line.
// Fields: request_id, method, path, status, latency (milliseconds) and,
// for authenticated requests, the principal id as user_id.
func Logger() fiber.Handler {
	enc := json.NewEncoder(os.Stdout)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// Collect fields after the handler ran to capture the final
		// status and any principal the auth middleware attached.
		rid, _ := c.Locals(RequestIDLocalKey).(string)
		entry := map[string]any{
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"latency":    float64(time.Since(start).Milliseconds()),
		}
		if p, ok := c.Locals(PrincipalLocalKey).(*model.Principal); ok && p != nil {
			entry["user_id"] = p.ID
		}
		_ = enc.Encode(entry)

		return err
	}
}
