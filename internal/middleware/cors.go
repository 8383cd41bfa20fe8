package middleware

import (
	"strings"

	"metrodir-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CORSConfig holds the origin policy: any origin whose host ends with
// AllowedSuffix is trusted, plus localhost for local frontend work.
type CORSConfig struct {
	AllowedSuffix string
}

// CORS returns a handler that reflects trusted origins with credentials
// enabled and rejects everything else.
func CORS(cfg CORSConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		// Same-origin requests and curl-style tools send no Origin.
		if origin == "" {
			return c.Next()
		}
		if !originAllowed(origin, cfg.AllowedSuffix) {
			return response.Error(c, "Not allowed by CORS", fiber.StatusForbidden, map[string]interface{}{})
		}
		c.Set("Access-Control-Allow-Origin", origin)
		c.Set("Access-Control-Allow-Credentials", "true")
		c.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}

func originAllowed(origin, suffix string) bool {
	lower := strings.ToLower(origin)
	if strings.HasPrefix(lower, "http://localhost:") || strings.HasPrefix(lower, "http://127.0.0.1:") {
		return true
	}
	return suffix != "" && strings.HasSuffix(lower, strings.ToLower(suffix))
}
