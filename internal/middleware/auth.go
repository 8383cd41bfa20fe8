package middleware

import (
	"strings"

	"metrodir-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const moderatorLocal = "moderator"

// APIKeyModerator is recorded as the reviewer when an admin authenticates
// with the service API key rather than a personal session.
const APIKeyModerator = "api-key"

// RequireAdmin guards the moderation and listing-management routes. A request
// is authorized by a session user with the admin role, or by a Bearer key
// matching the configured bcrypt hash.
func RequireAdmin(apiKeyHash string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if u := GetSessionUser(c); u != nil && u.Role == "admin" {
			moderator := u.Email
			if moderator == "" {
				moderator = u.UserID
			}
			c.Locals(moderatorLocal, moderator)
			return c.Next()
		}

		if key, ok := bearerToken(c); ok && apiKeyHash != "" {
			if bcrypt.CompareHashAndPassword([]byte(apiKeyHash), []byte(key)) == nil {
				c.Locals(moderatorLocal, APIKeyModerator)
				return c.Next()
			}
		}

		return response.Unauthorized(c, "Unauthorized")
	}
}

// ModeratorID returns the identity of the authenticated admin, or "" when
// the request never passed RequireAdmin.
func ModeratorID(c *fiber.Ctx) string {
	id, _ := c.Locals(moderatorLocal).(string)
	return id
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}
