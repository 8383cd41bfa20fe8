package middleware

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// SessionConfig for the Redis-backed session reader. Sessions are written by
// the identity provider in front of this API; we only need to read them.
type SessionConfig struct {
	CookieName string
	Rdb        *redis.Client
}

const sessionPrefix = "session:"

// SessionUser is the moderator identity stored in the session under "user".
type SessionUser struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

const sessionUserLocal = "session_user"

// Session loads the session user from Redis into Locals. Missing cookies,
// unknown sessions and Redis outages all read as "no session".
func Session(cfg SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.Rdb == nil {
			return c.Next()
		}
		sessionID := c.Cookies(cfg.CookieName)
		// Signed cookies arrive as "s:id.signature"; the id is all we need.
		if strings.HasPrefix(sessionID, "s:") {
			sessionID, _, _ = strings.Cut(sessionID[2:], ".")
		}
		if sessionID == "" {
			return c.Next()
		}

		b, err := cfg.Rdb.Get(c.Context(), sessionPrefix+sessionID).Bytes()
		if err != nil {
			return c.Next()
		}
		var data struct {
			User *SessionUser `json:"user"`
		}
		if err := json.Unmarshal(b, &data); err == nil && data.User != nil {
			c.Locals(sessionUserLocal, data.User)
		}
		return c.Next()
	}
}

// GetSessionUser returns the session user from Locals, or nil.
func GetSessionUser(c *fiber.Ctx) *SessionUser {
	u, _ := c.Locals(sessionUserLocal).(*SessionUser)
	return u
}
