package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func adminTestApp(t *testing.T, rdb *redis.Client, keyHash string) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(Session(SessionConfig{CookieName: "metrodir.sid", Rdb: rdb}))
	app.Get("/admin/ping", RequireAdmin(keyHash), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"moderator": ModeratorID(c)})
	})
	return app
}

func TestRequireAdmin_NoCredentials(t *testing.T) {
	app := adminTestApp(t, nil, "")

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdmin_APIKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)
	app := adminTestApp(t, nil, string(hash))

	req := httptest.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer letmein")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, APIKeyModerator, body["moderator"])

	bad := httptest.NewRequest("GET", "/admin/ping", nil)
	bad.Header.Set("Authorization", "Bearer wrong")
	resp, err = app.Test(bad)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdmin_SessionUser(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	require.NoError(t, mr.Set("session:abc123",
		`{"user":{"user_id":"u-1","email":"mod@example.org","role":"admin"}}`))
	require.NoError(t, mr.Set("session:viewer",
		`{"user":{"user_id":"u-2","email":"viewer@example.org","role":"member"}}`))

	app := adminTestApp(t, rdb, "")

	req := httptest.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set("Cookie", "metrodir.sid=s:abc123.sig")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "mod@example.org", body["moderator"])

	nonAdmin := httptest.NewRequest("GET", "/admin/ping", nil)
	nonAdmin.Header.Set("Cookie", "metrodir.sid=viewer")
	resp, err = app.Test(nonAdmin)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
