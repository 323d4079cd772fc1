package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhive/internal/models"
	"studyhive/internal/repository"
	"studyhive/internal/services"
)

type brokenStore struct{}

func (brokenStore) MarkRoleChanged(context.Context, string, time.Time) error { return nil }
func (brokenStore) RoleChangedAt(context.Context, string) (time.Time, bool, error) {
	return time.Time{}, false, errors.New("redis down")
}

func newTestApp(tokens *services.TokenService, revoked services.RevocationStore) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/me", RequireToken(tokens, revoked), func(c *fiber.Ctx) error {
		id, _ := Identity(c)
		return c.JSON(fiber.Map{"email": id.Email, "role": id.Role, "sub": Claims(c)["sub"]})
	})
	app.Get("/admin", RequireToken(tokens, revoked), RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("welcome")
	})
	app.Get("/fail/:kind", func(c *fiber.Ctx) error {
		switch c.Params("kind") {
		case "id":
			return fmt.Errorf("load: %w", repository.ErrInvalidID)
		case "timeout":
			return context.DeadlineExceeded
		case "fiber":
			return fiber.NewError(fiber.StatusTeapot, "short and stout")
		}
		return errors.New("boom")
	})
	return app
}

func do(t *testing.T, app *fiber.App, path, auth string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	return resp.StatusCode, body
}

func TestRequireToken(t *testing.T) {
	tokens := services.NewTokenService("s3cret", time.Hour)
	app := newTestApp(tokens, services.NewMemoryRevocationStore(time.Hour))
	tok, err := tokens.Issue(map[string]any{"email": "ann@example.com", "role": "student", "sub": "u1"})
	require.NoError(t, err)

	code, body := do(t, app, "/me", "")
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, "Unauthorized access", body["message"])

	for _, bad := range []string{tok, "Basic " + tok, "Bearer", "Bearer not.a.token"} {
		code, _ = do(t, app, "/me", bad)
		assert.Equal(t, fiber.StatusUnauthorized, code, bad)
	}

	code, body = do(t, app, "/me", "Bearer "+tok)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "ann@example.com", body["email"])
	assert.Equal(t, "student", body["role"])
	assert.Equal(t, "u1", body["sub"])

	code, _ = do(t, app, "/me", "bearer "+tok)
	assert.Equal(t, fiber.StatusOK, code)
}

func TestRequireTokenRefusesTokensOlderThanRoleChange(t *testing.T) {
	tokens := services.NewTokenService("s3cret", time.Hour)
	revoked := services.NewMemoryRevocationStore(time.Hour)
	app := newTestApp(tokens, revoked)

	old, err := tokens.Issue(map[string]any{"email": "ann@example.com", "role": "student"})
	require.NoError(t, err)
	require.NoError(t, revoked.MarkRoleChanged(context.Background(), "ann@example.com", time.Now().Add(2*time.Second)))

	code, _ := do(t, app, "/me", "Bearer "+old)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	other, err := tokens.Issue(map[string]any{"email": "bob@example.com"})
	require.NoError(t, err)
	code, _ = do(t, app, "/me", "Bearer "+other)
	assert.Equal(t, fiber.StatusOK, code)
}

func TestRequireTokenFailsOpenOnStoreError(t *testing.T) {
	tokens := services.NewTokenService("s3cret", time.Hour)
	app := newTestApp(tokens, brokenStore{})
	tok, err := tokens.Issue(map[string]any{"email": "ann@example.com"})
	require.NoError(t, err)

	code, _ := do(t, app, "/me", "Bearer "+tok)
	assert.Equal(t, fiber.StatusOK, code)
}

func TestRequireRole(t *testing.T) {
	tokens := services.NewTokenService("s3cret", time.Hour)
	app := newTestApp(tokens, nil)

	student, _ := tokens.Issue(map[string]any{"email": "ann@example.com", "role": "student"})
	admin, _ := tokens.Issue(map[string]any{"email": "boss@example.com", "role": "admin"})

	code, body := do(t, app, "/admin", "Bearer "+student)
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "Forbidden access", body["message"])

	code, _ = do(t, app, "/admin", "Bearer "+admin)
	assert.Equal(t, fiber.StatusOK, code)

	code, _ = do(t, app, "/admin", "")
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestErrorHandler(t *testing.T) {
	app := newTestApp(services.NewTokenService("s3cret", time.Hour), nil)
	tests := []struct {
		kind string
		code int
		msg  string
	}{
		{"id", fiber.StatusBadRequest, "invalid id"},
		{"timeout", fiber.StatusGatewayTimeout, "upstream timeout"},
		{"fiber", fiber.StatusTeapot, "short and stout"},
		{"other", fiber.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		code, body := do(t, app, "/fail/"+tt.kind, "")
		assert.Equal(t, tt.code, code, tt.kind)
		assert.Equal(t, tt.msg, body["message"], tt.kind)
	}
}

func TestBearerToken(t *testing.T) {
	tok, ok := bearerToken("  Bearer   abc ")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	_, ok = bearerToken("Bearer ")
	assert.False(t, ok)
	_, ok = bearerToken("Token abc")
	assert.False(t, ok)
}
