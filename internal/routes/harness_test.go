package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"studyhive/internal/models"
	"studyhive/internal/repository/repotest"
	"studyhive/internal/services"
)

type fakeIntents struct {
	amounts []int64
	fail    bool
}

func (f *fakeIntents) CreateIntent(_ context.Context, amount int64, _ string, _ []string) (string, error) {
	if f.fail {
		return "", errors.New("stripe unavailable")
	}
	f.amounts = append(f.amounts, amount)
	return "pi_test_secret", nil
}

type harness struct {
	app       *fiber.App
	users     *repotest.Users
	courses   *repotest.Courses
	bookings  *repotest.Bookings
	reviews   *repotest.Reviews
	notes     *repotest.Notes
	materials *repotest.Materials
	tokens    *services.TokenService
	revoked   *services.MemoryRevocationStore
	intents   *fakeIntents
	pingErr   error
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		users:     &repotest.Users{},
		courses:   &repotest.Courses{},
		reviews:   &repotest.Reviews{},
		notes:     &repotest.Notes{},
		materials: &repotest.Materials{},
		tokens:    services.NewTokenService("test-secret", time.Hour),
		revoked:   services.NewMemoryRevocationStore(time.Hour),
		intents:   &fakeIntents{},
	}
	h.bookings = &repotest.Bookings{Courses: h.courses}
	h.app = NewApp(Deps{
		Users:          h.users,
		Courses:        h.courses,
		Bookings:       h.bookings,
		Reviews:        h.reviews,
		Notes:          h.notes,
		Materials:      h.materials,
		Tokens:         h.tokens,
		Revocations:    h.revoked,
		Payments:       services.NewPaymentService(h.intents),
		Ping:           func(context.Context) error { return h.pingErr },
		AllowedOrigins: []string{"http://localhost:5173"},
	})
	return h
}

func (h *harness) token(t *testing.T, email string, role models.Role) string {
	t.Helper()
	tok, err := h.tokens.Issue(map[string]any{"email": email, "role": string(role)})
	require.NoError(t, err)
	return tok
}

func (h *harness) adminToken(t *testing.T) string {
	return h.token(t, "boss@example.com", models.RoleAdmin)
}

func (h *harness) studentToken(t *testing.T) string {
	return h.token(t, "ann@example.com", models.RoleStudent)
}

// do sends a request and returns the status and raw body. body may be a
// string (sent as is) or any value (JSON encoded).
func (h *harness) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func (h *harness) seedCourse(t *testing.T, c models.Course) string {
	t.Helper()
	res, err := h.courses.Insert(context.Background(), c)
	require.NoError(t, err)
	return *res.InsertedID
}

func (h *harness) seedUser(t *testing.T, u models.User) string {
	t.Helper()
	res, err := h.users.Insert(context.Background(), u)
	require.NoError(t, err)
	return *res.InsertedID
}
