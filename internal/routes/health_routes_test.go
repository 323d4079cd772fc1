package routes

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootAndHealth(t *testing.T) {
	h := newHarness(t)

	code, raw := h.do(t, "GET", "/", "", nil)
	require.Equal(t, 200, code)
	assert.Equal(t, "Server is running", string(raw))

	code, raw = h.do(t, "GET", "/healthz", "", nil)
	require.Equal(t, 200, code)
	assert.Equal(t, "ok", string(raw))

	h.pingErr = errors.New("no primary")
	code, _ = h.do(t, "GET", "/healthz", "", nil)
	assert.Equal(t, 503, code)
}

func TestRequestIDAndCORSHeaders(t *testing.T) {
	h := newHarness(t)

	req := httptest.NewRequest("GET", "/courses", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest("GET", "/courses", nil)
	req.Header.Set("Origin", "https://evil.example")
	resp2, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Empty(t, resp2.Header.Get("Access-Control-Allow-Origin"))
}

func TestDocsAreServed(t *testing.T) {
	h := newHarness(t)
	code, raw := h.do(t, "GET", "/docs/doc.json", "", nil)
	require.Equal(t, 200, code)
	assert.Contains(t, string(raw), "/create-payment-intent")
}
