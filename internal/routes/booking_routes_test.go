package routes

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhive/internal/models"
)

func TestBookedSessionsAreJoinedAndWrapped(t *testing.T) {
	h := newHarness(t)
	tok := h.studentToken(t)
	courseID := h.seedCourse(t, models.Course{Title: "Go", Status: models.StatusApproved})

	code, _ := h.do(t, "POST", "/booked", tok, map[string]any{
		"studentEmail": "ann@example.com", "sessionId": " " + strings.ToUpper(courseID) + " ",
	})
	require.Equal(t, 200, code)

	// A second booking of the same session is accepted.
	code, _ = h.do(t, "POST", "/booked", tok, map[string]any{"studentEmail": "ann@example.com", "sessionId": courseID})
	require.Equal(t, 200, code)

	// The course of this booking does not exist.
	code, _ = h.do(t, "POST", "/booked", tok, map[string]any{"studentEmail": "ann@example.com", "sessionId": someID})
	require.Equal(t, 200, code)

	code, _ = h.do(t, "POST", "/booked", tok, map[string]any{"studentEmail": "bob@example.com", "sessionId": courseID})
	require.Equal(t, 200, code)

	code, raw := h.do(t, "GET", "/booked/ann@example.com", tok, nil)
	require.Equal(t, 200, code)
	wrapped := decode[[][]models.BookedSession](t, raw)
	require.Len(t, wrapped, 1)
	booked := wrapped[0]
	require.Len(t, booked, 3)

	assert.Equal(t, models.Ref(courseID), booked[0].SessionID)
	require.NotNil(t, booked[0].SessionInfo)
	assert.Equal(t, "Go", booked[0].SessionInfo.Title)
	require.NotNil(t, booked[1].SessionInfo)
	assert.Nil(t, booked[2].SessionInfo)
	assert.NotContains(t, string(raw), `"sessionInfo":null`)

	code, raw = h.do(t, "GET", "/booked/nobody@example.com", tok, nil)
	require.Equal(t, 200, code)
	assert.JSONEq(t, `[[]]`, string(raw))
}

func TestCreateBookingValidation(t *testing.T) {
	h := newHarness(t)
	tok := h.studentToken(t)

	code, _ := h.do(t, "POST", "/booked", tok, map[string]any{"studentEmail": "ann@example.com"})
	assert.Equal(t, 400, code)
	code, _ = h.do(t, "POST", "/booked", tok, map[string]any{"sessionId": someID})
	assert.Equal(t, 400, code)
}

func TestReviews(t *testing.T) {
	h := newHarness(t)

	code, raw := h.do(t, "GET", "/review/"+someID, "", nil)
	require.Equal(t, 200, code)
	assert.Equal(t, "null", string(raw))

	code, _ = h.do(t, "POST", "/review", "", map[string]any{
		"sessionId": strings.ToUpper(someID), "studentName": "Ann", "rating": "4.5", "comment": "great",
	})
	require.Equal(t, 200, code)

	code, raw = h.do(t, "GET", "/review/"+someID, "", nil)
	require.Equal(t, 200, code)
	rv := decode[models.Review](t, raw)
	assert.Equal(t, 4.5, rv.Rating.Float())
	assert.Equal(t, models.Ref(someID), rv.SessionID)

	code, _ = h.do(t, "POST", "/review", "", map[string]any{"sessionId": someID, "rating": 9})
	assert.Equal(t, 400, code)
	code, _ = h.do(t, "POST", "/review", "", map[string]any{"rating": 3})
	assert.Equal(t, 400, code)

	stored, err := h.reviews.FindBySession(context.Background(), someID)
	require.NoError(t, err)
	assert.Equal(t, "great", stored.Comment)
}
