package routes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhive/dto"
	"studyhive/internal/models"
)

func TestCourseLifecycle(t *testing.T) {
	h := newHarness(t)
	tutor := h.token(t, "tut@example.com", models.RoleTutor)
	admin := h.adminToken(t)

	code, raw := h.do(t, "POST", "/courses", tutor, map[string]any{
		"title": "Organic Chemistry", "tutorEmail": "tut@example.com",
		"registrationFee": "0", "status": "approved",
	})
	require.Equal(t, 200, code)
	id := *decode[models.InsertResult](t, raw).InsertedID

	// Created courses wait for review whatever status the client sent.
	code, raw = h.do(t, "GET", "/sessions", admin, nil)
	require.Equal(t, 200, code)
	pending := decode[[]models.Course](t, raw)
	require.Len(t, pending, 1)
	assert.Equal(t, models.StatusPending, pending[0].Status)

	code, raw = h.do(t, "GET", "/courses", "", nil)
	require.Equal(t, 200, code)
	assert.JSONEq(t, `[]`, string(raw))

	code, raw = h.do(t, "PATCH", "/courses/"+id, admin, map[string]any{"status": "approved", "registrationFee": 25})
	require.Equal(t, 200, code)
	assert.Equal(t, int64(1), decode[models.UpdateResult](t, raw).ModifiedCount)

	code, raw = h.do(t, "GET", "/courses", "", nil)
	require.Equal(t, 200, code)
	approved := decode[[]models.Course](t, raw)
	require.Len(t, approved, 1)
	assert.Equal(t, 25.0, approved[0].RegistrationFee.Float())

	code, raw = h.do(t, "GET", "/sessions/tut@example.com", tutor, nil)
	require.Equal(t, 200, code)
	assert.Len(t, decode[[]models.Course](t, raw), 1)

	code, raw = h.do(t, "GET", "/sessions", admin, nil)
	require.Equal(t, 200, code)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestRejectAndResubmit(t *testing.T) {
	h := newHarness(t)
	tutor := h.token(t, "tut@example.com", models.RoleTutor)
	id := h.seedCourse(t, models.Course{Title: "Poetry", TutorEmail: "tut@example.com", Status: models.StatusPending})

	code, _ := h.do(t, "PATCH", "/courses/"+id, h.adminToken(t), dto.ReviewCourseRequest{
		Status: "rejected", RejectReason: "too short", Feedback: "add a syllabus",
	})
	require.Equal(t, 200, code)

	code, raw := h.do(t, "GET", "/rejSessions/tut@example.com", tutor, nil)
	require.Equal(t, 200, code)
	rejected := decode[[]models.Course](t, raw)
	require.Len(t, rejected, 1)
	assert.Equal(t, "too short", rejected[0].RejectReason)
	assert.Equal(t, "add a syllabus", rejected[0].Feedback)

	code, _ = h.do(t, "PATCH", "/session/"+id, tutor, nil)
	require.Equal(t, 200, code)

	c, err := h.courses.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, c.Status)
}

func TestReviewCourseRejectsUnknownStatus(t *testing.T) {
	h := newHarness(t)
	id := h.seedCourse(t, models.Course{Title: "Poetry", Status: models.StatusPending})

	for _, status := range []string{"archived", "", "pending", "APPROVED"} {
		code, raw := h.do(t, "PATCH", "/courses/"+id, h.adminToken(t), map[string]any{"status": status})
		assert.Equal(t, 400, code, status)
		assert.Equal(t, "status must be approved or rejected", decode[dto.ErrorResponse](t, raw).Message)
	}

	c, err := h.courses.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, c.Status)

	code, _ := h.do(t, "PATCH", "/courses/"+id, h.adminToken(t), map[string]any{"status": "approved", "registrationFee": -3})
	assert.Equal(t, 400, code)
}

func TestUpdateSessionTruncatesFee(t *testing.T) {
	h := newHarness(t)
	tutor := h.token(t, "tut@example.com", models.RoleTutor)
	id := h.seedCourse(t, models.Course{Title: "Old", TutorEmail: "tut@example.com", Status: models.StatusApproved})

	code, raw := h.do(t, "PATCH", "/sessions/"+id, tutor, map[string]any{
		"tutorEmail": "tut@example.com", "title": "New", "description": "d",
		"registrationStartDate": "2026-01-01", "registrationEndDate": "2026-01-10",
		"classStartTime": "10:00", "classEndDate": "2026-02-01",
		"registrationFee": "25.9", "duration": "4 weeks",
	})
	require.Equal(t, 200, code)
	assert.Equal(t, int64(1), decode[models.UpdateResult](t, raw).ModifiedCount)

	c, err := h.courses.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "New", c.Title)
	assert.Equal(t, 25.0, c.RegistrationFee.Float())
	assert.Equal(t, models.Text("4 weeks"), c.Duration)
	assert.Equal(t, models.StatusApproved, c.Status)

	code, _ = h.do(t, "PATCH", "/sessions/"+id, tutor, map[string]any{"registrationFee": "lots"})
	assert.Equal(t, 400, code)
}

func TestCoursePointLookupAndDelete(t *testing.T) {
	h := newHarness(t)
	tok := h.studentToken(t)
	id := h.seedCourse(t, models.Course{Title: "Go", Status: models.StatusApproved})

	code, raw := h.do(t, "GET", "/courses/"+id, tok, nil)
	require.Equal(t, 200, code)
	assert.Equal(t, "Go", decode[models.Course](t, raw).Title)

	code, raw = h.do(t, "GET", "/courses/not-an-id", tok, nil)
	assert.Equal(t, 400, code)
	assert.Equal(t, "invalid id", decode[dto.ErrorResponse](t, raw).Message)

	code, raw = h.do(t, "DELETE", "/courses/"+id, tok, nil)
	require.Equal(t, 200, code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, string(raw))

	code, raw = h.do(t, "GET", "/courses/"+id, tok, nil)
	require.Equal(t, 200, code)
	assert.Equal(t, "null", string(raw))

	code, raw = h.do(t, "DELETE", "/courses/"+id, tok, nil)
	require.Equal(t, 200, code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":0}`, string(raw))
}
