package controllers

import (
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"

	"studyhive/dto"
	"studyhive/internal/models"
	"studyhive/internal/repository"
)

type CourseHandler struct {
	courses repository.CourseRepository
}

func NewCourseHandler(courses repository.CourseRepository) *CourseHandler {
	return &CourseHandler{courses: courses}
}

func (h *CourseHandler) list(c *fiber.Ctx, status models.CourseStatus) error {
	courses, err := h.courses.ListByStatus(c.UserContext(), status)
	if err != nil {
		return err
	}
	return c.JSON(courses)
}

func (h *CourseHandler) listByTutor(c *fiber.Ctx, status models.CourseStatus) error {
	courses, err := h.courses.ListByTutor(c.UserContext(), c.Params("email"), status)
	if err != nil {
		return err
	}
	return c.JSON(courses)
}

// ListApproved godoc
// @Summary      List approved courses
// @Tags         courses
// @Produce      json
// @Success      200 {array} models.Course
// @Router       /courses [get]
func (h *CourseHandler) ListApproved(c *fiber.Ctx) error {
	return h.list(c, models.StatusApproved)
}

// ListPending godoc
// @Summary      List sessions awaiting review
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Course
// @Failure      403 {object} dto.ErrorResponse
// @Router       /sessions [get]
func (h *CourseHandler) ListPending(c *fiber.Ctx) error {
	return h.list(c, models.StatusPending)
}

// ListTutorApproved godoc
// @Summary      List a tutor's approved sessions
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "Tutor email"
// @Success      200 {array} models.Course
// @Router       /sessions/{email} [get]
func (h *CourseHandler) ListTutorApproved(c *fiber.Ctx) error {
	return h.listByTutor(c, models.StatusApproved)
}

// ListTutorRejected godoc
// @Summary      List a tutor's rejected sessions
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "Tutor email"
// @Success      200 {array} models.Course
// @Router       /rejSessions/{email} [get]
func (h *CourseHandler) ListTutorRejected(c *fiber.Ctx) error {
	return h.listByTutor(c, models.StatusRejected)
}

// GetCourse godoc
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course id"
// @Success      200 {object} models.Course
// @Failure      400 {object} dto.ErrorResponse
// @Router       /courses/{id} [get]
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	course, err := h.courses.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return sendDoc(c, course)
}

// CreateCourse godoc
// @Summary      Submit a course for review
// @Description  The course is always stored as pending.
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        course body dto.CreateCourseRequest true "Course"
// @Success      200 {object} models.InsertResult
// @Failure      400 {object} dto.ErrorResponse
// @Router       /courses [post]
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := required("title", req.Title, "tutorEmail", req.TutorEmail); err != nil {
		return err
	}

	res, err := h.courses.Insert(c.UserContext(), models.Course{
		Title:                 req.Title,
		Description:           req.Description,
		TutorName:             req.TutorName,
		TutorEmail:            strings.TrimSpace(req.TutorEmail),
		Status:                models.StatusPending,
		RegistrationFee:       models.Number(req.RegistrationFee.Float()),
		RegistrationStartDate: models.Text(req.RegistrationStartDate),
		RegistrationEndDate:   models.Text(req.RegistrationEndDate),
		ClassStartTime:        models.Text(req.ClassStartTime),
		ClassEndDate:          models.Text(req.ClassEndDate),
		Duration:              models.Text(req.Duration),
	})
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// ReviewCourse godoc
// @Summary      Approve or reject a course
// @Description  status must be approved (sets registrationFee) or rejected (sets rejectReason and feedback).
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "Course id"
// @Param        body body dto.ReviewCourseRequest true "Decision"
// @Success      200 {object} models.UpdateResult
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Router       /courses/{id} [patch]
func (h *CourseHandler) ReviewCourse(c *fiber.Ctx) error {
	var req dto.ReviewCourseRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	var (
		res models.UpdateResult
		err error
	)
	switch models.CourseStatus(req.Status) {
	case models.StatusApproved:
		var fee float64
		if req.RegistrationFee != nil {
			fee = req.RegistrationFee.Float()
		}
		if fee < 0 {
			return badRequest("registrationFee must not be negative")
		}
		res, err = h.courses.Approve(c.UserContext(), c.Params("id"), fee)
	case models.StatusRejected:
		res, err = h.courses.Reject(c.UserContext(), c.Params("id"), req.RejectReason, req.Feedback)
	default:
		return badRequest("status must be approved or rejected")
	}
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// UpdateSession godoc
// @Summary      Edit a session
// @Description  registrationFee is truncated to a whole number.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "Session id"
// @Param        body body dto.UpdateSessionRequest true "Session fields"
// @Success      200 {object} models.UpdateResult
// @Failure      400 {object} dto.ErrorResponse
// @Router       /sessions/{id} [patch]
func (h *CourseHandler) UpdateSession(c *fiber.Ctx) error {
	var req dto.UpdateSessionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	res, err := h.courses.UpdateDetails(c.UserContext(), c.Params("id"), models.CourseDetails{
		TutorEmail:            req.TutorEmail,
		Title:                 req.Title,
		Description:           req.Description,
		RegistrationStartDate: req.RegistrationStartDate,
		RegistrationEndDate:   req.RegistrationEndDate,
		ClassStartTime:        req.ClassStartTime,
		ClassEndDate:          req.ClassEndDate,
		RegistrationFee:       int64(math.Trunc(req.RegistrationFee.Float())),
		Duration:              req.Duration,
	})
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// ResubmitSession godoc
// @Summary      Send a session back to pending
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session id"
// @Success      200 {object} models.UpdateResult
// @Router       /session/{id} [patch]
func (h *CourseHandler) ResubmitSession(c *fiber.Ctx) error {
	res, err := h.courses.ResetToPending(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// DeleteCourse godoc
// @Summary      Delete a course
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course id"
// @Success      200 {object} models.DeleteResult
// @Router       /courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	res, err := h.courses.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(res)
}
