package controllers

import (
	"github.com/gofiber/fiber/v2"

	"studyhive/dto"
	"studyhive/internal/models"
	"studyhive/internal/repository"
	"studyhive/utils"
)

type ReviewHandler struct {
	reviews repository.ReviewRepository
}

func NewReviewHandler(reviews repository.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// GetReview godoc
// @Summary      Get the review of a session
// @Tags         reviews
// @Produce      json
// @Param        id path string true "Session id"
// @Success      200 {object} models.Review
// @Router       /review/{id} [get]
func (h *ReviewHandler) GetReview(c *fiber.Ctx) error {
	review, err := h.reviews.FindBySession(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return sendDoc(c, review)
}

// CreateReview godoc
// @Summary      Review a session
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        review body dto.CreateReviewRequest true "Review"
// @Success      200 {object} models.InsertResult
// @Failure      400 {object} dto.ErrorResponse
// @Router       /review [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	var req dto.CreateReviewRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := required("sessionId", req.SessionID); err != nil {
		return err
	}
	if r := req.Rating.Float(); r < 0 || r > 5 {
		return badRequest("rating must be between 0 and 5")
	}

	res, err := h.reviews.Insert(c.UserContext(), models.Review{
		SessionID:    models.Ref(utils.CanonicalRef(req.SessionID)),
		StudentName:  req.StudentName,
		StudentEmail: req.StudentEmail,
		Rating:       models.Number(req.Rating.Float()),
		Comment:      req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(res)
}
