package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/glog"

	"studyhive/dto"
	"studyhive/internal/models"
	"studyhive/internal/repository"
	"studyhive/internal/services"
)

type UserHandler struct {
	users repository.UserRepository
	svc   *services.UserService
}

func NewUserHandler(users repository.UserRepository, svc *services.UserService) *UserHandler {
	return &UserHandler{users: users, svc: svc}
}

// SearchUsers godoc
// @Summary      Search users
// @Description  Case-insensitive substring match on name or email. An empty term lists everyone. Answers [] when search is absent or the lookup fails.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Search term"
// @Success      200 {array} models.User
// @Router       /users [get]
func (h *UserHandler) SearchUsers(c *fiber.Ctx) error {
	if !c.Context().QueryArgs().Has("search") {
		return c.JSON([]models.User{})
	}
	users, err := h.users.Search(c.UserContext(), c.Query("search"))
	if err != nil {
		glog.Warningf("user search %q: %v", c.Query("search"), err)
		return c.JSON([]models.User{})
	}
	return c.JSON(users)
}

// IsAdmin godoc
// @Summary      Check admin role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "User email"
// @Success      200 {object} dto.AdminStatus
// @Router       /users/admin/{email} [get]
func (h *UserHandler) IsAdmin(c *fiber.Ctx) error {
	ok, err := h.svc.HasRole(c.UserContext(), c.Params("email"), models.RoleAdmin)
	if err != nil {
		return err
	}
	return c.JSON(dto.AdminStatus{Admin: ok})
}

// IsTutor godoc
// @Summary      Check tutor role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "User email"
// @Success      200 {object} dto.TutorStatus
// @Router       /users/tutor/{email} [get]
func (h *UserHandler) IsTutor(c *fiber.Ctx) error {
	ok, err := h.svc.HasRole(c.UserContext(), c.Params("email"), models.RoleTutor)
	if err != nil {
		return err
	}
	return c.JSON(dto.TutorStatus{Tutor: ok})
}

// CreateUser godoc
// @Summary      Register a user
// @Description  Idempotent on email: an existing email answers a sentinel with insertedId null.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user body dto.CreateUserRequest true "User"
// @Success      200 {object} models.InsertResult
// @Failure      400 {object} dto.ErrorResponse
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	res, existed, err := h.svc.Create(c.UserContext(), models.User{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
		Role:  models.Role(req.Role),
	})
	switch {
	case errors.Is(err, services.ErrMissingEmail), errors.Is(err, services.ErrInvalidRole):
		return badRequest(err.Error())
	case err != nil:
		return err
	case existed:
		return c.JSON(dto.UserExistsResponse{Message: "user already exists"})
	}
	return c.JSON(res)
}

// UpdateRole godoc
// @Summary      Change a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id   path string true "User id"
// @Param        body body dto.RoleUpdateRequest true "New role"
// @Success      200 {object} models.UpdateResult
// @Failure      400 {object} dto.ErrorResponse
// @Router       /users/{id} [patch]
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	var req dto.RoleUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	res, err := h.svc.ChangeRole(c.UserContext(), c.Params("id"), models.Role(req.Role))
	if errors.Is(err, services.ErrInvalidRole) {
		return badRequest(err.Error())
	}
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// ListTutors godoc
// @Summary      List tutors
// @Tags         users
// @Produce      json
// @Success      200 {array} models.User
// @Router       /tutors [get]
func (h *UserHandler) ListTutors(c *fiber.Ctx) error {
	tutors, err := h.users.ListByRole(c.UserContext(), models.RoleTutor)
	if err != nil {
		return err
	}
	return c.JSON(tutors)
}
