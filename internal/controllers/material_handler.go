package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"studyhive/dto"
	"studyhive/internal/models"
	"studyhive/internal/repository"
	"studyhive/utils"
)

type MaterialHandler struct {
	materials repository.MaterialRepository
}

func NewMaterialHandler(materials repository.MaterialRepository) *MaterialHandler {
	return &MaterialHandler{materials: materials}
}

// ListMaterials godoc
// @Summary      List all materials
// @Tags         materials
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Material
// @Router       /materials [get]
func (h *MaterialHandler) ListMaterials(c *fiber.Ctx) error {
	materials, err := h.materials.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(materials)
}

// ListTutorMaterials godoc
// @Summary      List a tutor's materials
// @Tags         materials
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "Tutor email"
// @Success      200 {array} models.Material
// @Router       /materials/{email} [get]
func (h *MaterialHandler) ListTutorMaterials(c *fiber.Ctx) error {
	materials, err := h.materials.ListByTutor(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(materials)
}

// ListSessionMaterials godoc
// @Summary      List the materials of a session
// @Tags         materials
// @Produce      json
// @Security     BearerAuth
// @Param        sessionId path string true "Session id"
// @Success      200 {array} models.Material
// @Router       /material/{sessionId} [get]
func (h *MaterialHandler) ListSessionMaterials(c *fiber.Ctx) error {
	materials, err := h.materials.ListBySession(c.UserContext(), c.Params("sessionId"))
	if err != nil {
		return err
	}
	return c.JSON(materials)
}

// CreateMaterial godoc
// @Summary      Upload a material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        material body dto.MaterialRequest true "Material"
// @Success      200 {object} models.InsertResult
// @Failure      400 {object} dto.ErrorResponse
// @Router       /materials [post]
func (h *MaterialHandler) CreateMaterial(c *fiber.Ctx) error {
	var req dto.MaterialRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := required("tutorEmail", req.TutorEmail, "sessionId", req.SessionID); err != nil {
		return err
	}
	res, err := h.materials.Insert(c.UserContext(), models.Material{
		TutorEmail: strings.TrimSpace(req.TutorEmail),
		SessionID:  models.Ref(utils.CanonicalRef(req.SessionID)),
		Title:      req.Title,
		Image:      req.Image,
		Material:   req.Material,
	})
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// UpdateMaterial godoc
// @Summary      Edit a material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path string true "Material id"
// @Param        material body dto.MaterialRequest true "title, image and material"
// @Success      200 {object} models.UpdateResult
// @Router       /materials/{id} [patch]
func (h *MaterialHandler) UpdateMaterial(c *fiber.Ctx) error {
	var req dto.MaterialRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	res, err := h.materials.Update(c.UserContext(), c.Params("id"), req.Title, req.Image, req.Material)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// DeleteMaterial godoc
// @Summary      Delete a material
// @Tags         materials
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Material id"
// @Success      200 {object} models.DeleteResult
// @Router       /materials/{id} [delete]
func (h *MaterialHandler) DeleteMaterial(c *fiber.Ctx) error {
	res, err := h.materials.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(res)
}
