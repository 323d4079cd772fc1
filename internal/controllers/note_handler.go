package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"studyhive/dto"
	"studyhive/internal/models"
	"studyhive/internal/repository"
)

type NoteHandler struct {
	notes repository.NoteRepository
}

func NewNoteHandler(notes repository.NoteRepository) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// ListNotes godoc
// @Summary      List a student's notes
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "Owner email"
// @Success      200 {array} models.Note
// @Router       /notes/{email} [get]
func (h *NoteHandler) ListNotes(c *fiber.Ctx) error {
	notes, err := h.notes.ListByOwner(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(notes)
}

// GetNote godoc
// @Summary      Get a note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Note id"
// @Success      200 {object} models.Note
// @Router       /myNotes/{id} [get]
func (h *NoteHandler) GetNote(c *fiber.Ctx) error {
	note, err := h.notes.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return sendDoc(c, note)
}

// CreateNote godoc
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        note body dto.NoteRequest true "Note"
// @Success      200 {object} models.InsertResult
// @Failure      400 {object} dto.ErrorResponse
// @Router       /notes [post]
func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	var req dto.NoteRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := required("email", req.Email); err != nil {
		return err
	}
	res, err := h.notes.Insert(c.UserContext(), models.Note{
		Email:       strings.TrimSpace(req.Email),
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// UpdateNote godoc
// @Summary      Edit a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "Note id"
// @Param        note body dto.NoteRequest true "title and description"
// @Success      200 {object} models.UpdateResult
// @Router       /notes/{id} [patch]
func (h *NoteHandler) UpdateNote(c *fiber.Ctx) error {
	var req dto.NoteRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	res, err := h.notes.Update(c.UserContext(), c.Params("id"), req.Title, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// DeleteNote godoc
// @Summary      Delete a note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Note id"
// @Success      200 {object} models.DeleteResult
// @Router       /notes/{id} [delete]
func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	res, err := h.notes.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(res)
}
