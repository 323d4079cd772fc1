package routes

import (
	"github.com/gofiber/fiber/v2"

	"studyhive/internal/controllers"
	"studyhive/internal/repository"
)

func SetupRoutesNote(app *fiber.App, notes repository.NoteRepository, auth fiber.Handler) {
	h := controllers.NewNoteHandler(notes)
	app.Get("/notes/:email", auth, h.ListNotes)
	app.Get("/myNotes/:id", auth, h.GetNote)
	app.Post("/notes", auth, h.CreateNote)
	app.Patch("/notes/:id", auth, h.UpdateNote)
	app.Delete("/notes/:id", auth, h.DeleteNote)
}
