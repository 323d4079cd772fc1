package routes

import (
	"github.com/gofiber/fiber/v2"

	"studyhive/internal/controllers"
	"studyhive/internal/repository"
)

func SetupRoutesMaterial(app *fiber.App, materials repository.MaterialRepository, auth fiber.Handler) {
	h := controllers.NewMaterialHandler(materials)
	app.Get("/materials", auth, h.ListMaterials)
	app.Get("/materials/:email", auth, h.ListTutorMaterials)
	app.Get("/material/:sessionId", auth, h.ListSessionMaterials)
	app.Post("/materials", auth, h.CreateMaterial)
	app.Patch("/materials/:id", auth, h.UpdateMaterial)
	app.Delete("/materials/:id", auth, h.DeleteMaterial)
}
