package routes

import (
	"github.com/gofiber/fiber/v2"

	"studyhive/internal/controllers"
	"studyhive/internal/middleware"
	"studyhive/internal/models"
	"studyhive/internal/repository"
	"studyhive/internal/services"
)

func SetupRoutesUser(app *fiber.App, users repository.UserRepository, svc *services.UserService, auth fiber.Handler) {
	h := controllers.NewUserHandler(users, svc)
	admin := middleware.RequireRole(models.RoleAdmin)

	app.Get("/users", auth, admin, h.SearchUsers)
	app.Get("/users/admin/:email", auth, h.IsAdmin)
	app.Get("/users/tutor/:email", auth, h.IsTutor)
	app.Post("/users", h.CreateUser)
	app.Patch("/users/:id", h.UpdateRole)
	app.Get("/tutors", h.ListTutors)
}
