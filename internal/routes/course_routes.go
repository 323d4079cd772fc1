package routes

import (
	"github.com/gofiber/fiber/v2"

	"studyhive/internal/controllers"
	"studyhive/internal/middleware"
	"studyhive/internal/models"
	"studyhive/internal/repository"
)

// A course and a session are the same document; the web client uses
// /courses for the public catalogue and /sessions for tutor dashboards.
func SetupRoutesCourse(app *fiber.App, courses repository.CourseRepository, auth fiber.Handler) {
	h := controllers.NewCourseHandler(courses)
	admin := middleware.RequireRole(models.RoleAdmin)

	app.Get("/courses", h.ListApproved)
	app.Get("/courses/:id", auth, h.GetCourse)
	app.Post("/courses", auth, h.CreateCourse)
	app.Patch("/courses/:id", auth, admin, h.ReviewCourse)
	app.Delete("/courses/:id", auth, h.DeleteCourse)

	app.Get("/sessions", auth, admin, h.ListPending)
	app.Get("/sessions/:email", auth, h.ListTutorApproved)
	app.Patch("/sessions/:id", auth, h.UpdateSession)
	app.Get("/rejSessions/:email", auth, h.ListTutorRejected)
	app.Patch("/session/:id", auth, h.ResubmitSession)
}
