package routes

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"

	_ "studyhive/docs"
	"studyhive/internal/middleware"
	"studyhive/internal/repository"
	"studyhive/internal/services"
)

// Deps is everything the HTTP layer needs; main wires the MongoDB-backed
// implementations and tests wire in-memory ones.
type Deps struct {
	Users     repository.UserRepository
	Courses   repository.CourseRepository
	Bookings  repository.BookingRepository
	Reviews   repository.ReviewRepository
	Notes     repository.NoteRepository
	Materials repository.MaterialRepository

	Tokens      *services.TokenService
	Revocations services.RevocationStore
	Payments    *services.PaymentService

	Ping           func(ctx context.Context) error
	AllowedOrigins []string
	AccessLog      bool
}

// NewApp builds the fiber app with the middleware stack and every route.
func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "studyhive",
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if d.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		}))
	}
	corsCfg := cors.Config{
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}
	if len(d.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = strings.Join(d.AllowedOrigins, ",")
		corsCfg.AllowCredentials = true
	}
	app.Use(cors.New(corsCfg))

	app.Get("/docs/*", swagger.HandlerDefault)

	auth := middleware.RequireToken(d.Tokens, d.Revocations)
	userSvc := services.NewUserService(d.Users, d.Revocations)

	SetupRoutesHealth(app, d.Ping)
	SetupRoutesAuth(app, d.Tokens, userSvc)
	SetupRoutesUser(app, d.Users, userSvc, auth)
	SetupRoutesCourse(app, d.Courses, auth)
	SetupRoutesBooking(app, d.Bookings, auth)
	SetupRoutesReview(app, d.Reviews)
	SetupRoutesNote(app, d.Notes, auth)
	SetupRoutesMaterial(app, d.Materials, auth)
	SetupRoutesPayment(app, d.Payments, auth)

	return app
}
