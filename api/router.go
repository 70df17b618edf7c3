package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

const idleTimeout = 5 * time.Second

// Handlers groups everything NewApp mounts
type Handlers struct {
	Health *HealthHandler
	Auth   AuthHandler
	Visit  VisitHandler
	Time   TimeHandler
}

// NewApp builds the Fiber application with middleware and all routes
func NewApp(h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		IdleTimeout:           idleTimeout,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			// the container probe hits /healthz every 30s
			return c.Path() == "/healthz"
		},
	}))

	// redirect to swagger docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/swagger/", fiber.StatusMovedPermanently)
	})

	// Health check endpoints
	app.Get("/healthz", h.Health.Liveness)
	app.Get("/health", h.Health.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/time/now", h.Time.GetNow)

	app.Post("/auth/register", h.Auth.Register)
	app.Post("/auth/login", h.Auth.Login)

	app.Post("/metrics/visit", h.Visit.RecordVisit)
	app.Get("/metrics/total", h.Visit.GetTotal)
	app.Get("/metrics/visits", h.Visit.GetMetrics)

	return app
}
