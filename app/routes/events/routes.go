package events

import (
	"pelita-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupEventsRoutes sets up the admin events API; the public
// projection lives under /api/public/events.
func SetupEventsRoutes(app *fiber.App) {
	api := app.Group("/api/events")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.AdminOnly())

	api.Get("/", GetEventsAPI)
	api.Post("/", CreateEventAPI)
	api.Put("/:id", UpdateEventAPI)
	api.Delete("/:id", DeleteEventAPI)
}
