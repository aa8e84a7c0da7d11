package media

import (
	"pelita-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupMediaRoutes registers the admin landing-media management API
func SetupMediaRoutes(app *fiber.App) {
	api := app.Group("/api/landing-media")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.AdminOnly())

	api.Get("/", GetLandingMediaAPI)
	api.Post("/", CreateLandingMediaAPI)
	api.Put("/reorder", ReorderLandingMediaAPI)
	api.Put("/:id", UpdateLandingMediaAPI)
	api.Put("/:id/active", SetLandingMediaActiveAPI)
	api.Delete("/:id", DeleteLandingMediaAPI)
}
