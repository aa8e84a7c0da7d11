package public

import (
	"github.com/gofiber/fiber/v2"
)

// SetupPublicRoutes registers the unauthenticated content endpoints
// the landing page reads.
func SetupPublicRoutes(app *fiber.App) {
	api := app.Group("/api/public")
	api.Get("/landing-media", GetLandingMediaAPI)
	api.Get("/events", GetUpcomingEventsAPI)
}
