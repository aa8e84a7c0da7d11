package dashboard

import (
	"log"

	"pelita-schools/app/config"
	"pelita-schools/app/database"
	"pelita-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin", "teacher"))

	api.Get("/stats", GetStatsAPI)
}

// GetStatsAPI returns the admin home panel counters
func GetStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		log.Printf("Error fetching dashboard stats: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch dashboard statistics"})
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}
