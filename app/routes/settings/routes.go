package settings

import (
	"pelita-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupSettingsRoutes registers the admin SMTP configuration API
func SetupSettingsRoutes(app *fiber.App) {
	api := app.Group("/api/settings")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.AdminOnly())

	api.Get("/smtp", GetSMTPSettingsAPI)
	api.Post("/smtp", CreateSMTPSettingAPI)
	api.Put("/smtp/:id", UpdateSMTPSettingAPI)
	api.Put("/smtp/:id/activate", ActivateSMTPSettingAPI)
	api.Delete("/smtp/:id", DeleteSMTPSettingAPI)
	api.Post("/smtp/test", TestSMTPSettingAPI)
}
