package classes

import (
	"pelita-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupClassesRoutes(app *fiber.App) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin", "teacher"))

	api.Get("/", GetClassesAPI)
	api.Get("/:id", GetClassAPI)
	api.Get("/:id/roster", GetClassRosterAPI)

	api.Post("/", auth.AdminOnly(), CreateClassAPI)
	api.Put("/:id", auth.AdminOnly(), UpdateClassAPI)
	api.Delete("/:id", auth.AdminOnly(), DeleteClassAPI)
}
