package teachers

import (
	"pelita-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupTeachersRoutes(app *fiber.App) {
	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.AdminOnly())

	api.Get("/", GetTeachersAPI)
	api.Get("/:id", GetTeacherAPI)
	api.Post("/", CreateTeacherAPI)
	api.Put("/:id", UpdateTeacherAPI)
	api.Delete("/:id", DeactivateTeacherAPI)
}
