package students

import (
	"pelita-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin", "teacher"))

	api.Get("/", GetStudentsAPI)
	api.Get("/:id", GetStudentAPI)

	// Mutations are admin-only
	api.Post("/", auth.AdminOnly(), CreateStudentAPI)
	api.Put("/:id", auth.AdminOnly(), UpdateStudentAPI)
	api.Delete("/:id", auth.AdminOnly(), DeactivateStudentAPI)
}
