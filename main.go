package main

import (
	"log"
	"strings"

	"pelita-schools/app/config"
	"pelita-schools/app/database"
	"pelita-schools/app/routes/assistant"
	"pelita-schools/app/routes/auth"
	"pelita-schools/app/routes/classes"
	"pelita-schools/app/routes/dashboard"
	"pelita-schools/app/routes/events"
	"pelita-schools/app/routes/media"
	"pelita-schools/app/routes/public"
	"pelita-schools/app/routes/settings"
	"pelita-schools/app/routes/students"
	"pelita-schools/app/routes/teachers"
	"pelita-schools/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// customErrorHandler converts any error that escapes a handler into
// the uniform JSON envelope; internals are logged, never returned.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	message := err.Error()
	if code == fiber.StatusInternalServerError {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func main() {
	config.LoadEnv()

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler (session sweep)
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Pelita Schools API",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetConfig().AppBaseURL,
		AllowCredentials: true,
	}))

	// Public content endpoints (no auth)
	public.SetupPublicRoutes(app)

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup teachers routes
	teachers.SetupTeachersRoutes(app)

	// Setup classes routes
	classes.SetupClassesRoutes(app)

	// Setup events routes
	events.SetupEventsRoutes(app)

	// Setup landing media admin routes
	media.SetupMediaRoutes(app)

	// Setup settings routes
	settings.SetupSettingsRoutes(app)

	// Setup assistant routes
	assistant.SetupAssistantRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return fiber.NewError(fiber.StatusNotFound, "Endpoint not found")
		}
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	addr := ":" + config.GetConfig().Port
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
