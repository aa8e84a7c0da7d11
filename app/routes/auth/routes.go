package auth

import (
	"database/sql"
	"strings"

	"pelita-schools/app/config"
	"pelita-schools/app/database"
	"pelita-schools/app/models"
	"pelita-schools/app/state"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")

	// Public routes
	api.Post("/login", LoginAPI)
	api.Post("/logout", LogoutAPI)
	api.Post("/forgot-password", ForgotPasswordAPI)
	api.Post("/reset-password", ResetPasswordAPI)

	// Protected routes
	api.Use(AuthMiddleware)
	api.Get("/me", MeAPI)
	api.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware resolves the session cookie to its owning user and
// attaches the per-request auth state.
func AuthMiddleware(c *fiber.Ctx) error {
	st := state.New()
	c.Locals("auth", st)

	// First try cookie, then Authorization header
	token := c.Cookies("session_id")
	if token == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if token == "" {
		st.ClearUser()
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	session, err := database.GetSessionWithUser(config.GetDB(), token)
	if err != nil {
		st.ClearUser()
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Session expired or invalid"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
	}

	st.SetUser(session.User)
	c.Locals("user_id", session.User.ID)
	c.Locals("session_id", session.ID)
	c.Locals("user", session.User)

	return c.Next()
}

// RoleMiddleware checks if the authenticated user has one of the
// allowed roles.
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, ok := c.Locals("auth").(*state.AuthState)
		if !ok || !st.IsAuthenticated() {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
		}

		for _, allowed := range allowedRoles {
			if st.UserRole() == allowed {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Insufficient permissions"})
	}
}

// AdminOnly gates the administrative API surface
func AdminOnly() fiber.Handler {
	return RoleMiddleware(models.RoleAdmin)
}
