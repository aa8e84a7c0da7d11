package auth

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"pelita-schools/app/config"
	"pelita-schools/app/database"
	"pelita-schools/app/services"
	"pelita-schools/app/state"

	"github.com/gofiber/fiber/v2"
)

func setSessionCookie(c *fiber.Ctx, sessionID string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "session_id",
		Value:    sessionID,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   config.GetConfig().SecureCookies,
		SameSite: "Lax",
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "session_id",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request"})
	}

	user, err := database.GetUserByEmail(config.GetDB(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid credentials"})
	}

	sessionID := GenerateSessionID()
	expiresAt := GetSessionExpiry()
	if err := database.CreateSession(config.GetDB(), sessionID, user.ID, expiresAt); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create session"})
	}

	setSessionCookie(c, sessionID, expiresAt)

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	if token := c.Cookies("session_id"); token != "" {
		if err := database.DeleteSession(config.GetDB(), token); err != nil {
			log.Printf("Failed to delete session on logout: %v", err)
		}
	}
	clearSessionCookie(c)

	return c.JSON(fiber.Map{"success": true})
}

// MeAPI is the round trip the front end makes on page load to
// repopulate its auth store.
func MeAPI(c *fiber.Ctx) error {
	st := c.Locals("auth").(*state.AuthState)

	return c.JSON(fiber.Map{
		"success": true,
		"user":    st.User(),
		"role":    st.UserRole(),
		"profile": st.Profile(),
	})
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request"})
	}
	if len(req.NewPassword) < 8 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Password must be at least 8 characters"})
	}

	userID := c.Locals("user_id").(string)
	sessionID := c.Locals("session_id").(string)

	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
	}

	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Current password is incorrect"})
	}

	hashedPassword, err := HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to hash password"})
	}

	if err := database.UpdateUserPassword(config.GetDB(), userID, hashedPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update password"})
	}

	// Invalidate every other session of this user
	if err := database.DeleteOtherSessions(config.GetDB(), userID, sessionID); err != nil {
		log.Printf("Failed to invalidate other sessions for user %s: %v", userID, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Password changed successfully"})
}

func ForgotPasswordAPI(c *fiber.Ctx) error {
	type ForgotPasswordRequest struct {
		Email string `json:"email"`
	}

	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request"})
	}

	user, err := database.GetUserByEmail(config.GetDB(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Email not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
	}

	token, err := GenerateResetToken(user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to generate reset token"})
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", config.GetConfig().AppBaseURL, token)
	html := fmt.Sprintf(`<p>Halo %s,</p>
<p>Klik tautan berikut untuk mengatur ulang kata sandi akun Pelita Schools Anda. Tautan berlaku 15 menit.</p>
<p><a href="%s">Atur ulang kata sandi</a></p>`, user.FirstName, link)

	mailer := services.NewMailer(config.GetDB())
	if err := mailer.SendEmail([]string{user.Email}, "Atur Ulang Kata Sandi", html); err != nil {
		if err == services.ErrNoActiveSMTP {
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Mail is not configured"})
		}
		log.Printf("Failed to send reset email: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to send reset email"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Reset email sent"})
}

func ResetPasswordAPI(c *fiber.Ctx) error {
	type ResetPasswordRequest struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}

	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request"})
	}
	if len(req.NewPassword) < 8 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Password must be at least 8 characters"})
	}

	userID, err := ValidateResetToken(req.Token)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid or expired reset token"})
	}

	hashedPassword, err := HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to hash password"})
	}

	if err := database.UpdateUserPassword(config.GetDB(), userID, hashedPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update password"})
	}

	// A reset proves control of the mailbox, not of existing sessions
	if err := database.DeleteSessionsByUser(config.GetDB(), userID); err != nil {
		log.Printf("Failed to invalidate sessions for user %s: %v", userID, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Password reset successfully"})
}
