package settings

import (
	"database/sql"
	"log"

	"pelita-schools/app/config"
	"pelita-schools/app/database"
	"pelita-schools/app/models"
	"pelita-schools/app/services"

	"github.com/gofiber/fiber/v2"
)

// GetSMTPSettingsAPI lists all mail configurations with passwords
// blanked; the stored password never leaves the server.
func GetSMTPSettingsAPI(c *fiber.Ctx) error {
	settings, err := database.GetAllSMTPSettings(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch SMTP settings"})
	}
	for i := range settings {
		settings[i].Password = ""
	}
	return c.JSON(fiber.Map{"success": true, "data": settings})
}

func CreateSMTPSettingAPI(c *fiber.Ctx) error {
	s := new(models.SMTPSetting)
	if err := c.BodyParser(s); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if s.Host == "" || s.Port == 0 || s.FromEmail == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Host, port and from_email are required"})
	}

	if err := database.CreateSMTPSetting(config.GetDB(), s); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create SMTP setting"})
	}
	s.Password = ""
	return c.Status(201).JSON(fiber.Map{"success": true, "data": s})
}

func UpdateSMTPSettingAPI(c *fiber.Ctx) error {
	s := new(models.SMTPSetting)
	if err := c.BodyParser(s); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	s.ID = c.Params("id")

	if err := database.UpdateSMTPSetting(config.GetDB(), s); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "SMTP setting not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update SMTP setting"})
	}
	s.Password = ""
	return c.JSON(fiber.Map{"success": true, "data": s})
}

// ActivateSMTPSettingAPI makes one configuration the active one
func ActivateSMTPSettingAPI(c *fiber.Ctx) error {
	if err := database.ActivateSMTPSetting(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "SMTP setting not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to activate SMTP setting"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteSMTPSettingAPI removes an inactive configuration; the active
// row cannot be deleted.
func DeleteSMTPSettingAPI(c *fiber.Ctx) error {
	if err := database.DeleteSMTPSetting(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "SMTP setting not found or still active"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete SMTP setting"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// TestSMTPSettingAPI sends a test message through the active
// configuration so an admin can verify it end to end.
func TestSMTPSettingAPI(c *fiber.Ctx) error {
	type testRequest struct {
		To string `json:"to"`
	}
	var req testRequest
	if err := c.BodyParser(&req); err != nil || req.To == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Recipient is required"})
	}

	mailer := services.NewMailer(config.GetDB())
	err := mailer.SendEmail([]string{req.To}, "Pelita Schools - Test Email",
		"<p>Konfigurasi email Anda berfungsi dengan baik.</p>")
	if err != nil {
		if err == services.ErrNoActiveSMTP {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "No active SMTP configuration"})
		}
		log.Printf("Test email failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to send test email"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Test email sent"})
}
