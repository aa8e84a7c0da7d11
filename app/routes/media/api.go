package media

import (
	"database/sql"

	"pelita-schools/app/config"
	"pelita-schools/app/database"
	"pelita-schools/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetLandingMediaAPI lists every row, inactive included
func GetLandingMediaAPI(c *fiber.Ctx) error {
	media, err := database.GetAllLandingMedia(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch landing media"})
	}
	return c.JSON(fiber.Map{"success": true, "data": media})
}

func CreateLandingMediaAPI(c *fiber.Ctx) error {
	m := new(models.LandingMedia)
	if err := c.BodyParser(m); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if !models.ValidMediaType(m.Tipe) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid media type"})
	}
	if m.Judul == "" || m.URL == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Title and URL are required"})
	}
	if m.AspectRatio == "" {
		m.AspectRatio = "16:9"
	}

	if err := database.CreateLandingMedia(config.GetDB(), m); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create landing media"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "data": m})
}

func UpdateLandingMediaAPI(c *fiber.Ctx) error {
	m := new(models.LandingMedia)
	if err := c.BodyParser(m); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	m.ID = c.Params("id")
	if !models.ValidMediaType(m.Tipe) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid media type"})
	}

	if err := database.UpdateLandingMedia(config.GetDB(), m); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Landing media not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update landing media"})
	}
	return c.JSON(fiber.Map{"success": true, "data": m})
}

// SetLandingMediaActiveAPI soft-enables or soft-disables one row
func SetLandingMediaActiveAPI(c *fiber.Ctx) error {
	type activeRequest struct {
		IsActive bool `json:"is_active"`
	}
	var req activeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if err := database.SetLandingMediaActive(config.GetDB(), c.Params("id"), req.IsActive); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Landing media not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update landing media"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// ReorderLandingMediaAPI applies a new display order in one shot
func ReorderLandingMediaAPI(c *fiber.Ctx) error {
	type orderItem struct {
		ID     string `json:"id"`
		Urutan int    `json:"urutan"`
	}
	var items []orderItem
	if err := c.BodyParser(&items); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if len(items) == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "No items given"})
	}

	order := make(map[string]int, len(items))
	for _, it := range items {
		order[it.ID] = it.Urutan
	}

	if err := database.ReorderLandingMedia(config.GetDB(), order); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to reorder landing media"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func DeleteLandingMediaAPI(c *fiber.Ctx) error {
	if err := database.DeleteLandingMedia(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete landing media"})
	}
	return c.JSON(fiber.Map{"success": true})
}
