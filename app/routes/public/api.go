package public

import (
	"log"

	"pelita-schools/app/config"
	"pelita-schools/app/database"

	"github.com/gofiber/fiber/v2"
)

// GetLandingMediaAPI returns the active landing media rows ordered by
// urutan, projected to the public field set. Internal errors are
// logged server-side and never reach the client.
func GetLandingMediaAPI(c *fiber.Ctx) error {
	media, err := database.GetActiveLandingMedia(config.GetDB())
	if err != nil {
		log.Printf("Error fetching landing media: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch landing media",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    media,
	})
}

// GetUpcomingEventsAPI returns public events that have not ended yet
func GetUpcomingEventsAPI(c *fiber.Ctx) error {
	events, err := database.GetPublicUpcomingEvents(config.GetDB())
	if err != nil {
		log.Printf("Error fetching public events: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch events",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    events,
	})
}
