package events

import (
	"database/sql"

	"pelita-schools/app/config"
	"pelita-schools/app/database"
	"pelita-schools/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetEventsAPI returns all events, non-public included
func GetEventsAPI(c *fiber.Ctx) error {
	events, err := database.GetEvents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch events",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"events":  events,
	})
}

// CreateEventAPI creates a new event
func CreateEventAPI(c *fiber.Ctx) error {
	event := new(models.Event)
	if err := c.BodyParser(event); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if event.Title == "" || event.StartDate.IsZero() || event.EndDate.IsZero() {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Title, start_date and end_date are required",
		})
	}

	if err := database.CreateEvent(config.GetDB(), event); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create event",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"event":   event,
	})
}

// UpdateEventAPI updates an existing event
func UpdateEventAPI(c *fiber.Ctx) error {
	event := new(models.Event)
	if err := c.BodyParser(event); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	event.ID = c.Params("id")

	if err := database.UpdateEvent(config.GetDB(), event); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Event not found",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update event",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"event":   event,
	})
}

// DeleteEventAPI deletes an event
func DeleteEventAPI(c *fiber.Ctx) error {
	if err := database.DeleteEvent(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete event",
		})
	}
	return c.JSON(fiber.Map{"success": true})
}
