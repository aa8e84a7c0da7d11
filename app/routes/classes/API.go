package classes

import (
	"database/sql"
	"log"

	"pelita-schools/app/config"
	"pelita-schools/app/database"
	"pelita-schools/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetClassesAPI(c *fiber.Ctx) error {
	classes, err := database.GetClasses(config.GetDB())
	if err != nil {
		log.Printf("Error fetching classes: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch classes"})
	}
	return c.JSON(fiber.Map{"success": true, "classes": classes, "count": len(classes)})
}

func GetClassAPI(c *fiber.Ctx) error {
	class, err := database.GetClassByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Class not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch class"})
	}
	return c.JSON(fiber.Map{"success": true, "class": class})
}

func GetClassRosterAPI(c *fiber.Ctx) error {
	students, err := database.GetClassRoster(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch class roster"})
	}
	return c.JSON(fiber.Map{"success": true, "students": students, "count": len(students)})
}

func CreateClassAPI(c *fiber.Ctx) error {
	class := new(models.Class)
	if err := c.BodyParser(class); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if class.Name == "" || class.Level == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Name and level are required"})
	}

	if err := database.CreateClass(config.GetDB(), class); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create class"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "class": class})
}

func UpdateClassAPI(c *fiber.Ctx) error {
	class := new(models.Class)
	if err := c.BodyParser(class); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	class.ID = c.Params("id")

	if err := database.UpdateClass(config.GetDB(), class); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Class not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update class"})
	}
	return c.JSON(fiber.Map{"success": true, "class": class})
}

// DeleteClassAPI soft-disables a class; enrolled students keep their
// historical assignment.
func DeleteClassAPI(c *fiber.Ctx) error {
	if err := database.DeleteClass(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Class not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete class"})
	}
	return c.JSON(fiber.Map{"success": true})
}
