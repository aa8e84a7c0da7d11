package teachers

import (
	"database/sql"
	"log"

	"pelita-schools/app/config"
	"pelita-schools/app/database"
	"pelita-schools/app/models"
	"pelita-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func GetTeachersAPI(c *fiber.Ctx) error {
	teachers, err := database.GetTeachers(config.GetDB(), c.Query("search"))
	if err != nil {
		log.Printf("Error fetching teachers: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch teachers"})
	}
	return c.JSON(fiber.Map{"success": true, "teachers": teachers, "count": len(teachers)})
}

func GetTeacherAPI(c *fiber.Ctx) error {
	teacher, err := database.GetTeacherByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Teacher not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch teacher"})
	}
	return c.JSON(fiber.Map{"success": true, "teacher": teacher})
}

func CreateTeacherAPI(c *fiber.Ctx) error {
	type CreateTeacherRequest struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Phone     string `json:"phone"`
		NIP       string `json:"nip"`
		Subject   string `json:"subject"`
	}

	var req CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.Email == "" || req.FirstName == "" || req.NIP == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Email, first name and NIP are required"})
	}
	if len(req.Password) < 8 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Password must be at least 8 characters"})
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to hash password"})
	}

	teacher := &models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		TeacherProfile: &models.TeacherProfile{
			NIP:     req.NIP,
			Subject: req.Subject,
		},
	}

	if err := database.CreateTeacher(config.GetDB(), teacher); err != nil {
		log.Printf("Error creating teacher: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create teacher"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "teacher": teacher})
}

func UpdateTeacherAPI(c *fiber.Ctx) error {
	type UpdateTeacherRequest struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Phone     string `json:"phone"`
		NIP       string `json:"nip"`
		Subject   string `json:"subject"`
	}

	var req UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	userID := c.Params("id")
	db := config.GetDB()

	user := &models.User{ID: userID, FirstName: req.FirstName, LastName: req.LastName, Phone: req.Phone}
	if err := database.UpdateUser(db, user); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update teacher"})
	}

	profile := &models.TeacherProfile{UserID: userID, NIP: req.NIP, Subject: req.Subject}
	if err := database.UpdateTeacherProfile(db, profile); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Teacher not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update teacher profile"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Teacher updated successfully"})
}

func DeactivateTeacherAPI(c *fiber.Ctx) error {
	if err := database.DeactivateUser(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to deactivate teacher"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Teacher deactivated"})
}
