package students

import (
	"database/sql"
	"log"

	"pelita-schools/app/config"
	"pelita-schools/app/database"
	"pelita-schools/app/models"
	"pelita-schools/app/routes/auth"
	"pelita-schools/app/services"

	"github.com/gofiber/fiber/v2"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	filters := database.StudentFilters{
		Search:  c.Query("search"),
		ClassID: c.Query("class_id"),
		Status:  c.Query("status"),
		Limit:   c.QueryInt("limit", 0),
		Offset:  c.QueryInt("offset", 0),
	}

	students, total, err := database.GetStudents(config.GetDB(), filters)
	if err != nil {
		log.Printf("Error fetching students: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"students":    students,
		"count":       len(students),
		"total_count": total,
	})
}

func GetStudentAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch student"})
	}
	return c.JSON(fiber.Map{"success": true, "student": student})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	type CreateStudentRequest struct {
		Email         string `json:"email"`
		Password      string `json:"password"`
		FirstName     string `json:"first_name"`
		LastName      string `json:"last_name"`
		Phone         string `json:"phone"`
		NIS           string `json:"nis"`
		ClassID       string `json:"class_id"`
		GuardianName  string `json:"guardian_name"`
		GuardianPhone string `json:"guardian_phone"`
	}

	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.Email == "" || req.FirstName == "" || req.NIS == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Email, first name and NIS are required"})
	}
	if len(req.Password) < 8 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Password must be at least 8 characters"})
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to hash password"})
	}

	student := &models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		StudentProfile: &models.StudentProfile{
			NIS:           req.NIS,
			ClassID:       req.ClassID,
			GuardianName:  req.GuardianName,
			GuardianPhone: req.GuardianPhone,
		},
	}

	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		log.Printf("Error creating student: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create student"})
	}

	// Welcome mail is best effort; account creation already succeeded
	mailer := services.NewMailer(config.GetDB())
	if err := mailer.SendEmail([]string{student.Email}, "Selamat Datang di Pelita Schools",
		"<p>Akun siswa Anda telah dibuat. Silakan masuk dengan email ini.</p>"); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", student.Email, err)
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "student": student})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	type UpdateStudentRequest struct {
		FirstName     string `json:"first_name"`
		LastName      string `json:"last_name"`
		Phone         string `json:"phone"`
		NIS           string `json:"nis"`
		ClassID       string `json:"class_id"`
		GuardianName  string `json:"guardian_name"`
		GuardianPhone string `json:"guardian_phone"`
	}

	var req UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	userID := c.Params("id")
	db := config.GetDB()

	user := &models.User{ID: userID, FirstName: req.FirstName, LastName: req.LastName, Phone: req.Phone}
	if err := database.UpdateUser(db, user); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update student"})
	}

	profile := &models.StudentProfile{
		UserID:        userID,
		NIS:           req.NIS,
		ClassID:       req.ClassID,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
	}
	if err := database.UpdateStudentProfile(db, profile); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update student profile"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Student updated successfully"})
}

// DeactivateStudentAPI soft-disables the account; records are kept
func DeactivateStudentAPI(c *fiber.Ctx) error {
	if err := database.DeactivateUser(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to deactivate student"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Student deactivated"})
}
