// Command add_user provisions an admin account from the command line.
package main

import (
	"flag"
	"fmt"
	"log"

	"pelita-schools/app/config"
	"pelita-schools/app/database"
	"pelita-schools/app/models"
	"pelita-schools/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "initial password (min 8 characters)")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	flag.Parse()

	if *email == "" || len(*password) < 8 || *firstName == "" {
		log.Fatal("Usage: add_user -email a@school.id -password secret123 -first-name Name [-last-name Name]")
	}

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      models.RoleAdmin,
	}

	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Error creating user:", err)
	}

	fmt.Printf("Admin created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
