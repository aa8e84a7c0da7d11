package database

import (
	"database/sql"
	"fmt"
	"strings"

	"pelita-schools/app/models"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, COALESCE(phone, ''), role, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Phone, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, COALESCE(phone, ''), role, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Phone, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a user row. The caller supplies an already-hashed
// password and a valid role; role is never updated afterwards.
func CreateUser(db *sql.DB, user *models.User) error {
	if !models.ValidRole(user.Role) {
		return fmt.Errorf("invalid role: %s", user.Role)
	}
	query := `
		INSERT INTO users (email, password, first_name, last_name, phone, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, true, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(
		query,
		strings.ToLower(strings.TrimSpace(user.Email)),
		user.Password,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func UpdateUser(db *sql.DB, user *models.User) error {
	query := `UPDATE users SET first_name = $1, last_name = $2, phone = $3, updated_at = NOW() WHERE id = $4`
	_, err := db.Exec(query, user.FirstName, user.LastName, user.Phone, user.ID)
	return err
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

// DeactivateUser soft-disables a user. Rows are never physically
// deleted through the application; existing sessions are removed so
// the account stops resolving immediately.
func DeactivateUser(db *sql.DB, userID string) error {
	query := `UPDATE users SET is_active = false, deleted_at = NOW(), updated_at = NOW() WHERE id = $1`
	if _, err := db.Exec(query, userID); err != nil {
		return err
	}
	return DeleteSessionsByUser(db, userID)
}

func CountUsersByRole(db *sql.DB, role string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE role = $1 AND is_active = true`
	err := db.QueryRow(query, role).Scan(&count)
	return count, err
}
