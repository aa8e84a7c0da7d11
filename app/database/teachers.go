package database

import (
	"database/sql"
	"fmt"
	"strings"

	"pelita-schools/app/models"
)

func GetTeachers(db *sql.DB, search string) ([]*models.User, error) {
	var args []interface{}
	query := `
		SELECT u.id, u.email, u.first_name, u.last_name, COALESCE(u.phone, ''), u.role, u.is_active, u.created_at, u.updated_at,
			   tp.id, tp.user_id, tp.nip, COALESCE(tp.subject, ''), tp.created_at, tp.updated_at
		FROM users u
		JOIN teacher_profiles tp ON tp.user_id = u.id
		WHERE u.role = 'teacher' AND u.is_active = true
	`
	if search != "" {
		args = append(args, "%"+search+"%")
		query += ` AND (u.first_name ILIKE $1 OR u.last_name ILIKE $1 OR u.email ILIKE $1 OR tp.nip ILIKE $1)`
	}
	query += ` ORDER BY u.last_name ASC, u.first_name ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.User
	for rows.Next() {
		u := &models.User{TeacherProfile: &models.TeacherProfile{}}
		tp := u.TeacherProfile
		if err := rows.Scan(
			&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
			&tp.ID, &tp.UserID, &tp.NIP, &tp.Subject, &tp.CreatedAt, &tp.UpdatedAt,
		); err != nil {
			return nil, err
		}
		teachers = append(teachers, u)
	}
	return teachers, rows.Err()
}

func GetTeacherByID(db *sql.DB, userID string) (*models.User, error) {
	u := &models.User{TeacherProfile: &models.TeacherProfile{}}
	tp := u.TeacherProfile
	query := `
		SELECT u.id, u.email, u.first_name, u.last_name, COALESCE(u.phone, ''), u.role, u.is_active, u.created_at, u.updated_at,
			   tp.id, tp.user_id, tp.nip, COALESCE(tp.subject, ''), tp.created_at, tp.updated_at
		FROM users u
		JOIN teacher_profiles tp ON tp.user_id = u.id
		WHERE u.id = $1 AND u.role = 'teacher'
	`
	err := db.QueryRow(query, userID).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
		&tp.ID, &tp.UserID, &tp.NIP, &tp.Subject, &tp.CreatedAt, &tp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// CreateTeacher inserts the user row and its teacher profile in one
// transaction.
func CreateTeacher(db *sql.DB, user *models.User) error {
	if user.TeacherProfile == nil {
		return fmt.Errorf("teacher profile is required")
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	userQuery := `
		INSERT INTO users (email, password, first_name, last_name, phone, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'teacher', true, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRow(
		userQuery,
		strings.ToLower(strings.TrimSpace(user.Email)),
		user.Password, user.FirstName, user.LastName, user.Phone,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return err
	}
	user.Role = models.RoleTeacher

	tp := user.TeacherProfile
	profileQuery := `
		INSERT INTO teacher_profiles (user_id, nip, subject, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRow(profileQuery, user.ID, tp.NIP, tp.Subject).Scan(&tp.ID, &tp.CreatedAt, &tp.UpdatedAt); err != nil {
		return err
	}
	tp.UserID = user.ID

	return tx.Commit()
}

func UpdateTeacherProfile(db *sql.DB, tp *models.TeacherProfile) error {
	query := `UPDATE teacher_profiles SET nip = $1, subject = $2, updated_at = NOW() WHERE user_id = $3`
	res, err := db.Exec(query, tp.NIP, tp.Subject, tp.UserID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
