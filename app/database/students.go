package database

import (
	"database/sql"
	"fmt"
	"strings"

	"pelita-schools/app/models"
)

// StudentFilters represents filtering options for student listings
type StudentFilters struct {
	Search  string
	ClassID string
	Status  string
	Limit   int
	Offset  int
}

// GetStudents lists student users joined with their profile and class,
// applying the given filters and returning the unpaginated total.
func GetStudents(db *sql.DB, filters StudentFilters) ([]*models.User, int, error) {
	var conditions []string
	var args []interface{}

	conditions = append(conditions, "u.role = 'student'")

	if filters.Status == "inactive" {
		conditions = append(conditions, "u.is_active = false")
	} else if filters.Status != "all" {
		conditions = append(conditions, "u.is_active = true")
	}

	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(u.first_name ILIKE $%d OR u.last_name ILIKE $%d OR u.email ILIKE $%d OR sp.nis ILIKE $%d)", n, n, n, n))
	}

	if filters.ClassID != "" {
		args = append(args, filters.ClassID)
		conditions = append(conditions, fmt.Sprintf("sp.class_id = $%d", len(args)))
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	// Same join as the listing query below, so the count never exceeds
	// the rows the listing can return.
	countQuery := `
		SELECT COUNT(*)
		FROM users u
		JOIN student_profiles sp ON sp.user_id = u.id
	` + where

	var total int
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT u.id, u.email, u.first_name, u.last_name, COALESCE(u.phone, ''), u.role, u.is_active, u.created_at, u.updated_at,
			   sp.id, sp.user_id, sp.nis, COALESCE(sp.class_id::text, ''), COALESCE(c.name, ''),
			   COALESCE(sp.guardian_name, ''), COALESCE(sp.guardian_phone, ''), sp.created_at, sp.updated_at
		FROM users u
		JOIN student_profiles sp ON sp.user_id = u.id
		LEFT JOIN classes c ON c.id = sp.class_id
	` + where + `
		ORDER BY u.last_name ASC, u.first_name ASC
	`

	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filters.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []*models.User
	for rows.Next() {
		u := &models.User{StudentProfile: &models.StudentProfile{}}
		sp := u.StudentProfile
		if err := rows.Scan(
			&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
			&sp.ID, &sp.UserID, &sp.NIS, &sp.ClassID, &sp.ClassName,
			&sp.GuardianName, &sp.GuardianPhone, &sp.CreatedAt, &sp.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		students = append(students, u)
	}
	return students, total, rows.Err()
}

func GetStudentByID(db *sql.DB, userID string) (*models.User, error) {
	u := &models.User{StudentProfile: &models.StudentProfile{}}
	sp := u.StudentProfile
	query := `
		SELECT u.id, u.email, u.first_name, u.last_name, COALESCE(u.phone, ''), u.role, u.is_active, u.created_at, u.updated_at,
			   sp.id, sp.user_id, sp.nis, COALESCE(sp.class_id::text, ''), COALESCE(c.name, ''),
			   COALESCE(sp.guardian_name, ''), COALESCE(sp.guardian_phone, ''), sp.created_at, sp.updated_at
		FROM users u
		JOIN student_profiles sp ON sp.user_id = u.id
		LEFT JOIN classes c ON c.id = sp.class_id
		WHERE u.id = $1 AND u.role = 'student'
	`
	err := db.QueryRow(query, userID).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
		&sp.ID, &sp.UserID, &sp.NIS, &sp.ClassID, &sp.ClassName,
		&sp.GuardianName, &sp.GuardianPhone, &sp.CreatedAt, &sp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// CreateStudent inserts the user row and its student profile in one
// transaction.
func CreateStudent(db *sql.DB, user *models.User) error {
	if user.StudentProfile == nil {
		return fmt.Errorf("student profile is required")
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	userQuery := `
		INSERT INTO users (email, password, first_name, last_name, phone, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'student', true, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRow(
		userQuery,
		strings.ToLower(strings.TrimSpace(user.Email)),
		user.Password, user.FirstName, user.LastName, user.Phone,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return err
	}
	user.Role = models.RoleStudent

	sp := user.StudentProfile
	profileQuery := `
		INSERT INTO student_profiles (user_id, nis, class_id, guardian_name, guardian_phone, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRow(
		profileQuery, user.ID, sp.NIS, sp.ClassID, sp.GuardianName, sp.GuardianPhone,
	).Scan(&sp.ID, &sp.CreatedAt, &sp.UpdatedAt); err != nil {
		return err
	}
	sp.UserID = user.ID

	return tx.Commit()
}

func UpdateStudentProfile(db *sql.DB, sp *models.StudentProfile) error {
	query := `
		UPDATE student_profiles
		SET nis = $1, class_id = NULLIF($2, '')::uuid, guardian_name = $3, guardian_phone = $4, updated_at = NOW()
		WHERE user_id = $5
	`
	res, err := db.Exec(query, sp.NIS, sp.ClassID, sp.GuardianName, sp.GuardianPhone, sp.UserID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
