package database

import (
	"database/sql"

	"pelita-schools/app/models"
)

func GetClasses(db *sql.DB) ([]models.Class, error) {
	query := `
		SELECT c.id, c.name, c.level, COALESCE(c.homeroom_teacher_id::text, ''),
			   COALESCE(u.first_name || ' ' || u.last_name, ''),
			   (SELECT COUNT(*) FROM student_profiles sp JOIN users su ON su.id = sp.user_id
				WHERE sp.class_id = c.id AND su.is_active = true),
			   c.is_active, c.created_at, c.updated_at
		FROM classes c
		LEFT JOIN users u ON u.id = c.homeroom_teacher_id
		ORDER BY c.level ASC, c.name ASC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []models.Class{}
	for rows.Next() {
		var c models.Class
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Level, &c.HomeroomTeacherID, &c.HomeroomTeacher,
			&c.StudentCount, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

func GetClassByID(db *sql.DB, id string) (*models.Class, error) {
	c := &models.Class{}
	query := `
		SELECT c.id, c.name, c.level, COALESCE(c.homeroom_teacher_id::text, ''),
			   COALESCE(u.first_name || ' ' || u.last_name, ''),
			   (SELECT COUNT(*) FROM student_profiles sp JOIN users su ON su.id = sp.user_id
				WHERE sp.class_id = c.id AND su.is_active = true),
			   c.is_active, c.created_at, c.updated_at
		FROM classes c
		LEFT JOIN users u ON u.id = c.homeroom_teacher_id
		WHERE c.id = $1
	`
	err := db.QueryRow(query, id).Scan(
		&c.ID, &c.Name, &c.Level, &c.HomeroomTeacherID, &c.HomeroomTeacher,
		&c.StudentCount, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func CreateClass(db *sql.DB, c *models.Class) error {
	query := `
		INSERT INTO classes (name, level, homeroom_teacher_id, is_active, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, true, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query, c.Name, c.Level, c.HomeroomTeacherID).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func UpdateClass(db *sql.DB, c *models.Class) error {
	query := `
		UPDATE classes
		SET name = $1, level = $2, homeroom_teacher_id = NULLIF($3, '')::uuid, is_active = $4, updated_at = NOW()
		WHERE id = $5
	`
	res, err := db.Exec(query, c.Name, c.Level, c.HomeroomTeacherID, c.IsActive, c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteClass(db *sql.DB, id string) error {
	query := `UPDATE classes SET is_active = false, updated_at = NOW() WHERE id = $1`
	res, err := db.Exec(query, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetClassRoster lists the active students assigned to a class
func GetClassRoster(db *sql.DB, classID string) ([]*models.User, error) {
	students, _, err := GetStudents(db, StudentFilters{ClassID: classID})
	return students, err
}

func CountActiveClasses(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM classes WHERE is_active = true`).Scan(&count)
	return count, err
}
