package database

import (
	"database/sql"

	"pelita-schools/app/models"
)

// GetActiveLandingMedia returns the public projection of landing media:
// active rows only, ordered by urutan ascending.
func GetActiveLandingMedia(db *sql.DB) ([]models.PublicLandingMedia, error) {
	query := `
		SELECT id, tipe, judul, url, aspect_ratio, urutan
		FROM landing_media
		WHERE is_active = true
		ORDER BY urutan ASC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	media := []models.PublicLandingMedia{}
	for rows.Next() {
		var m models.PublicLandingMedia
		if err := rows.Scan(&m.ID, &m.Tipe, &m.Judul, &m.URL, &m.AspectRatio, &m.Urutan); err != nil {
			return nil, err
		}
		media = append(media, m)
	}
	return media, rows.Err()
}

// GetAllLandingMedia returns every row, inactive included, for the
// admin panel.
func GetAllLandingMedia(db *sql.DB) ([]models.LandingMedia, error) {
	query := `
		SELECT id, tipe, judul, url, aspect_ratio, urutan, is_active, created_at, updated_at
		FROM landing_media
		ORDER BY urutan ASC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	media := []models.LandingMedia{}
	for rows.Next() {
		var m models.LandingMedia
		if err := rows.Scan(
			&m.ID, &m.Tipe, &m.Judul, &m.URL, &m.AspectRatio,
			&m.Urutan, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		media = append(media, m)
	}
	return media, rows.Err()
}

func CreateLandingMedia(db *sql.DB, m *models.LandingMedia) error {
	query := `
		INSERT INTO landing_media (tipe, judul, url, aspect_ratio, urutan, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(
		query,
		m.Tipe,
		m.Judul,
		m.URL,
		m.AspectRatio,
		m.Urutan,
		m.IsActive,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func UpdateLandingMedia(db *sql.DB, m *models.LandingMedia) error {
	query := `
		UPDATE landing_media
		SET tipe = $1, judul = $2, url = $3, aspect_ratio = $4, urutan = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
	`
	res, err := db.Exec(query, m.Tipe, m.Judul, m.URL, m.AspectRatio, m.Urutan, m.IsActive, m.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteLandingMedia(db *sql.DB, id string) error {
	query := `DELETE FROM landing_media WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}

// SetLandingMediaActive soft-enables or soft-disables a row
func SetLandingMediaActive(db *sql.DB, id string, active bool) error {
	query := `UPDATE landing_media SET is_active = $1, updated_at = NOW() WHERE id = $2`
	res, err := db.Exec(query, active, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ReorderLandingMedia applies a new urutan value per id in one
// transaction so a half-applied reorder never becomes visible.
func ReorderLandingMedia(db *sql.DB, order map[string]int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for id, urutan := range order {
		if _, err := tx.Exec(`UPDATE landing_media SET urutan = $1, updated_at = NOW() WHERE id = $2`, urutan, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}
