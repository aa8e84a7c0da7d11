package database

import (
	"database/sql"

	"pelita-schools/app/models"
)

// GetActiveSMTPSetting resolves the single active mail configuration.
// Returns sql.ErrNoRows when mail has not been configured yet.
func GetActiveSMTPSetting(db *sql.DB) (*models.SMTPSetting, error) {
	s := &models.SMTPSetting{}
	query := `
		SELECT id, host, port, secure, username, password, from_name, from_email, is_active, created_at, updated_at
		FROM smtp_settings
		WHERE is_active = true
		ORDER BY updated_at DESC
		LIMIT 1
	`
	err := db.QueryRow(query).Scan(
		&s.ID, &s.Host, &s.Port, &s.Secure, &s.Username, &s.Password,
		&s.FromName, &s.FromEmail, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func GetAllSMTPSettings(db *sql.DB) ([]models.SMTPSetting, error) {
	query := `
		SELECT id, host, port, secure, username, password, from_name, from_email, is_active, created_at, updated_at
		FROM smtp_settings
		ORDER BY created_at DESC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := []models.SMTPSetting{}
	for rows.Next() {
		var s models.SMTPSetting
		if err := rows.Scan(
			&s.ID, &s.Host, &s.Port, &s.Secure, &s.Username, &s.Password,
			&s.FromName, &s.FromEmail, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func CreateSMTPSetting(db *sql.DB, s *models.SMTPSetting) error {
	query := `
		INSERT INTO smtp_settings (host, port, secure, username, password, from_name, from_email, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(
		query,
		s.Host, s.Port, s.Secure, s.Username, s.Password, s.FromName, s.FromEmail,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// UpdateSMTPSetting updates a configuration. A blank password keeps
// the stored one, since list responses never echo credentials back.
func UpdateSMTPSetting(db *sql.DB, s *models.SMTPSetting) error {
	query := `
		UPDATE smtp_settings
		SET host = $1, port = $2, secure = $3, username = $4,
			password = COALESCE(NULLIF($5, ''), password),
			from_name = $6, from_email = $7, updated_at = NOW()
		WHERE id = $8
	`
	res, err := db.Exec(query, s.Host, s.Port, s.Secure, s.Username, s.Password, s.FromName, s.FromEmail, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteSMTPSetting(db *sql.DB, id string) error {
	query := `DELETE FROM smtp_settings WHERE id = $1 AND is_active = false`
	res, err := db.Exec(query, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ActivateSMTPSetting makes one configuration the active one. Both
// statements run in a single transaction so there is never a moment
// with two active rows.
func ActivateSMTPSetting(db *sql.DB, id string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE smtp_settings SET is_active = false WHERE is_active = true`); err != nil {
		return err
	}
	res, err := tx.Exec(`UPDATE smtp_settings SET is_active = true, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return tx.Commit()
}
