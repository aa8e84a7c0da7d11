package database

import (
	"database/sql"

	"pelita-schools/app/models"
)

// CreateEvent adds a new event to the database
func CreateEvent(db *sql.DB, event *models.Event) error {
	query := `
		INSERT INTO events (title, description, start_date, end_date, type, location, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(
		query,
		event.Title,
		event.Description,
		event.StartDate,
		event.EndDate,
		event.Type,
		event.Location,
		event.IsPublic,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

// GetEvents retrieves all events ordered by start_date
func GetEvents(db *sql.DB) ([]models.Event, error) {
	query := `
		SELECT id, title, description, start_date, end_date, type, location, is_public, created_at, updated_at
		FROM events
		ORDER BY start_date ASC
	`
	return scanEvents(db.Query(query))
}

// GetPublicUpcomingEvents returns public events that have not ended
// yet, for the landing page.
func GetPublicUpcomingEvents(db *sql.DB) ([]models.Event, error) {
	query := `
		SELECT id, title, description, start_date, end_date, type, location, is_public, created_at, updated_at
		FROM events
		WHERE is_public = true AND end_date >= NOW()
		ORDER BY start_date ASC
	`
	return scanEvents(db.Query(query))
}

func scanEvents(rows *sql.Rows, err error) ([]models.Event, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.StartDate, &e.EndDate,
			&e.Type, &e.Location, &e.IsPublic, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// UpdateEvent updates an existing event
func UpdateEvent(db *sql.DB, event *models.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, start_date = $3, end_date = $4, type = $5, location = $6, is_public = $7, updated_at = NOW()
		WHERE id = $8
	`
	res, err := db.Exec(
		query,
		event.Title, event.Description, event.StartDate, event.EndDate,
		event.Type, event.Location, event.IsPublic, event.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteEvent deletes an event by ID
func DeleteEvent(db *sql.DB, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}
