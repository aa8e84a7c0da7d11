package database

import (
	"database/sql"
	"time"

	"pelita-schools/app/models"
)

func CreateSession(db *sql.DB, sessionID string, userID string, expiresAt time.Time) error {
	query := `INSERT INTO user_sessions (id, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(query, sessionID, userID, expiresAt, time.Now())
	return err
}

// GetSessionByID returns the session only while it is unexpired.
// An expired row behaves exactly like a missing one (sql.ErrNoRows).
func GetSessionByID(db *sql.DB, sessionID string) (*models.Session, error) {
	session := &models.Session{}
	query := `SELECT id, user_id, expires_at, created_at FROM user_sessions WHERE id = $1 AND expires_at > NOW()`

	err := db.QueryRow(query, sessionID).Scan(
		&session.ID, &session.UserID, &session.ExpiresAt, &session.CreatedAt,
	)

	if err != nil {
		return nil, err
	}
	return session, nil
}

// GetSessionWithUser resolves a session token straight to its owning
// active user, including the role-specific profile, in one round
// trip. The profile joins are LEFT so an admin (no profile row) still
// resolves.
func GetSessionWithUser(db *sql.DB, sessionID string) (*models.Session, error) {
	session := &models.Session{User: &models.User{}}
	query := `
		SELECT s.id, s.user_id, s.expires_at, s.created_at,
			   u.id, u.email, u.first_name, u.last_name, COALESCE(u.phone, ''), u.role, u.is_active,
			   sp.id, COALESCE(sp.nis, ''), COALESCE(sp.class_id::text, ''), COALESCE(c.name, ''),
			   COALESCE(sp.guardian_name, ''), COALESCE(sp.guardian_phone, ''),
			   tp.id, COALESCE(tp.nip, ''), COALESCE(tp.subject, '')
		FROM user_sessions s
		JOIN users u ON u.id = s.user_id
		LEFT JOIN student_profiles sp ON sp.user_id = u.id
		LEFT JOIN teacher_profiles tp ON tp.user_id = u.id
		LEFT JOIN classes c ON c.id = sp.class_id
		WHERE s.id = $1 AND s.expires_at > NOW() AND u.is_active = true
	`

	var spID, tpID sql.NullString
	sp := models.StudentProfile{}
	tp := models.TeacherProfile{}

	err := db.QueryRow(query, sessionID).Scan(
		&session.ID, &session.UserID, &session.ExpiresAt, &session.CreatedAt,
		&session.User.ID, &session.User.Email, &session.User.FirstName, &session.User.LastName,
		&session.User.Phone, &session.User.Role, &session.User.IsActive,
		&spID, &sp.NIS, &sp.ClassID, &sp.ClassName, &sp.GuardianName, &sp.GuardianPhone,
		&tpID, &tp.NIP, &tp.Subject,
	)

	if err != nil {
		return nil, err
	}

	if spID.Valid {
		sp.ID = spID.String
		sp.UserID = session.User.ID
		session.User.StudentProfile = &sp
	}
	if tpID.Valid {
		tp.ID = tpID.String
		tp.UserID = session.User.ID
		session.User.TeacherProfile = &tp
	}
	return session, nil
}

func DeleteSession(db *sql.DB, sessionID string) error {
	query := `DELETE FROM user_sessions WHERE id = $1`
	_, err := db.Exec(query, sessionID)
	return err
}

// DeleteSessionsByUser invalidates every session belonging to a user,
// e.g. after a password change or deactivation. Relies on the
// user_id index.
func DeleteSessionsByUser(db *sql.DB, userID string) error {
	query := `DELETE FROM user_sessions WHERE user_id = $1`
	_, err := db.Exec(query, userID)
	return err
}

// DeleteOtherSessions keeps the current session alive but drops the
// rest, so a password change does not log out the changing client.
func DeleteOtherSessions(db *sql.DB, userID, keepSessionID string) error {
	query := `DELETE FROM user_sessions WHERE user_id = $1 AND id <> $2`
	_, err := db.Exec(query, userID, keepSessionID)
	return err
}

// DeleteExpiredSessions is the eager half of session cleanup; the
// lookup queries above are the lazy half.
func DeleteExpiredSessions(db *sql.DB) (int64, error) {
	query := `DELETE FROM user_sessions WHERE expires_at <= NOW()`
	res, err := db.Exec(query)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
