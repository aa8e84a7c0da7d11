package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGetSessionByIDGuardsOnExpiry(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	// The lookup must exclude expired rows in the query itself; an
	// expired session behaves like a missing one
	mock.ExpectQuery(`FROM user_sessions WHERE id = \$1 AND expires_at > NOW\(\)`).
		WithArgs("expired-session").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "expires_at", "created_at"}))

	_, err = GetSessionByID(db, "expired-session")
	if err != sql.ErrNoRows {
		t.Errorf("GetSessionByID() error = %v, want sql.ErrNoRows", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetSessionByIDUnexpired(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	expiry := time.Now().Add(12 * time.Hour)
	mock.ExpectQuery(`FROM user_sessions WHERE id = \$1 AND expires_at > NOW\(\)`).
		WithArgs("live-session").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "expires_at", "created_at"}).
			AddRow("live-session", "user-1", expiry, time.Now()))

	session, err := GetSessionByID(db, "live-session")
	if err != nil {
		t.Fatalf("GetSessionByID() error = %v", err)
	}
	if session.UserID != "user-1" {
		t.Errorf("session.UserID = %q, want user-1", session.UserID)
	}
	if !session.ExpiresAt.After(time.Now()) {
		t.Errorf("session.ExpiresAt = %v, want future", session.ExpiresAt)
	}
}

func TestGetSessionWithUserRequiresActiveUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	// Deactivated owners must not resolve either
	mock.ExpectQuery(`s\.expires_at > NOW\(\) AND u\.is_active = true`).
		WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := GetSessionWithUser(db, "sess-1"); err != sql.ErrNoRows {
		t.Errorf("GetSessionWithUser() error = %v, want sql.ErrNoRows", err)
	}
}

func TestGetSessionWithUserLoadsStudentProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "expires_at", "created_at",
		"uid", "email", "first_name", "last_name", "phone", "role", "is_active",
		"sp_id", "nis", "class_id", "class_name", "guardian_name", "guardian_phone",
		"tp_id", "nip", "subject",
	}).AddRow(
		"sess-1", "user-1", now.Add(12*time.Hour), now,
		"user-1", "budi@pelita.sch.id", "Budi", "Santoso", "", "student", true,
		"sp-1", "2024001", "class-1", "7A", "Siti Santoso", "",
		nil, "", "",
	)

	mock.ExpectQuery(`LEFT JOIN student_profiles sp ON sp\.user_id = u\.id`).
		WithArgs("sess-1").
		WillReturnRows(rows)

	session, err := GetSessionWithUser(db, "sess-1")
	if err != nil {
		t.Fatalf("GetSessionWithUser() error = %v", err)
	}
	sp := session.User.StudentProfile
	if sp == nil {
		t.Fatal("session.User.StudentProfile = nil, want loaded profile")
	}
	if sp.NIS != "2024001" || sp.ClassName != "7A" {
		t.Errorf("profile = %+v, want nis 2024001 in class 7A", sp)
	}
	if session.User.TeacherProfile != nil {
		t.Errorf("TeacherProfile = %+v, want nil for a student", session.User.TeacherProfile)
	}
}

func TestDeleteSessionsByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM user_sessions WHERE user_id = \$1`).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := DeleteSessionsByUser(db, "user-1"); err != nil {
		t.Fatalf("DeleteSessionsByUser() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteOtherSessionsKeepsCurrent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM user_sessions WHERE user_id = \$1 AND id <> \$2`).
		WithArgs("user-1", "current-session").
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := DeleteOtherSessions(db, "user-1", "current-session"); err != nil {
		t.Fatalf("DeleteOtherSessions() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM user_sessions WHERE expires_at <= NOW\(\)`).
		WillReturnResult(sqlmock.NewResult(0, 7))

	purged, err := DeleteExpiredSessions(db)
	if err != nil {
		t.Fatalf("DeleteExpiredSessions() error = %v", err)
	}
	if purged != 7 {
		t.Errorf("DeleteExpiredSessions() = %d, want 7", purged)
	}
}
