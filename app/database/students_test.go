package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func studentListRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "first_name", "last_name", "phone", "role", "is_active", "created_at", "updated_at",
		"sp_id", "user_id", "nis", "class_id", "class_name", "guardian_name", "guardian_phone", "sp_created_at", "sp_updated_at",
	}).AddRow(
		"user-1", "budi@pelita.sch.id", "Budi", "Santoso", "", "student", true, now, now,
		"sp-1", "user-1", "2024001", "", "7A", "", "", now, now,
	)
}

func TestGetStudentsCountMatchesListing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	now := time.Now()

	// Both queries must join student_profiles the same way; a count
	// over bare users rows would include users without a profile and
	// drift from the listing
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users u JOIN student_profiles sp ON sp\.user_id = u\.id`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`FROM users u JOIN student_profiles sp ON sp\.user_id = u\.id`).
		WillReturnRows(studentListRows(now))

	students, total, err := GetStudents(db, StudentFilters{})
	if err != nil {
		t.Fatalf("GetStudents() error = %v", err)
	}
	if total != 1 {
		t.Errorf("total = %d, want 1", total)
	}
	if len(students) != total {
		t.Errorf("len(students) = %d, total = %d, want them equal", len(students), total)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetStudentsSearchFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users u JOIN student_profiles`).
		WithArgs("%budi%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`sp\.nis ILIKE \$1`).
		WithArgs("%budi%").
		WillReturnRows(studentListRows(now))

	students, _, err := GetStudents(db, StudentFilters{Search: "budi"})
	if err != nil {
		t.Fatalf("GetStudents() error = %v", err)
	}
	if len(students) != 1 || students[0].StudentProfile.NIS != "2024001" {
		t.Fatalf("students = %+v, want the single matching student", students)
	}
}
