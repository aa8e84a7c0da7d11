package models

import "time"

// StudentProfile holds the student-specific half of a user record
type StudentProfile struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	NIS           string    `json:"nis"` // national student number
	ClassID       string    `json:"class_id,omitempty"`
	ClassName     string    `json:"class_name,omitempty"`
	GuardianName  string    `json:"guardian_name,omitempty"`
	GuardianPhone string    `json:"guardian_phone,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TeacherProfile holds the teacher-specific half of a user record
type TeacherProfile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	NIP       string    `json:"nip"` // employee number
	Subject   string    `json:"subject,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
