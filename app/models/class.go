package models

import "time"

// Class represents a homeroom class (e.g. "7A")
type Class struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Level             int       `json:"level"`
	HomeroomTeacherID string    `json:"homeroom_teacher_id,omitempty"`
	HomeroomTeacher   string    `json:"homeroom_teacher,omitempty"`
	StudentCount      int       `json:"student_count"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
