package state

import (
	"testing"

	"pelita-schools/app/models"
)

func TestNewStartsLoading(t *testing.T) {
	s := New()

	if !s.IsLoading() {
		t.Error("New() IsLoading() = false, want true")
	}
	if s.User() != nil {
		t.Errorf("New() User() = %v, want nil", s.User())
	}
	if s.IsAuthenticated() {
		t.Error("New() IsAuthenticated() = true, want false")
	}
	if s.UserRole() != "" {
		t.Errorf("New() UserRole() = %q, want empty", s.UserRole())
	}
}

func TestSetUser(t *testing.T) {
	s := New()
	u := &models.User{ID: "u1", Email: "a@x.com", Role: models.RoleTeacher}

	s.SetUser(u)

	if s.IsLoading() {
		t.Error("SetUser() left IsLoading() = true")
	}
	if !s.IsAuthenticated() {
		t.Error("SetUser() IsAuthenticated() = false, want true")
	}
	if s.UserRole() != models.RoleTeacher {
		t.Errorf("UserRole() = %q, want %q", s.UserRole(), models.RoleTeacher)
	}
	if s.User() != u {
		t.Error("User() did not return the user that was set")
	}
}

func TestClearUser(t *testing.T) {
	s := New()
	s.SetUser(&models.User{ID: "u1", Role: models.RoleAdmin})

	s.ClearUser()

	if s.IsAuthenticated() {
		t.Error("ClearUser() IsAuthenticated() = true, want false")
	}
	if s.UserRole() != "" {
		t.Errorf("ClearUser() UserRole() = %q, want empty", s.UserRole())
	}
	if s.IsLoading() {
		t.Error("ClearUser() IsLoading() = true, want false (determined absent)")
	}
}

func TestSetLoading(t *testing.T) {
	s := New()
	s.ClearUser()

	s.SetLoading(true)
	if !s.IsLoading() {
		t.Error("SetLoading(true) IsLoading() = false")
	}
	s.SetLoading(false)
	if s.IsLoading() {
		t.Error("SetLoading(false) IsLoading() = true")
	}
}

func TestProfile(t *testing.T) {
	sp := &models.StudentProfile{ID: "sp1", NIS: "12345"}
	tp := &models.TeacherProfile{ID: "tp1", NIP: "67890"}

	tests := []struct {
		name string
		user *models.User
		want interface{}
	}{
		{"nil user", nil, nil},
		{"student with profile", &models.User{Role: models.RoleStudent, StudentProfile: sp}, sp},
		{"teacher with profile", &models.User{Role: models.RoleTeacher, TeacherProfile: tp}, tp},
		{"admin has no profile", &models.User{Role: models.RoleAdmin}, nil},
		{"student missing profile row", &models.User{Role: models.RoleStudent}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			if tt.user != nil {
				s.SetUser(tt.user)
			} else {
				s.ClearUser()
			}
			if got := s.Profile(); got != tt.want {
				t.Errorf("Profile() = %v, want %v", got, tt.want)
			}
		})
	}
}
