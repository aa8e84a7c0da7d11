// Package state holds the per-request authentication state. The auth
// middleware builds one AuthState per request and carries it through
// the fiber context; handlers read the derived getters instead of
// poking raw locals. Nothing here outlives the request.
package state

import "pelita-schools/app/models"

// AuthState distinguishes "not yet determined" (loading) from
// "determined absent" (loading done, no user).
type AuthState struct {
	user    *models.User
	loading bool
}

// New returns a state that is still loading with no user resolved.
func New() *AuthState {
	return &AuthState{loading: true}
}

// SetUser records the resolved user and ends the loading phase.
func (s *AuthState) SetUser(u *models.User) {
	s.user = u
	s.loading = false
}

func (s *AuthState) SetLoading(v bool) {
	s.loading = v
}

// ClearUser drops the user and ends the loading phase; the state is
// then "determined absent".
func (s *AuthState) ClearUser() {
	s.user = nil
	s.loading = false
}

func (s *AuthState) IsLoading() bool {
	return s.loading
}

func (s *AuthState) IsAuthenticated() bool {
	return s.user != nil
}

func (s *AuthState) User() *models.User {
	return s.user
}

// UserRole returns the role of the authenticated user, or "" when
// unauthenticated.
func (s *AuthState) UserRole() string {
	if s.user == nil {
		return ""
	}
	return s.user.Role
}

// Profile returns the role-specific profile view of the current user,
// or nil when absent.
func (s *AuthState) Profile() interface{} {
	if s.user == nil {
		return nil
	}
	switch s.user.Role {
	case models.RoleStudent:
		if s.user.StudentProfile != nil {
			return s.user.StudentProfile
		}
	case models.RoleTeacher:
		if s.user.TeacherProfile != nil {
			return s.user.TeacherProfile
		}
	}
	return nil
}
