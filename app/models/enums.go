package models

// User roles. A user's role is fixed at creation and never changes.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Landing media types shown on the public landing page
const (
	MediaTypeHero    = "hero"
	MediaTypeGallery = "gallery"
	MediaTypeVideo   = "video"
)

// ValidRole reports whether name is one of the known roles.
func ValidRole(name string) bool {
	switch name {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// ValidMediaType reports whether t is a known landing media type.
func ValidMediaType(t string) bool {
	switch t {
	case MediaTypeHero, MediaTypeGallery, MediaTypeVideo:
		return true
	}
	return false
}
