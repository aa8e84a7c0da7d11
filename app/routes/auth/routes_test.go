package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pelita-schools/app/config"
	"pelita-schools/app/models"
	"pelita-schools/app/state"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
)

func newAuthTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	config.AppConfig = &config.Config{DB: db}

	app := fiber.New()
	app.Get("/protected", AuthMiddleware, func(c *fiber.Ctx) error {
		st := c.Locals("auth").(*state.AuthState)
		return c.JSON(fiber.Map{"success": true, "role": st.UserRole()})
	})
	app.Get("/admin", AuthMiddleware, AdminOnly(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	app.Get("/me", AuthMiddleware, MeAPI)
	return app, mock
}

func sessionRows(role string) *sqlmock.Rows {
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "expires_at", "created_at",
		"id", "email", "first_name", "last_name", "phone", "role", "is_active",
		"sp_id", "nis", "class_id", "class_name", "guardian_name", "guardian_phone",
		"tp_id", "nip", "subject",
	})

	var spID, tpID interface{}
	nis, className, nip, subject := "", "", "", ""
	switch role {
	case models.RoleStudent:
		spID, nis, className = "sp-1", "2024001", "7A"
	case models.RoleTeacher:
		tpID, nip, subject = "tp-1", "19800101", "Matematika"
	}

	rows.AddRow("sess-1", "user-1", now.Add(12*time.Hour), now,
		"user-1", "a@pelita.sch.id", "Ayu", "Lestari", "", role, true,
		spID, nis, "", className, "", "",
		tpID, nip, subject)
	return rows
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	app, _ := newAuthTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareInvalidSession(t *testing.T) {
	app, mock := newAuthTestApp(t)

	mock.ExpectQuery(`FROM user_sessions s`).
		WithArgs("dead-session").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "dead-session"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareValidSession(t *testing.T) {
	app, mock := newAuthTestApp(t)

	mock.ExpectQuery(`FROM user_sessions s`).
		WithArgs("sess-1").
		WillReturnRows(sessionRows(models.RoleTeacher))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-1"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var out struct {
		Success bool   `json:"success"`
		Role    string `json:"role"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !out.Success || out.Role != models.RoleTeacher {
		t.Errorf("response = %+v, want success with teacher role", out)
	}
}

func TestAuthMiddlewareBearerFallback(t *testing.T) {
	app, mock := newAuthTestApp(t)

	mock.ExpectQuery(`FROM user_sessions s`).
		WithArgs("sess-1").
		WillReturnRows(sessionRows(models.RoleAdmin))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer sess-1")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestMeAPICarriesStudentProfile(t *testing.T) {
	app, mock := newAuthTestApp(t)

	mock.ExpectQuery(`FROM user_sessions s`).
		WithArgs("sess-1").
		WillReturnRows(sessionRows(models.RoleStudent))

	req := httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-1"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var out struct {
		Success bool   `json:"success"`
		Role    string `json:"role"`
		Profile *struct {
			NIS       string `json:"nis"`
			ClassName string `json:"class_name"`
		} `json:"profile"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !out.Success || out.Role != models.RoleStudent {
		t.Fatalf("response = %+v, want success with student role", out)
	}
	if out.Profile == nil {
		t.Fatal("profile = null, want the student profile")
	}
	if out.Profile.NIS != "2024001" || out.Profile.ClassName != "7A" {
		t.Errorf("profile = %+v, want nis 2024001 in class 7A", out.Profile)
	}
}

func TestMeAPIAdminHasNoProfile(t *testing.T) {
	app, mock := newAuthTestApp(t)

	mock.ExpectQuery(`FROM user_sessions s`).
		WithArgs("sess-1").
		WillReturnRows(sessionRows(models.RoleAdmin))

	req := httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-1"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}

	body, _ := io.ReadAll(resp.Body)
	var out struct {
		Profile interface{} `json:"profile"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if out.Profile != nil {
		t.Errorf("profile = %v, want null for admin", out.Profile)
	}
}

func TestAdminOnlyRejectsTeacher(t *testing.T) {
	app, mock := newAuthTestApp(t)

	mock.ExpectQuery(`FROM user_sessions s`).
		WithArgs("sess-1").
		WillReturnRows(sessionRows(models.RoleTeacher))

	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-1"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != 403 {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
}
