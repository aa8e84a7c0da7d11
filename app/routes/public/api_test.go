package public

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"sort"
	"testing"

	"pelita-schools/app/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	config.AppConfig = &config.Config{DB: db}

	app := fiber.New()
	SetupPublicRoutes(app)
	return app, mock
}

func TestGetLandingMediaEnvelope(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`FROM landing_media`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tipe", "judul", "url", "aspect_ratio", "urutan"}).
			AddRow("m1", "hero", "Selamat Datang", "https://cdn.pelita.sch.id/hero.jpg", "16:9", 1).
			AddRow("m2", "gallery", "Gedung", "https://cdn.pelita.sch.id/g.jpg", "4:3", 2))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/public/landing-media", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Success bool                     `json:"success"`
		Data    []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	if !envelope.Success {
		t.Error("success = false, want true")
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("data length = %d, want 2", len(envelope.Data))
	}

	// The public projection exposes exactly the allow-listed fields
	wantKeys := []string{"aspectRatio", "id", "judul", "tipe", "url", "urutan"}
	var gotKeys []string
	for k := range envelope.Data[0] {
		gotKeys = append(gotKeys, k)
	}
	sort.Strings(gotKeys)
	if len(gotKeys) != len(wantKeys) {
		t.Fatalf("response fields = %v, want %v", gotKeys, wantKeys)
	}
	for i := range wantKeys {
		if gotKeys[i] != wantKeys[i] {
			t.Fatalf("response fields = %v, want %v", gotKeys, wantKeys)
		}
	}

	if envelope.Data[0]["id"] != "m1" || envelope.Data[1]["id"] != "m2" {
		t.Errorf("data order = [%v %v], want [m1 m2]", envelope.Data[0]["id"], envelope.Data[1]["id"])
	}
}

func TestGetLandingMediaFailureEnvelope(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`FROM landing_media`).WillReturnError(io.ErrUnexpectedEOF)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/public/landing-media", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != 500 {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if envelope.Success {
		t.Error("success = true on failure, want false")
	}
	if envelope.Error == "" {
		t.Error("error message missing from failure envelope")
	}
	// The generic message must not leak the underlying error
	if envelope.Error != "Failed to fetch landing media" {
		t.Errorf("error = %q, want the generic message", envelope.Error)
	}
}

func TestGetUpcomingEventsEnvelope(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`WHERE is_public = true AND end_date >= NOW\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "description", "start_date", "end_date",
			"type", "location", "is_public", "created_at", "updated_at",
		}))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/public/events", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !envelope.Success {
		t.Error("success = false, want true")
	}
	if envelope.Data == nil {
		t.Error("data = null, want []")
	}
}
