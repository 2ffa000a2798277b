package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sp3fck/hamgallery-backend/internal/middleware"
	"github.com/sp3fck/hamgallery-backend/internal/models"
	"github.com/sp3fck/hamgallery-backend/internal/repository"
	"github.com/sp3fck/hamgallery-backend/internal/service"
	"github.com/sp3fck/hamgallery-backend/internal/testutils"
	"github.com/sp3fck/hamgallery-backend/internal/validation"
	jwtPkg "github.com/sp3fck/hamgallery-backend/pkg/jwt"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db := testutils.SetupDB(t)
	logger := zap.NewNop()

	userRepo := repository.NewUserRepository(db, logger)
	photoRepo := repository.NewPhotoRepository(db, logger)

	tokens := jwtPkg.NewTokenService("test-secret", 7*24*time.Hour)
	validator := validation.NewValidator()

	authService := service.NewAuthService(userRepo, nil, tokens, "test-secret")
	photoService := service.NewPhotoService(photoRepo)

	authHandler := NewAuthHandler(authService, validator)
	photoHandler := NewPhotoHandler(photoService, validator)

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/photos", photoHandler.ListPublic)

	api.Use(middleware.AuthMiddleware(tokens))
	api.Get("/photos/mine", photoHandler.ListMine)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (*http.Response, models.Response) {
	t.Helper()

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var body models.Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, body
}

func registerPayload() map[string]interface{} {
	return map[string]interface{}{
		"callsign":  "sp3fck",
		"email":     "a@b.com",
		"password":  "secret1",
		"firstName": "X",
		"lastName":  "Y",
	}
}

func TestRegisterEndpoint(t *testing.T) {
	app := setupTestApp(t)

	resp, body := postJSON(t, app, "/api/auth/register", registerPayload())
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%+v)", resp.StatusCode, body)
	}
	if !body.Success {
		t.Fatalf("expected success envelope, got %+v", body)
	}

	// Second attempt with the same callsign conflicts.
	resp, body = postJSON(t, app, "/api/auth/register", registerPayload())
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate, got %d (%+v)", resp.StatusCode, body)
	}

	// Validation failures come back as a collected list.
	resp, body = postJSON(t, app, "/api/auth/register", map[string]interface{}{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 on empty payload, got %d", resp.StatusCode)
	}
	if len(body.Errors) != 5 {
		t.Errorf("expected all 5 field errors collected, got %v", body.Errors)
	}
}

func TestLoginEndpoint(t *testing.T) {
	app := setupTestApp(t)
	postJSON(t, app, "/api/auth/register", registerPayload())

	resp, body := postJSON(t, app, "/api/auth/login", map[string]interface{}{
		"callsign": "sp3fck",
		"password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 on wrong password, got %d", resp.StatusCode)
	}
	if body.Error != "Invalid credentials" {
		t.Errorf("failure message must stay generic, got %q", body.Error)
	}
	if body.Data != nil {
		t.Error("no token may be issued on failed login")
	}

	resp, body = postJSON(t, app, "/api/auth/login", map[string]interface{}{
		"callsign": "SP3FCK",
		"password": "secret1",
	})
	if resp.StatusCode != http.StatusOK || !body.Success {
		t.Fatalf("expected successful login, got %d (%+v)", resp.StatusCode, body)
	}
}

func TestProtectedRouteRequiresBearer(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/photos/mine", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("missing token should give 401, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/photos/mine", nil)
	req.Header.Set("Authorization", "bearer lowercase-prefix")
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("lowercase bearer prefix must be rejected, got %d", resp.StatusCode)
	}
}
