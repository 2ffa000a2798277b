package service

import (
	"errors"
	"testing"

	"github.com/sp3fck/hamgallery-backend/internal/models"
	"github.com/sp3fck/hamgallery-backend/internal/validation"
)

func register(t *testing.T, env *testEnv, callsign, email string) *models.AuthResponse {
	t.Helper()

	v := validation.NewValidator()
	normalized, errs := v.ValidateRegistration(models.RegisterRequest{
		Callsign:  callsign,
		Email:     email,
		Password:  "secret1",
		FirstName: "X",
		LastName:  "Y",
	})
	if errs != nil {
		t.Fatalf("validation failed: %v", errs)
	}

	auth, err := env.auth.Register(normalized)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return auth
}

func TestRegister_StoresNormalizedIdentity(t *testing.T) {
	env := setupTestEnv(t)

	auth := register(t, env, "sp3fck", "A@B.com")

	if auth.User.Callsign != "SP3FCK" {
		t.Errorf("stored callsign should be uppercase, got %q", auth.User.Callsign)
	}
	if auth.User.Email != "a@b.com" {
		t.Errorf("stored email should be lowercase, got %q", auth.User.Email)
	}
	if auth.Token == "" {
		t.Error("registration should issue a token")
	}

	var stored models.User
	if err := env.db.First(&stored, auth.User.ID).Error; err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if stored.Password == "secret1" || stored.Password == "" {
		t.Error("password must be stored as a hash, never plaintext")
	}

	claims, err := env.tokens.Validate(auth.Token)
	if err != nil {
		t.Fatalf("issued token should validate: %v", err)
	}
	if claims.UserID != auth.User.ID || claims.Callsign != "SP3FCK" {
		t.Errorf("token claims do not match the user: %+v", claims)
	}
}

func TestRegister_DuplicateRejection(t *testing.T) {
	env := setupTestEnv(t)

	register(t, env, "sp3fck", "a@b.com")

	v := validation.NewValidator()

	// Same callsign in a different case.
	normalized, _ := v.ValidateRegistration(models.RegisterRequest{
		Callsign: "SP3fck", Email: "new@b.com", Password: "secret1", FirstName: "X", LastName: "Y",
	})
	if _, err := env.auth.Register(normalized); !errors.Is(err, ErrUserExists) {
		t.Errorf("duplicate callsign should conflict, got %v", err)
	}

	// Same email in a different case.
	normalized, _ = v.ValidateRegistration(models.RegisterRequest{
		Callsign: "W1AW", Email: "A@B.COM", Password: "secret1", FirstName: "X", LastName: "Y",
	})
	if _, err := env.auth.Register(normalized); !errors.Is(err, ErrUserExists) {
		t.Errorf("duplicate email should conflict, got %v", err)
	}

	var count int64
	env.db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("conflicts must never leave extra rows, got %d", count)
	}
}

func TestLogin(t *testing.T) {
	env := setupTestEnv(t)
	register(t, env, "sp3fck", "a@b.com")

	// Wrong password: generic failure, no token.
	_, err := env.auth.Login(models.LoginRequest{Callsign: "SP3FCK", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password should report invalid credentials, got %v", err)
	}

	// Unknown callsign reads exactly the same.
	_, err = env.auth.Login(models.LoginRequest{Callsign: "N0CALL", Password: "secret1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown callsign should report invalid credentials, got %v", err)
	}

	auth, err := env.auth.Login(models.LoginRequest{Callsign: "sp3fck", Password: "secret1"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if auth.Token == "" {
		t.Error("login should issue a token")
	}
	if _, err := env.tokens.Validate(auth.Token); err != nil {
		t.Errorf("issued token should validate: %v", err)
	}
}

func TestVerifyEmail(t *testing.T) {
	env := setupTestEnv(t)
	auth := register(t, env, "sp3fck", "a@b.com")

	token, err := env.auth.generateVerificationToken("a@b.com")
	if err != nil {
		t.Fatalf("generate verification token: %v", err)
	}

	if err := env.auth.VerifyEmail(token); err != nil {
		t.Fatalf("verify email failed: %v", err)
	}

	var stored models.User
	if err := env.db.First(&stored, auth.User.ID).Error; err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if !stored.IsVerified {
		t.Error("verification should set the flag")
	}

	// A login token is not a verification token.
	if err := env.auth.VerifyEmail(auth.Token); err == nil {
		t.Error("a bearer token must not pass email verification")
	}

	if err := env.auth.VerifyEmail(token); err == nil {
		t.Error("verifying an already verified account should fail")
	}
}
