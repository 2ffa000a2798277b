package repository

import (
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sp3fck/hamgallery-backend/internal/models"
	"github.com/sp3fck/hamgallery-backend/internal/testutils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testutils.SetupDB(t)
}

func newTestUser(t *testing.T, db *gorm.DB, callsign, email string) *models.User {
	t.Helper()
	repo := NewUserRepository(db, zap.NewNop())
	user := &models.User{
		Callsign:  callsign,
		Email:     email,
		Password:  "$2a$12$fakefakefakefakefakefakefakefakefakefakefakefakefake",
		FirstName: "Test",
		LastName:  "User",
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}
