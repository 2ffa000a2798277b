package repository

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/sp3fck/hamgallery-backend/internal/models"
)

func TestIframeRepository_CreateSerializesAndRefetches(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIframeRepository(db, zap.NewNop())
	user := newTestUser(t, db, "SP3FCK", "a@b.com")

	settings := models.IframeSettings{
		Width:           600,
		Height:          400,
		AutoPlay:        true,
		Interval:        5000,
		ShowTitles:      true,
		ShowControls:    true,
		BorderRadius:    8,
		BackgroundColor: "#1e1e1e",
	}

	config, err := repo.Create(user.ID, "Shack tour", []uint{3, 1, 2}, settings, false)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if config.ID == 0 {
		t.Fatal("created config should carry its assigned id")
	}

	var photoIDs []uint
	if err := json.Unmarshal([]byte(config.PhotoIDs), &photoIDs); err != nil {
		t.Fatalf("photo_ids should be JSON text: %v", err)
	}
	if len(photoIDs) != 3 || photoIDs[0] != 3 || photoIDs[2] != 2 {
		t.Errorf("photo id order must survive serialization, got %v", photoIDs)
	}

	var stored models.IframeSettings
	if err := json.Unmarshal([]byte(config.Settings), &stored); err != nil {
		t.Fatalf("settings should be JSON text: %v", err)
	}
	if stored != settings {
		t.Errorf("settings do not round-trip: %+v", stored)
	}
}

func TestIframeRepository_GetByUserNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIframeRepository(db, zap.NewNop())
	user := newTestUser(t, db, "SP3FCK", "a@b.com")
	other := newTestUser(t, db, "W1AW", "w1aw@arrl.org")

	settings := models.IframeSettings{Width: 600, Height: 400}
	first, err := repo.Create(user.ID, "first", []uint{1}, settings, false)
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	// Force a strictly newer timestamp on the second config.
	second, err := repo.Create(user.ID, "second", []uint{2}, settings, true)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if err := db.Model(second).Update("created_at", first.CreatedAt.Add(time.Second)).Error; err != nil {
		t.Fatalf("bump created_at: %v", err)
	}
	if _, err := repo.Create(other.ID, "theirs", []uint{3}, settings, false); err != nil {
		t.Fatalf("create foreign: %v", err)
	}

	configs, err := repo.GetByUser(user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("listing should only return the owner's configs, got %d", len(configs))
	}
	if configs[0].Name != "second" || configs[1].Name != "first" {
		t.Errorf("configs should come back newest-first, got %q then %q", configs[0].Name, configs[1].Name)
	}

	if _, err := repo.GetByID(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown config should report ErrNotFound, got %v", err)
	}
}
