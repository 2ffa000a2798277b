package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sp3fck/hamgallery-backend/internal/models"
)

// New opens the database handle. Postgres when DATABASE_URL is set,
// otherwise a local SQLite file for development. The handle is returned to
// the caller and passed down explicitly; there is no package-level global.
func New(databaseURL string, logger *zap.Logger) (*gorm.DB, error) {
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}

	var (
		db  *gorm.DB
		err error
	)
	if databaseURL != "" {
		db, err = gorm.Open(postgres.Open(databaseURL), cfg)
	} else {
		logger.Warn("DATABASE_URL is not set, falling back to local SQLite file hamgallery.db")
		db, err = gorm.Open(sqlite.Open("hamgallery.db"), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Photo{},
		&models.PhotoTag{},
		&models.IframeConfig{},
	)
}

// Health runs a trivial round-trip query and reports reachability.
func Health(db *gorm.DB) bool {
	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil {
		return false
	}
	return one == 1
}
