package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sp3fck/hamgallery-backend/internal/models"
)

type IframeRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewIframeRepository(db *gorm.DB, logger *zap.Logger) *IframeRepository {
	return &IframeRepository{
		db:     db,
		logger: logger,
	}
}

// Create serializes the photo-id list and settings into their persisted
// JSON-text form and returns the freshly created record.
func (r *IframeRepository) Create(userID uint, name string, photoIDs []uint, settings models.IframeSettings, isPublic bool) (*models.IframeConfig, error) {
	photoIDsJSON, err := json.Marshal(photoIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	config := models.IframeConfig{
		UserID:   userID,
		Name:     name,
		PhotoIDs: string(photoIDsJSON),
		Settings: string(settingsJSON),
		IsPublic: isPublic,
	}
	if err := r.db.Create(&config).Error; err != nil {
		r.logger.Error("failed to create iframe config", zap.Uint("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return r.GetByID(config.ID)
}

func (r *IframeRepository) GetByID(id uint) (*models.IframeConfig, error) {
	var config models.IframeConfig
	if err := r.db.First(&config, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		r.logger.Error("failed to get iframe config by id", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &config, nil
}

func (r *IframeRepository) GetByUser(userID uint) ([]models.IframeConfig, error) {
	var configs []models.IframeConfig
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&configs).Error
	if err != nil {
		r.logger.Error("failed to list iframe configs", zap.Uint("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return configs, nil
}
