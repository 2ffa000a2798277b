package repository

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sp3fck/hamgallery-backend/internal/models"
)

type PhotoRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewPhotoRepository(db *gorm.DB, logger *zap.Logger) *PhotoRepository {
	return &PhotoRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts the photo and returns the freshly persisted record,
// re-fetched by its assigned identifier.
func (r *PhotoRepository) Create(photo *models.Photo) (*models.Photo, error) {
	if err := r.db.Create(photo).Error; err != nil {
		r.logger.Error("failed to create photo", zap.Uint("user_id", photo.UserID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return r.GetByID(photo.ID)
}

func (r *PhotoRepository) GetByID(id uint) (*models.Photo, error) {
	var photo models.Photo
	if err := r.db.First(&photo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		r.logger.Error("failed to get photo by id", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &photo, nil
}

// GetPublic lists public photos newest-first, paginated by limit/offset.
func (r *PhotoRepository) GetPublic(limit, offset int) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Where("is_public = ?", true).
		Order("upload_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&photos).Error
	if err != nil {
		r.logger.Error("failed to list public photos", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return photos, nil
}

func (r *PhotoRepository) CountPublic() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Photo{}).Where("is_public = ?", true).Count(&count).Error; err != nil {
		r.logger.Error("failed to count public photos", zap.Error(err))
		return 0, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return count, nil
}

// GetByUser lists a user's photos newest-first. includePrivate must only be
// set when the caller has verified the requester owns the photos; the
// owner check itself happens at the service boundary.
func (r *PhotoRepository) GetByUser(userID uint, includePrivate bool) ([]models.Photo, error) {
	query := r.db.Where("user_id = ?", userID)
	if !includePrivate {
		query = query.Where("is_public = ?", true)
	}

	var photos []models.Photo
	if err := query.Order("upload_date DESC").Find(&photos).Error; err != nil {
		r.logger.Error("failed to list user photos", zap.Uint("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return photos, nil
}

// Delete removes a photo only when both id and owner match. A delete
// attempt against another user's photo affects zero rows and returns
// false, not an authorization fault.
func (r *PhotoRepository) Delete(id, userID uint) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Photo{})
	if result.Error != nil {
		r.logger.Error("failed to delete photo", zap.Uint("id", id), zap.Uint("user_id", userID), zap.Error(result.Error))
		return false, fmt.Errorf("%w: %v", ErrStorage, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// AddTag is idempotent: inserting an existing (photo, tag) pair is a
// silent no-op. Tags are lowercased on write.
func (r *PhotoRepository) AddTag(photoID uint, tag string) error {
	row := models.PhotoTag{
		PhotoID: photoID,
		Tag:     strings.ToLower(tag),
	}
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
	if err != nil {
		r.logger.Error("failed to add photo tag", zap.Uint("photo_id", photoID), zap.String("tag", tag), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

func (r *PhotoRepository) GetTags(photoID uint) ([]string, error) {
	var tags []string
	err := r.db.Model(&models.PhotoTag{}).
		Where("photo_id = ?", photoID).
		Order("tag").
		Pluck("tag", &tags).Error
	if err != nil {
		r.logger.Error("failed to get photo tags", zap.Uint("photo_id", photoID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return tags, nil
}

func (r *PhotoRepository) RemoveTag(photoID uint, tag string) (bool, error) {
	result := r.db.Where("photo_id = ? AND tag = ?", photoID, strings.ToLower(tag)).Delete(&models.PhotoTag{})
	if result.Error != nil {
		r.logger.Error("failed to remove photo tag", zap.Uint("photo_id", photoID), zap.String("tag", tag), zap.Error(result.Error))
		return false, fmt.Errorf("%w: %v", ErrStorage, result.Error)
	}
	return result.RowsAffected > 0, nil
}
