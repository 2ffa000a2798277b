package repository

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sp3fck/hamgallery-backend/internal/models"
)

type UserRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewUserRepository(db *gorm.DB, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		r.logger.Error("failed to create user", zap.String("callsign", user.Callsign), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		r.logger.Error("failed to get user by id", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &user, nil
}

// GetByCallsign looks the callsign up case-insensitively.
func (r *UserRepository) GetByCallsign(callsign string) (*models.User, error) {
	var user models.User
	err := r.db.Where("LOWER(callsign) = LOWER(?)", callsign).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		r.logger.Error("failed to get user by callsign", zap.String("callsign", callsign), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &user, nil
}

// GetByEmail looks the email up case-insensitively.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		r.logger.Error("failed to get user by email", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &user, nil
}

// Update applies the non-nil fields of upd and always refreshes
// updated_at. Reports whether a row was actually affected.
func (r *UserRepository) Update(id uint, upd models.UserUpdate) (bool, error) {
	columns := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if upd.Email != nil {
		columns["email"] = *upd.Email
	}
	if upd.Password != nil {
		columns["password"] = *upd.Password
	}
	if upd.FirstName != nil {
		columns["first_name"] = *upd.FirstName
	}
	if upd.LastName != nil {
		columns["last_name"] = *upd.LastName
	}
	if upd.IsVerified != nil {
		columns["is_verified"] = *upd.IsVerified
	}

	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return false, ErrDuplicate
		}
		r.logger.Error("failed to update user", zap.Uint("id", id), zap.Error(result.Error))
		return false, fmt.Errorf("%w: %v", ErrStorage, result.Error)
	}
	return result.RowsAffected > 0, nil
}
