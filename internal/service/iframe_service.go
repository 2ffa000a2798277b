package service

import (
	"encoding/json"
	"sync"

	"github.com/sp3fck/hamgallery-backend/internal/models"
	"github.com/sp3fck/hamgallery-backend/internal/repository"
	"github.com/sp3fck/hamgallery-backend/internal/validation"
)

type IframeService struct {
	iframeRepo *repository.IframeRepository
	photoRepo  *repository.PhotoRepository
}

func NewIframeService(iframeRepo *repository.IframeRepository, photoRepo *repository.PhotoRepository) *IframeService {
	return &IframeService{
		iframeRepo: iframeRepo,
		photoRepo:  photoRepo,
	}
}

func (s *IframeService) Create(userID uint, data validation.IframeConfigData) (*models.IframeConfigResponse, error) {
	config, err := s.iframeRepo.Create(userID, data.Name, data.PhotoIDs, data.Settings, data.IsPublic)
	if err != nil {
		return nil, err
	}
	return toIframeResponse(config)
}

// Get returns a config. Private configs are visible to their owner only.
func (s *IframeService) Get(id, requesterID uint) (*models.IframeConfigResponse, error) {
	config, err := s.iframeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !config.IsPublic && config.UserID != requesterID {
		return nil, ErrForbidden
	}
	return toIframeResponse(config)
}

func (s *IframeService) List(userID uint) ([]models.IframeConfigResponse, error) {
	configs, err := s.iframeRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]models.IframeConfigResponse, 0, len(configs))
	for i := range configs {
		resp, err := toIframeResponse(&configs[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// ResolvePhotos looks up the requested photo ids concurrently and rejoins
// the results by their original index, then drops private and missing
// entries. Completion order is irrelevant.
func (s *IframeService) ResolvePhotos(ids []uint) []models.Photo {
	resolved := make([]*models.Photo, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id uint) {
			defer wg.Done()
			photo, err := s.photoRepo.GetByID(id)
			if err == nil && photo.IsPublic {
				resolved[i] = photo
			}
		}(i, id)
	}
	wg.Wait()

	photos := make([]models.Photo, 0, len(ids))
	for _, photo := range resolved {
		if photo != nil {
			photos = append(photos, *photo)
		}
	}
	return photos
}

func toIframeResponse(config *models.IframeConfig) (*models.IframeConfigResponse, error) {
	var photoIDs []uint
	if err := json.Unmarshal([]byte(config.PhotoIDs), &photoIDs); err != nil {
		return nil, err
	}
	var settings models.IframeSettings
	if err := json.Unmarshal([]byte(config.Settings), &settings); err != nil {
		return nil, err
	}

	return &models.IframeConfigResponse{
		ID:        config.ID,
		UserID:    config.UserID,
		Name:      config.Name,
		PhotoIDs:  photoIDs,
		Settings:  settings,
		IsPublic:  config.IsPublic,
		CreatedAt: config.CreatedAt,
		UpdatedAt: config.UpdatedAt,
	}, nil
}
