package service

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/sp3fck/hamgallery-backend/internal/models"
	"github.com/sp3fck/hamgallery-backend/internal/repository"
)

const DefaultPageSize = 20

type PhotoService struct {
	photoRepo *repository.PhotoRepository
}

func NewPhotoService(photoRepo *repository.PhotoRepository) *PhotoService {
	return &PhotoService{
		photoRepo: photoRepo,
	}
}

// ListPublic returns one page of public photos, newest first, each
// decorated with its tags.
func (s *PhotoService) ListPublic(page, limit int) (*models.PhotoListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = DefaultPageSize
	}
	offset := (page - 1) * limit

	totalCount, err := s.photoRepo.CountPublic()
	if err != nil {
		return nil, err
	}

	photos, err := s.photoRepo.GetPublic(limit, offset)
	if err != nil {
		return nil, err
	}

	responses, err := s.decorate(photos)
	if err != nil {
		return nil, err
	}

	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))
	return &models.PhotoListResponse{
		Photos: responses,
		Pagination: models.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalCount:  totalCount,
			HasNextPage: page < totalPages,
			HasPrevPage: page > 1,
		},
	}, nil
}

// ListUser returns a user's photos. Private photos are included only when
// the requester is the owner.
func (s *PhotoService) ListUser(ownerID, requesterID uint) ([]models.PhotoResponse, error) {
	includePrivate := ownerID == requesterID
	photos, err := s.photoRepo.GetByUser(ownerID, includePrivate)
	if err != nil {
		return nil, err
	}
	return s.decorate(photos)
}

// Create registers photo metadata for an already hosted image. The stored
// filename is generated here; the byte pipeline lives outside this system.
func (s *PhotoService) Create(userID uint, req models.CreatePhotoRequest) (*models.PhotoResponse, error) {
	var metadata string
	if req.Metadata != nil {
		raw, err := json.Marshal(req.Metadata)
		if err != nil {
			return nil, err
		}
		metadata = string(raw)
	}

	photo := &models.Photo{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Filename:     generateFilename(req.OriginalName),
		OriginalName: req.OriginalName,
		MimeType:     req.MimeType,
		FileSize:     req.FileSize,
		URL:          req.URL,
		ThumbnailURL: req.ThumbnailURL,
		IsPublic:     req.IsPublic == nil || *req.IsPublic,
		Metadata:     metadata,
	}

	created, err := s.photoRepo.Create(photo)
	if err != nil {
		return nil, err
	}

	for _, tag := range req.Tags {
		if err := s.photoRepo.AddTag(created.ID, tag); err != nil {
			return nil, err
		}
	}

	tags, err := s.photoRepo.GetTags(created.ID)
	if err != nil {
		return nil, err
	}

	resp := models.NewPhotoResponse(created, tags)
	return &resp, nil
}

// Delete removes the photo only when the requester owns it. A foreign or
// unknown photo id reports false without an error.
func (s *PhotoService) Delete(photoID, userID uint) (bool, error) {
	return s.photoRepo.Delete(photoID, userID)
}

func (s *PhotoService) AddTags(photoID, userID uint, tags []string) ([]string, error) {
	if err := s.ownerCheck(photoID, userID); err != nil {
		return nil, err
	}
	for _, tag := range tags {
		if err := s.photoRepo.AddTag(photoID, tag); err != nil {
			return nil, err
		}
	}
	return s.photoRepo.GetTags(photoID)
}

func (s *PhotoService) RemoveTag(photoID, userID uint, tag string) (bool, error) {
	if err := s.ownerCheck(photoID, userID); err != nil {
		return false, err
	}
	return s.photoRepo.RemoveTag(photoID, tag)
}

func (s *PhotoService) ownerCheck(photoID, userID uint) error {
	photo, err := s.photoRepo.GetByID(photoID)
	if err != nil {
		return err
	}
	if photo.UserID != userID {
		return ErrForbidden
	}
	return nil
}

func (s *PhotoService) decorate(photos []models.Photo) ([]models.PhotoResponse, error) {
	responses := make([]models.PhotoResponse, 0, len(photos))
	for i := range photos {
		tags, err := s.photoRepo.GetTags(photos[i].ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, models.NewPhotoResponse(&photos[i], tags))
	}
	return responses, nil
}

func generateFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return uuid.NewString() + ext
}
