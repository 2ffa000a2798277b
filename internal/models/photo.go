package models

import (
	"time"
)

type Photo struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description"`
	Filename     string    `json:"filename" gorm:"not null"`
	OriginalName string    `json:"original_name" gorm:"not null"`
	MimeType     string    `json:"mime_type" gorm:"not null"`
	FileSize     int64     `json:"file_size" gorm:"not null"`
	URL          string    `json:"url" gorm:"not null"`
	ThumbnailURL string    `json:"thumbnail_url"`
	// No column default: gorm skips zero-valued fields that carry one,
	// which would store private photos as public. The upload schema
	// supplies public-by-default instead.
	IsPublic     bool      `json:"is_public"`
	UploadDate   time.Time `json:"upload_date" gorm:"autoCreateTime"`
	Metadata     string    `json:"metadata,omitempty"` // JSON text: dimensions, camera, location
}

type PhotoTag struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	PhotoID uint   `json:"photo_id" gorm:"not null;uniqueIndex:idx_photo_tag"`
	Tag     string `json:"tag" gorm:"not null;uniqueIndex:idx_photo_tag"`
}

// PhotoMetadata is the structure serialized into Photo.Metadata.
type PhotoMetadata struct {
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Camera   string `json:"camera,omitempty"`
	Location string `json:"location,omitempty"`
}

type CreatePhotoRequest struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Tags         []string       `json:"tags"`
	IsPublic     *bool          `json:"isPublic"`
	OriginalName string         `json:"originalName"`
	MimeType     string         `json:"mimeType"`
	FileSize     int64          `json:"fileSize"`
	URL          string         `json:"url"`
	ThumbnailURL string         `json:"thumbnailUrl"`
	Metadata     *PhotoMetadata `json:"metadata"`
}

type PhotoResponse struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	FileSize     int64     `json:"file_size"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Tags         []string  `json:"tags"`
	IsPublic     bool      `json:"is_public"`
	UploadDate   time.Time `json:"upload_date"`
	Metadata     string    `json:"metadata,omitempty"`
}

func NewPhotoResponse(p *Photo, tags []string) PhotoResponse {
	if tags == nil {
		tags = []string{}
	}
	return PhotoResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		Title:        p.Title,
		Description:  p.Description,
		Filename:     p.Filename,
		OriginalName: p.OriginalName,
		MimeType:     p.MimeType,
		FileSize:     p.FileSize,
		URL:          p.URL,
		ThumbnailURL: p.ThumbnailURL,
		Tags:         tags,
		IsPublic:     p.IsPublic,
		UploadDate:   p.UploadDate,
		Metadata:     p.Metadata,
	}
}

type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalCount  int64 `json:"total_count"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

type PhotoListResponse struct {
	Photos     []PhotoResponse `json:"photos"`
	Pagination Pagination      `json:"pagination"`
}
