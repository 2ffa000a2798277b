package models

import (
	"time"
)

type IframeConfig struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	PhotoIDs  string    `json:"photo_ids" gorm:"not null"` // JSON array text
	Settings  string    `json:"settings" gorm:"not null"`  // JSON object text
	IsPublic  bool      `json:"is_public" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IframeSettings drives the embedded slideshow. Numeric fields are clamped
// into fixed ranges at validation time, so persisted values are always sane.
type IframeSettings struct {
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	AutoPlay        bool   `json:"autoPlay"`
	Interval        int    `json:"interval"`
	ShowTitles      bool   `json:"showTitles"`
	ShowControls    bool   `json:"showControls"`
	BorderRadius    int    `json:"borderRadius"`
	BackgroundColor string `json:"backgroundColor"`
}

type CreateIframeConfigRequest struct {
	Name     string                 `json:"name"`
	PhotoIDs []uint                 `json:"photoIds"`
	Settings map[string]interface{} `json:"settings"`
	IsPublic *bool                  `json:"isPublic"`
}

type IframeConfigResponse struct {
	ID        uint           `json:"id"`
	UserID    uint           `json:"user_id"`
	Name      string         `json:"name"`
	PhotoIDs  []uint         `json:"photo_ids"`
	Settings  IframeSettings `json:"settings"`
	IsPublic  bool           `json:"is_public"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
