package domain

import (
	"time"
)

type VideoProvider string

const (
	VideoProviderYouTube VideoProvider = "youtube"
	VideoProviderVimeo   VideoProvider = "vimeo"
)

type Video struct {
	ID           int64         `json:"id"`
	Title        string        `json:"title"`
	SourceURL    string        `json:"source_url"`
	Provider     VideoProvider `json:"provider"`
	ExternalID   string        `json:"external_id"`
	ThumbnailURL string        `json:"thumbnail_url,omitempty"`
	IsPublished  bool          `json:"is_published"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type CreateVideoDTO struct {
	Title       string `json:"title" binding:"required"`
	SourceURL   string `json:"source_url" binding:"required"`
	IsPublished bool   `json:"is_published"`
}

type UpdateVideoDTO struct {
	Title       *string `json:"title"`
	SourceURL   *string `json:"source_url"`
	IsPublished *bool   `json:"is_published"`
}
