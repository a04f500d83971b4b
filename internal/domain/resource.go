package domain

import (
	"time"
)

// Resource — скачиваемый материал (чеклист, презентация, прайс).
type Resource struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	FileURL       string    `json:"file_url"`
	DownloadCount int64     `json:"download_count"`
	IsPublished   bool      `json:"is_published"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateResourceDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	FileURL     string `json:"file_url" binding:"required"`
	IsPublished bool   `json:"is_published"`
}

type UpdateResourceDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	FileURL     *string `json:"file_url"`
	IsPublished *bool   `json:"is_published"`
}
