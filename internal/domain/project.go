package domain

import (
	"time"
)

// Project — работа из портфолио. Кейсы (case studies) публикуются
// этой же сущностью: структурно они не отличаются.
type Project struct {
	ID            int64     `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary,omitempty"`
	Body          string    `json:"body"`
	CoverImageURL string    `json:"cover_image_url,omitempty"`
	ClientName    string    `json:"client_name,omitempty"`
	IsPublished   bool      `json:"is_published"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateProjectDTO struct {
	Slug          string `json:"slug" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Summary       string `json:"summary"`
	Body          string `json:"body" binding:"required"`
	CoverImageURL string `json:"cover_image_url"`
	ClientName    string `json:"client_name"`
	IsPublished   bool   `json:"is_published"`
	SortOrder     int    `json:"sort_order"`
}

type UpdateProjectDTO struct {
	Slug          *string `json:"slug"`
	Title         *string `json:"title"`
	Summary       *string `json:"summary"`
	Body          *string `json:"body"`
	CoverImageURL *string `json:"cover_image_url"`
	ClientName    *string `json:"client_name"`
	IsPublished   *bool   `json:"is_published"`
	SortOrder     *int    `json:"sort_order"`
}
