package domain

import (
	"time"
)

type Post struct {
	ID            int64      `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt,omitempty"`
	Body          string     `json:"body"`
	CoverImageURL string     `json:"cover_image_url,omitempty"`
	IsPublished   bool       `json:"is_published"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	ViewCount     int64      `json:"view_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type CreatePostDTO struct {
	Slug          string `json:"slug" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Excerpt       string `json:"excerpt"`
	Body          string `json:"body" binding:"required"`
	CoverImageURL string `json:"cover_image_url"`
	IsPublished   bool   `json:"is_published"`
}

type UpdatePostDTO struct {
	Slug          *string `json:"slug"`
	Title         *string `json:"title"`
	Excerpt       *string `json:"excerpt"`
	Body          *string `json:"body"`
	CoverImageURL *string `json:"cover_image_url"`
	IsPublished   *bool   `json:"is_published"`
}

type PostFilter struct {
	PublishedOnly bool `json:"published_only"`
	Limit         int  `json:"limit"`
	Offset        int  `json:"offset"`
}
