package domain

import (
	"time"
)

// Offering — услуга компании, на которую можно записаться через форму бронирования.
type Offering struct {
	ID              int64     `json:"id"`
	Slug            string    `json:"slug"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	IsPublished     bool      `json:"is_published"`
	SortOrder       int       `json:"sort_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateOfferingDTO struct {
	Slug            string `json:"slug" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=15,max=480"`
	IsPublished     bool   `json:"is_published"`
	SortOrder       int    `json:"sort_order"`
}

type UpdateOfferingDTO struct {
	Slug            *string `json:"slug"`
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,min=15,max=480"`
	IsPublished     *bool   `json:"is_published"`
	SortOrder       *int    `json:"sort_order"`
}
