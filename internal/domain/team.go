package domain

import (
	"time"
)

type TeamMember struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Bio       string    `json:"bio,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	SortOrder int       `json:"sort_order"`
	IsVisible bool      `json:"is_visible"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateTeamMemberDTO struct {
	Name      string `json:"name" binding:"required"`
	Position  string `json:"position" binding:"required"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photo_url"`
	SortOrder int    `json:"sort_order"`
	IsVisible *bool  `json:"is_visible"`
}

type UpdateTeamMemberDTO struct {
	Name      *string `json:"name"`
	Position  *string `json:"position"`
	Bio       *string `json:"bio"`
	PhotoURL  *string `json:"photo_url"`
	SortOrder *int    `json:"sort_order"`
	IsVisible *bool   `json:"is_visible"`
}
