package domain

import (
	"time"
)

type Testimonial struct {
	ID          int64     `json:"id"`
	Author      string    `json:"author"`
	Company     string    `json:"company,omitempty"`
	Quote       string    `json:"quote"`
	Rating      int       `json:"rating"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateTestimonialDTO struct {
	Author      string `json:"author" binding:"required"`
	Company     string `json:"company"`
	Quote       string `json:"quote" binding:"required"`
	Rating      int    `json:"rating" binding:"omitempty,min=1,max=5"`
	IsPublished bool   `json:"is_published"`
}

type UpdateTestimonialDTO struct {
	Author      *string `json:"author"`
	Company     *string `json:"company"`
	Quote       *string `json:"quote"`
	Rating      *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	IsPublished *bool   `json:"is_published"`
}
