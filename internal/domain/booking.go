package domain

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

const DefaultBookingDuration = 60

type Booking struct {
	ID                int64         `json:"id"`
	Name              string        `json:"name"`
	Email             string        `json:"email"`
	Phone             string        `json:"phone,omitempty"`
	OfferingID        *int64        `json:"offering_id,omitempty"`
	BookingDate       time.Time     `json:"booking_date"`
	BookingTime       string        `json:"booking_time"`
	DurationMinutes   int           `json:"duration_minutes"`
	Status            BookingStatus `json:"status"`
	Message           string        `json:"message,omitempty"`
	ConfirmationToken string        `json:"-"`
	ReminderSent      bool          `json:"reminder_sent"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
	OfferingName      string        `json:"offering_name,omitempty"`
}

type CreateBookingDTO struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	OfferingID      *int64 `json:"offering_id"`
	BookingDate     string `json:"booking_date"`
	BookingTime     string `json:"booking_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Message         string `json:"message"`
}

type UpdateBookingDTO struct {
	Status       *BookingStatus `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	ReminderSent *bool          `json:"reminder_sent"`
}

type BookingFilter struct {
	Status    *BookingStatus `json:"status"`
	StartDate *time.Time     `json:"start_date"`
	EndDate   *time.Time     `json:"end_date"`
	Limit     int            `json:"limit"`
	Offset    int            `json:"offset"`
}
