package domain

import (
	"time"
)

// TimeSlotWindow — интервал доступного для записи времени в заданный день недели.
// DayOfWeek: 0–6, 0 = воскресенье.
type TimeSlotWindow struct {
	ID          int64     `json:"id"`
	DayOfWeek   int       `json:"day_of_week"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateTimeSlotWindowDTO struct {
	DayOfWeek   int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	IsAvailable *bool  `json:"is_available"`
}

type UpdateTimeSlotWindowDTO struct {
	DayOfWeek   *int    `json:"day_of_week" binding:"omitempty,min=0,max=6"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	IsAvailable *bool   `json:"is_available"`
}
