package notify

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	TypeBookingConfirmationEmail = "email:booking_confirmation"
	TypeBookingAdminAlert        = "email:booking_admin_alert"
)

// BookingEmailPayload несёт всё нужное для письма, чтобы обработчик
// не ходил в базу.
type BookingEmailPayload struct {
	BookingID    int64  `json:"booking_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	OfferingName string `json:"offering_name"`
	BookingDate  string `json:"booking_date"`
	BookingTime  string `json:"booking_time"`
	ConfirmURL   string `json:"confirm_url"`
}

func NewBookingConfirmationTask(payload BookingEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации задачи: %w", err)
	}

	return asynq.NewTask(TypeBookingConfirmationEmail, data, asynq.MaxRetry(5)), nil
}

func NewBookingAdminAlertTask(payload BookingEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации задачи: %w", err)
	}

	return asynq.NewTask(TypeBookingAdminAlert, data, asynq.MaxRetry(5)), nil
}
