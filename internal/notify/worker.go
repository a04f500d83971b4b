package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"vitrina/config"
)

type Sender interface {
	Send(to, subject, body string) error
}

// Worker обрабатывает очередь почтовых задач. Запускается в том же
// процессе, что и HTTP-сервер.
type Worker struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	sender Sender
	site   config.SiteConfig
	logger *zap.Logger
}

func NewWorker(redisOpt asynq.RedisClientOpt, sender Sender, site config.SiteConfig, logger *zap.Logger) *Worker {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
	})

	w := &Worker{
		srv:    srv,
		mux:    asynq.NewServeMux(),
		sender: sender,
		site:   site,
		logger: logger,
	}

	w.mux.HandleFunc(TypeBookingConfirmationEmail, w.handleBookingConfirmation)
	w.mux.HandleFunc(TypeBookingAdminAlert, w.handleBookingAdminAlert)

	return w
}

func (w *Worker) Start() error {
	return w.srv.Start(w.mux)
}

func (w *Worker) Shutdown() {
	w.srv.Shutdown()
}

func (w *Worker) handleBookingConfirmation(ctx context.Context, t *asynq.Task) error {
	var payload BookingEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("ошибка разбора задачи: %v: %w", err, asynq.SkipRetry)
	}

	subject := fmt.Sprintf("Подтверждение заявки — %s", w.site.Title)
	body := fmt.Sprintf(
		"Здравствуйте, %s!\n\n"+
			"Мы получили вашу заявку на %s в %s.\n"+
			"Услуга: %s.\n\n"+
			"Для подтверждения перейдите по ссылке:\n%s\n\n"+
			"Если вы не оставляли заявку, просто проигнорируйте это письмо.\n",
		payload.Name,
		payload.BookingDate,
		payload.BookingTime,
		payload.OfferingName,
		payload.ConfirmURL,
	)

	if err := w.sender.Send(payload.Email, subject, body); err != nil {
		w.logger.Error("не удалось отправить письмо клиенту",
			zap.Int64("booking_id", payload.BookingID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (w *Worker) handleBookingAdminAlert(ctx context.Context, t *asynq.Task) error {
	var payload BookingEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("ошибка разбора задачи: %v: %w", err, asynq.SkipRetry)
	}

	subject := fmt.Sprintf("Новая заявка #%d", payload.BookingID)
	body := fmt.Sprintf(
		"Поступила новая заявка.\n\n"+
			"Имя: %s\n"+
			"Email: %s\n"+
			"Телефон: %s\n"+
			"Услуга: %s\n"+
			"Дата: %s\n"+
			"Время: %s\n",
		payload.Name,
		payload.Email,
		payload.Phone,
		payload.OfferingName,
		payload.BookingDate,
		payload.BookingTime,
	)

	if err := w.sender.Send(w.site.AdminEmail, subject, body); err != nil {
		w.logger.Error("не удалось отправить письмо администратору",
			zap.Int64("booking_id", payload.BookingID),
			zap.Error(err),
		)
		return err
	}

	return nil
}
