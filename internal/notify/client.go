package notify

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
)

// Client ставит почтовые задачи в очередь. Отправка выполняется воркером,
// HTTP-запрос её не ждёт.
type Client struct {
	client *asynq.Client
}

func NewClient(redisOpt asynq.RedisClientOpt) *Client {
	return &Client{
		client: asynq.NewClient(redisOpt),
	}
}

func (c *Client) EnqueueBookingConfirmation(ctx context.Context, payload BookingEmailPayload) error {
	task, err := NewBookingConfirmationTask(payload)
	if err != nil {
		return err
	}

	if _, err := c.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("ошибка постановки задачи в очередь: %w", err)
	}

	return nil
}

func (c *Client) EnqueueBookingAdminAlert(ctx context.Context, payload BookingEmailPayload) error {
	task, err := NewBookingAdminAlertTask(payload)
	if err != nil {
		return err
	}

	if _, err := c.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("ошибка постановки задачи в очередь: %w", err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
