package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vitrina/internal/domain"
)

type ScheduleRepo struct {
	db *pgxpool.Pool
}

func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

func (r *ScheduleRepo) Create(ctx context.Context, window domain.TimeSlotWindow) (int64, error) {
	var id int64

	query := `
		INSERT INTO time_slot_windows (day_of_week, start_time, end_time, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(
		ctx,
		query,
		window.DayOfWeek,
		window.StartTime,
		window.EndTime,
		window.IsAvailable,
		window.CreatedAt,
		window.UpdatedAt,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания окна записи: %w", err)
	}

	return id, nil
}

func (r *ScheduleRepo) GetByID(ctx context.Context, id int64) (*domain.TimeSlotWindow, error) {
	query := `
		SELECT id, day_of_week, start_time, end_time, is_available, created_at, updated_at
		FROM time_slot_windows
		WHERE id = $1
	`

	var window domain.TimeSlotWindow
	err := r.db.QueryRow(ctx, query, id).Scan(
		&window.ID,
		&window.DayOfWeek,
		&window.StartTime,
		&window.EndTime,
		&window.IsAvailable,
		&window.CreatedAt,
		&window.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("окно записи не найдено")
		}
		return nil, fmt.Errorf("ошибка получения окна записи: %w", err)
	}

	return &window, nil
}

func (r *ScheduleRepo) Update(ctx context.Context, window domain.TimeSlotWindow) error {
	query := `
		UPDATE time_slot_windows
		SET day_of_week = $1, start_time = $2, end_time = $3, is_available = $4, updated_at = $5
		WHERE id = $6
	`

	_, err := r.db.Exec(
		ctx,
		query,
		window.DayOfWeek,
		window.StartTime,
		window.EndTime,
		window.IsAvailable,
		time.Now(),
		window.ID,
	)

	if err != nil {
		return fmt.Errorf("ошибка обновления окна записи: %w", err)
	}

	return nil
}

func (r *ScheduleRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM time_slot_windows WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления окна записи: %w", err)
	}

	return nil
}

func (r *ScheduleRepo) List(ctx context.Context) ([]domain.TimeSlotWindow, error) {
	query := `
		SELECT id, day_of_week, start_time, end_time, is_available, created_at, updated_at
		FROM time_slot_windows
		ORDER BY day_of_week, start_time
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка окон записи: %w", err)
	}
	defer rows.Close()

	return scanWindows(rows)
}

func (r *ScheduleRepo) GetAvailableByDay(ctx context.Context, dayOfWeek int) ([]domain.TimeSlotWindow, error) {
	query := `
		SELECT id, day_of_week, start_time, end_time, is_available, created_at, updated_at
		FROM time_slot_windows
		WHERE day_of_week = $1 AND is_available = true
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения окон записи на день: %w", err)
	}
	defer rows.Close()

	return scanWindows(rows)
}

func scanWindows(rows pgx.Rows) ([]domain.TimeSlotWindow, error) {
	var windows []domain.TimeSlotWindow
	for rows.Next() {
		var window domain.TimeSlotWindow
		err := rows.Scan(
			&window.ID,
			&window.DayOfWeek,
			&window.StartTime,
			&window.EndTime,
			&window.IsAvailable,
			&window.CreatedAt,
			&window.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки окна записи: %w", err)
		}
		windows = append(windows, window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return windows, nil
}
