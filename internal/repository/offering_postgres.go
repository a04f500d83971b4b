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

type OfferingRepo struct {
	db *pgxpool.Pool
}

func NewOfferingRepository(db *pgxpool.Pool) *OfferingRepo {
	return &OfferingRepo{
		db: db,
	}
}

func (r *OfferingRepo) Create(ctx context.Context, dto domain.CreateOfferingDTO) (int64, error) {
	query := `
		INSERT INTO offerings (slug, name, description, duration_minutes, is_published, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id
	`

	duration := dto.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultBookingDuration
	}

	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.Slug,
		dto.Name,
		dto.Description,
		duration,
		dto.IsPublished,
		dto.SortOrder,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания услуги: %w", err)
	}

	return id, nil
}

func (r *OfferingRepo) GetByID(ctx context.Context, id int64) (*domain.Offering, error) {
	query := offeringSelect + ` WHERE id = $1`

	offering, err := scanOffering(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("услуга не найдена")
		}
		return nil, fmt.Errorf("ошибка получения услуги: %w", err)
	}

	return offering, nil
}

func (r *OfferingRepo) GetBySlug(ctx context.Context, slug string) (*domain.Offering, error) {
	query := offeringSelect + ` WHERE slug = $1`

	offering, err := scanOffering(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("услуга не найдена")
		}
		return nil, fmt.Errorf("ошибка получения услуги: %w", err)
	}

	return offering, nil
}

func (r *OfferingRepo) Update(ctx context.Context, id int64, dto domain.UpdateOfferingDTO) error {
	query := `UPDATE offerings SET updated_at = $1`
	args := []interface{}{time.Now()}
	argPos := 2

	if dto.Slug != nil {
		query += fmt.Sprintf(", slug = $%d", argPos)
		args = append(args, *dto.Slug)
		argPos++
	}

	if dto.Name != nil {
		query += fmt.Sprintf(", name = $%d", argPos)
		args = append(args, *dto.Name)
		argPos++
	}

	if dto.Description != nil {
		query += fmt.Sprintf(", description = $%d", argPos)
		args = append(args, *dto.Description)
		argPos++
	}

	if dto.DurationMinutes != nil {
		query += fmt.Sprintf(", duration_minutes = $%d", argPos)
		args = append(args, *dto.DurationMinutes)
		argPos++
	}

	if dto.IsPublished != nil {
		query += fmt.Sprintf(", is_published = $%d", argPos)
		args = append(args, *dto.IsPublished)
		argPos++
	}

	if dto.SortOrder != nil {
		query += fmt.Sprintf(", sort_order = $%d", argPos)
		args = append(args, *dto.SortOrder)
		argPos++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argPos)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления услуги: %w", err)
	}

	return nil
}

func (r *OfferingRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM offerings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления услуги: %w", err)
	}

	return nil
}

func (r *OfferingRepo) List(ctx context.Context, publishedOnly bool) ([]domain.Offering, error) {
	query := offeringSelect + ` WHERE 1=1`
	if publishedOnly {
		query += " AND is_published = true"
	}
	query += ` ORDER BY sort_order, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка услуг: %w", err)
	}
	defer rows.Close()

	var offerings []domain.Offering
	for rows.Next() {
		offering, err := scanOffering(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки услуги: %w", err)
		}
		offerings = append(offerings, *offering)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return offerings, nil
}

const offeringSelect = `
	SELECT id, slug, name, description, duration_minutes, is_published, sort_order, created_at, updated_at
	FROM offerings
`

func scanOffering(row pgx.Row) (*domain.Offering, error) {
	var offering domain.Offering
	err := row.Scan(
		&offering.ID,
		&offering.Slug,
		&offering.Name,
		&offering.Description,
		&offering.DurationMinutes,
		&offering.IsPublished,
		&offering.SortOrder,
		&offering.CreatedAt,
		&offering.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &offering, nil
}
