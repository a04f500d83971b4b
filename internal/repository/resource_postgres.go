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

type ResourceRepo struct {
	db *pgxpool.Pool
}

func NewResourceRepository(db *pgxpool.Pool) *ResourceRepo {
	return &ResourceRepo{
		db: db,
	}
}

func (r *ResourceRepo) Create(ctx context.Context, dto domain.CreateResourceDTO) (int64, error) {
	query := `
		INSERT INTO resources (title, description, file_url, download_count, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, 0, $4, $5, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.Title,
		dto.Description,
		dto.FileURL,
		dto.IsPublished,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания материала: %w", err)
	}

	return id, nil
}

func (r *ResourceRepo) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	query := resourceSelect + ` WHERE id = $1`

	resource, err := scanResource(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("материал не найден")
		}
		return nil, fmt.Errorf("ошибка получения материала: %w", err)
	}

	return resource, nil
}

func (r *ResourceRepo) Update(ctx context.Context, id int64, dto domain.UpdateResourceDTO) error {
	query := `UPDATE resources SET updated_at = $1`
	args := []interface{}{time.Now()}
	argPos := 2

	if dto.Title != nil {
		query += fmt.Sprintf(", title = $%d", argPos)
		args = append(args, *dto.Title)
		argPos++
	}

	if dto.Description != nil {
		query += fmt.Sprintf(", description = $%d", argPos)
		args = append(args, *dto.Description)
		argPos++
	}

	if dto.FileURL != nil {
		query += fmt.Sprintf(", file_url = $%d", argPos)
		args = append(args, *dto.FileURL)
		argPos++
	}

	if dto.IsPublished != nil {
		query += fmt.Sprintf(", is_published = $%d", argPos)
		args = append(args, *dto.IsPublished)
		argPos++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argPos)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления материала: %w", err)
	}

	return nil
}

func (r *ResourceRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления материала: %w", err)
	}

	return nil
}

func (r *ResourceRepo) List(ctx context.Context, publishedOnly bool) ([]domain.Resource, error) {
	query := resourceSelect + ` WHERE 1=1`
	if publishedOnly {
		query += " AND is_published = true"
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка материалов: %w", err)
	}
	defer rows.Close()

	var resources []domain.Resource
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки материала: %w", err)
		}
		resources = append(resources, *resource)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return resources, nil
}

func (r *ResourceRepo) IncrementDownloadCount(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE resources SET download_count = download_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка обновления счётчика скачиваний: %w", err)
	}

	return nil
}

const resourceSelect = `
	SELECT id, title, description, file_url, download_count, is_published, created_at, updated_at
	FROM resources
`

func scanResource(row pgx.Row) (*domain.Resource, error) {
	var resource domain.Resource
	err := row.Scan(
		&resource.ID,
		&resource.Title,
		&resource.Description,
		&resource.FileURL,
		&resource.DownloadCount,
		&resource.IsPublished,
		&resource.CreatedAt,
		&resource.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}
