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

type VideoRepo struct {
	db *pgxpool.Pool
}

func NewVideoRepository(db *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{
		db: db,
	}
}

func (r *VideoRepo) Create(ctx context.Context, video domain.Video) (int64, error) {
	query := `
		INSERT INTO videos (title, source_url, provider, external_id, thumbnail_url, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		video.Title,
		video.SourceURL,
		video.Provider,
		video.ExternalID,
		video.ThumbnailURL,
		video.IsPublished,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания видео: %w", err)
	}

	return id, nil
}

func (r *VideoRepo) GetByID(ctx context.Context, id int64) (*domain.Video, error) {
	query := videoSelect + ` WHERE id = $1`

	video, err := scanVideo(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("видео не найдено")
		}
		return nil, fmt.Errorf("ошибка получения видео: %w", err)
	}

	return video, nil
}

func (r *VideoRepo) Update(ctx context.Context, video domain.Video) error {
	query := `
		UPDATE videos
		SET title = $1, source_url = $2, provider = $3, external_id = $4, thumbnail_url = $5, is_published = $6, updated_at = $7
		WHERE id = $8
	`

	_, err := r.db.Exec(ctx, query,
		video.Title,
		video.SourceURL,
		video.Provider,
		video.ExternalID,
		video.ThumbnailURL,
		video.IsPublished,
		time.Now(),
		video.ID,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления видео: %w", err)
	}

	return nil
}

func (r *VideoRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления видео: %w", err)
	}

	return nil
}

func (r *VideoRepo) List(ctx context.Context, publishedOnly bool) ([]domain.Video, error) {
	query := videoSelect + ` WHERE 1=1`
	if publishedOnly {
		query += " AND is_published = true"
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка видео: %w", err)
	}
	defer rows.Close()

	var videos []domain.Video
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки видео: %w", err)
		}
		videos = append(videos, *video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return videos, nil
}

const videoSelect = `
	SELECT id, title, source_url, provider, external_id, thumbnail_url, is_published, created_at, updated_at
	FROM videos
`

func scanVideo(row pgx.Row) (*domain.Video, error) {
	var video domain.Video
	err := row.Scan(
		&video.ID,
		&video.Title,
		&video.SourceURL,
		&video.Provider,
		&video.ExternalID,
		&video.ThumbnailURL,
		&video.IsPublished,
		&video.CreatedAt,
		&video.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &video, nil
}
