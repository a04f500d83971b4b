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

type PostRepo struct {
	db *pgxpool.Pool
}

func NewPostRepository(db *pgxpool.Pool) *PostRepo {
	return &PostRepo{
		db: db,
	}
}

func (r *PostRepo) Create(ctx context.Context, dto domain.CreatePostDTO) (int64, error) {
	query := `
		INSERT INTO posts (slug, title, excerpt, body, cover_image_url, is_published, published_at, view_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $8)
		RETURNING id
	`

	now := time.Now()
	var publishedAt *time.Time
	if dto.IsPublished {
		publishedAt = &now
	}

	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.Slug,
		dto.Title,
		dto.Excerpt,
		dto.Body,
		dto.CoverImageURL,
		dto.IsPublished,
		publishedAt,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания публикации: %w", err)
	}

	return id, nil
}

func (r *PostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	query := postSelect + ` WHERE id = $1`

	post, err := scanPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("публикация не найдена")
		}
		return nil, fmt.Errorf("ошибка получения публикации: %w", err)
	}

	return post, nil
}

func (r *PostRepo) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	query := postSelect + ` WHERE slug = $1`

	post, err := scanPost(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("публикация не найдена")
		}
		return nil, fmt.Errorf("ошибка получения публикации: %w", err)
	}

	return post, nil
}

func (r *PostRepo) Update(ctx context.Context, id int64, dto domain.UpdatePostDTO) error {
	query := `UPDATE posts SET updated_at = $1`
	args := []interface{}{time.Now()}
	argPos := 2

	if dto.Slug != nil {
		query += fmt.Sprintf(", slug = $%d", argPos)
		args = append(args, *dto.Slug)
		argPos++
	}

	if dto.Title != nil {
		query += fmt.Sprintf(", title = $%d", argPos)
		args = append(args, *dto.Title)
		argPos++
	}

	if dto.Excerpt != nil {
		query += fmt.Sprintf(", excerpt = $%d", argPos)
		args = append(args, *dto.Excerpt)
		argPos++
	}

	if dto.Body != nil {
		query += fmt.Sprintf(", body = $%d", argPos)
		args = append(args, *dto.Body)
		argPos++
	}

	if dto.CoverImageURL != nil {
		query += fmt.Sprintf(", cover_image_url = $%d", argPos)
		args = append(args, *dto.CoverImageURL)
		argPos++
	}

	if dto.IsPublished != nil {
		query += fmt.Sprintf(", is_published = $%d", argPos)
		args = append(args, *dto.IsPublished)
		argPos++

		// Первая публикация фиксирует дату, снятие с публикации её не трогает.
		if *dto.IsPublished {
			query += ", published_at = COALESCE(published_at, NOW())"
		}
	}

	query += fmt.Sprintf(" WHERE id = $%d", argPos)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления публикации: %w", err)
	}

	return nil
}

func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления публикации: %w", err)
	}

	return nil
}

func (r *PostRepo) List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, int, error) {
	countQuery := `SELECT COUNT(*) FROM posts WHERE 1=1`
	selectQuery := postSelect + ` WHERE 1=1`

	var conditions string
	var args []interface{}
	argPos := 1

	if filter.PublishedOnly {
		conditions += " AND is_published = true"
	}

	countQuery += conditions
	selectQuery += conditions

	selectQuery += fmt.Sprintf(" ORDER BY published_at DESC NULLS LAST, created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	var total int
	err := r.db.QueryRow(ctx, countQuery).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения количества публикаций: %w", err)
	}

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка публикаций: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования строки публикации: %w", err)
		}
		posts = append(posts, *post)
	}

	return posts, total, nil
}

// IncrementViewCount атомарно повышает счётчик опубликованной публикации
// и возвращает новое значение.
func (r *PostRepo) IncrementViewCount(ctx context.Context, slug string) (int64, error) {
	query := `
		UPDATE posts
		SET view_count = view_count + 1
		WHERE slug = $1 AND is_published = true
		RETURNING view_count
	`

	var count int64
	err := r.db.QueryRow(ctx, query, slug).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("публикация не найдена")
		}
		return 0, fmt.Errorf("ошибка обновления счётчика просмотров: %w", err)
	}

	return count, nil
}

const postSelect = `
	SELECT id, slug, title, excerpt, body, cover_image_url, is_published, published_at, view_count, created_at, updated_at
	FROM posts
`

func scanPost(row pgx.Row) (*domain.Post, error) {
	var post domain.Post
	err := row.Scan(
		&post.ID,
		&post.Slug,
		&post.Title,
		&post.Excerpt,
		&post.Body,
		&post.CoverImageURL,
		&post.IsPublished,
		&post.PublishedAt,
		&post.ViewCount,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &post, nil
}
