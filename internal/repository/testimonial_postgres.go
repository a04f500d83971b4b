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

type TestimonialRepo struct {
	db *pgxpool.Pool
}

func NewTestimonialRepository(db *pgxpool.Pool) *TestimonialRepo {
	return &TestimonialRepo{
		db: db,
	}
}

func (r *TestimonialRepo) Create(ctx context.Context, dto domain.CreateTestimonialDTO) (int64, error) {
	query := `
		INSERT INTO testimonials (author, company, quote, rating, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.Author,
		dto.Company,
		dto.Quote,
		dto.Rating,
		dto.IsPublished,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания отзыва: %w", err)
	}

	return id, nil
}

func (r *TestimonialRepo) GetByID(ctx context.Context, id int64) (*domain.Testimonial, error) {
	query := testimonialSelect + ` WHERE id = $1`

	testimonial, err := scanTestimonial(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("отзыв не найден")
		}
		return nil, fmt.Errorf("ошибка получения отзыва: %w", err)
	}

	return testimonial, nil
}

func (r *TestimonialRepo) Update(ctx context.Context, id int64, dto domain.UpdateTestimonialDTO) error {
	query := `UPDATE testimonials SET updated_at = $1`
	args := []interface{}{time.Now()}
	argPos := 2

	if dto.Author != nil {
		query += fmt.Sprintf(", author = $%d", argPos)
		args = append(args, *dto.Author)
		argPos++
	}

	if dto.Company != nil {
		query += fmt.Sprintf(", company = $%d", argPos)
		args = append(args, *dto.Company)
		argPos++
	}

	if dto.Quote != nil {
		query += fmt.Sprintf(", quote = $%d", argPos)
		args = append(args, *dto.Quote)
		argPos++
	}

	if dto.Rating != nil {
		query += fmt.Sprintf(", rating = $%d", argPos)
		args = append(args, *dto.Rating)
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
		return fmt.Errorf("ошибка обновления отзыва: %w", err)
	}

	return nil
}

func (r *TestimonialRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления отзыва: %w", err)
	}

	return nil
}

func (r *TestimonialRepo) List(ctx context.Context, publishedOnly bool) ([]domain.Testimonial, error) {
	query := testimonialSelect + ` WHERE 1=1`
	if publishedOnly {
		query += " AND is_published = true"
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка отзывов: %w", err)
	}
	defer rows.Close()

	var testimonials []domain.Testimonial
	for rows.Next() {
		testimonial, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки отзыва: %w", err)
		}
		testimonials = append(testimonials, *testimonial)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return testimonials, nil
}

const testimonialSelect = `
	SELECT id, author, company, quote, rating, is_published, created_at, updated_at
	FROM testimonials
`

func scanTestimonial(row pgx.Row) (*domain.Testimonial, error) {
	var testimonial domain.Testimonial
	err := row.Scan(
		&testimonial.ID,
		&testimonial.Author,
		&testimonial.Company,
		&testimonial.Quote,
		&testimonial.Rating,
		&testimonial.IsPublished,
		&testimonial.CreatedAt,
		&testimonial.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &testimonial, nil
}
