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

type ProjectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{
		db: db,
	}
}

func (r *ProjectRepo) Create(ctx context.Context, dto domain.CreateProjectDTO) (int64, error) {
	query := `
		INSERT INTO projects (slug, title, summary, body, cover_image_url, client_name, is_published, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.Slug,
		dto.Title,
		dto.Summary,
		dto.Body,
		dto.CoverImageURL,
		dto.ClientName,
		dto.IsPublished,
		dto.SortOrder,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания проекта: %w", err)
	}

	return id, nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	query := projectSelect + ` WHERE id = $1`

	project, err := scanProject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("проект не найден")
		}
		return nil, fmt.Errorf("ошибка получения проекта: %w", err)
	}

	return project, nil
}

func (r *ProjectRepo) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	query := projectSelect + ` WHERE slug = $1`

	project, err := scanProject(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("проект не найден")
		}
		return nil, fmt.Errorf("ошибка получения проекта: %w", err)
	}

	return project, nil
}

func (r *ProjectRepo) Update(ctx context.Context, id int64, dto domain.UpdateProjectDTO) error {
	query := `UPDATE projects SET updated_at = $1`
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

	if dto.Summary != nil {
		query += fmt.Sprintf(", summary = $%d", argPos)
		args = append(args, *dto.Summary)
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

	if dto.ClientName != nil {
		query += fmt.Sprintf(", client_name = $%d", argPos)
		args = append(args, *dto.ClientName)
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
		return fmt.Errorf("ошибка обновления проекта: %w", err)
	}

	return nil
}

func (r *ProjectRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления проекта: %w", err)
	}

	return nil
}

func (r *ProjectRepo) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Project, int, error) {
	countQuery := `SELECT COUNT(*) FROM projects WHERE 1=1`
	selectQuery := projectSelect + ` WHERE 1=1`

	var conditions string
	if publishedOnly {
		conditions += " AND is_published = true"
	}

	countQuery += conditions
	selectQuery += conditions
	selectQuery += ` ORDER BY sort_order, created_at DESC LIMIT $1 OFFSET $2`

	var total int
	err := r.db.QueryRow(ctx, countQuery).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения количества проектов: %w", err)
	}

	rows, err := r.db.Query(ctx, selectQuery, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка проектов: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования строки проекта: %w", err)
		}
		projects = append(projects, *project)
	}

	return projects, total, nil
}

const projectSelect = `
	SELECT id, slug, title, summary, body, cover_image_url, client_name, is_published, sort_order, created_at, updated_at
	FROM projects
`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var project domain.Project
	err := row.Scan(
		&project.ID,
		&project.Slug,
		&project.Title,
		&project.Summary,
		&project.Body,
		&project.CoverImageURL,
		&project.ClientName,
		&project.IsPublished,
		&project.SortOrder,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &project, nil
}
