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

type TeamRepo struct {
	db *pgxpool.Pool
}

func NewTeamRepository(db *pgxpool.Pool) *TeamRepo {
	return &TeamRepo{
		db: db,
	}
}

func (r *TeamRepo) Create(ctx context.Context, dto domain.CreateTeamMemberDTO) (int64, error) {
	query := `
		INSERT INTO team_members (name, position, bio, photo_url, sort_order, is_visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id
	`

	isVisible := true
	if dto.IsVisible != nil {
		isVisible = *dto.IsVisible
	}

	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.Name,
		dto.Position,
		dto.Bio,
		dto.PhotoURL,
		dto.SortOrder,
		isVisible,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания сотрудника: %w", err)
	}

	return id, nil
}

func (r *TeamRepo) GetByID(ctx context.Context, id int64) (*domain.TeamMember, error) {
	query := teamSelect + ` WHERE id = $1`

	member, err := scanTeamMember(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("сотрудник не найден")
		}
		return nil, fmt.Errorf("ошибка получения сотрудника: %w", err)
	}

	return member, nil
}

func (r *TeamRepo) Update(ctx context.Context, id int64, dto domain.UpdateTeamMemberDTO) error {
	query := `UPDATE team_members SET updated_at = $1`
	args := []interface{}{time.Now()}
	argPos := 2

	if dto.Name != nil {
		query += fmt.Sprintf(", name = $%d", argPos)
		args = append(args, *dto.Name)
		argPos++
	}

	if dto.Position != nil {
		query += fmt.Sprintf(", position = $%d", argPos)
		args = append(args, *dto.Position)
		argPos++
	}

	if dto.Bio != nil {
		query += fmt.Sprintf(", bio = $%d", argPos)
		args = append(args, *dto.Bio)
		argPos++
	}

	if dto.PhotoURL != nil {
		query += fmt.Sprintf(", photo_url = $%d", argPos)
		args = append(args, *dto.PhotoURL)
		argPos++
	}

	if dto.SortOrder != nil {
		query += fmt.Sprintf(", sort_order = $%d", argPos)
		args = append(args, *dto.SortOrder)
		argPos++
	}

	if dto.IsVisible != nil {
		query += fmt.Sprintf(", is_visible = $%d", argPos)
		args = append(args, *dto.IsVisible)
		argPos++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argPos)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления сотрудника: %w", err)
	}

	return nil
}

func (r *TeamRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления сотрудника: %w", err)
	}

	return nil
}

func (r *TeamRepo) List(ctx context.Context, visibleOnly bool) ([]domain.TeamMember, error) {
	query := teamSelect + ` WHERE 1=1`
	if visibleOnly {
		query += " AND is_visible = true"
	}
	query += ` ORDER BY sort_order, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка сотрудников: %w", err)
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки сотрудника: %w", err)
		}
		members = append(members, *member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return members, nil
}

const teamSelect = `
	SELECT id, name, position, bio, photo_url, sort_order, is_visible, created_at, updated_at
	FROM team_members
`

func scanTeamMember(row pgx.Row) (*domain.TeamMember, error) {
	var member domain.TeamMember
	err := row.Scan(
		&member.ID,
		&member.Name,
		&member.Position,
		&member.Bio,
		&member.PhotoURL,
		&member.SortOrder,
		&member.IsVisible,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &member, nil
}
