package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"vitrina/internal/domain"
	"vitrina/internal/repository"
	"vitrina/pkg/validator"
)

type ProjectServiceImpl struct {
	repo   repository.ProjectRepository
	logger *zap.Logger
}

func NewProjectService(repo repository.ProjectRepository, logger *zap.Logger) *ProjectServiceImpl {
	return &ProjectServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *ProjectServiceImpl) Create(ctx context.Context, dto domain.CreateProjectDTO) (int64, error) {
	if !validator.ValidateSlug(dto.Slug) {
		return 0, errors.New("неверный формат slug")
	}

	existing, err := s.repo.GetBySlug(ctx, dto.Slug)
	if err == nil && existing != nil {
		return 0, errors.New("проект с таким slug уже существует")
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания проекта", zap.Error(err))
		return 0, errors.New("ошибка при создании проекта")
	}

	return id, nil
}

func (s *ProjectServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения проекта", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("проект не найден")
	}

	return project, nil
}

func (s *ProjectServiceImpl) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	project, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, errors.New("проект не найден")
	}

	return project, nil
}

func (s *ProjectServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateProjectDTO) error {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("проект для обновления не найден", zap.Int64("id", id), zap.Error(err))
		return errors.New("проект не найден")
	}

	if dto.Slug != nil {
		if !validator.ValidateSlug(*dto.Slug) {
			return errors.New("неверный формат slug")
		}

		existing, err := s.repo.GetBySlug(ctx, *dto.Slug)
		if err == nil && existing != nil && existing.ID != id {
			return errors.New("проект с таким slug уже существует")
		}
	}

	err = s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("ошибка обновления проекта", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при обновлении проекта")
	}

	return nil
}

func (s *ProjectServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("ошибка удаления проекта", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при удалении проекта")
	}

	return nil
}

func (s *ProjectServiceImpl) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Project, int, error) {
	if limit <= 0 {
		limit = 20
	}

	projects, total, err := s.repo.List(ctx, publishedOnly, limit, offset)
	if err != nil {
		s.logger.Error("ошибка получения списка проектов", zap.Error(err))
		return nil, 0, errors.New("ошибка при получении списка проектов")
	}

	return projects, total, nil
}
