package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"vitrina/internal/domain"
	"vitrina/internal/repository"
	"vitrina/pkg/validator"
)

type PostServiceImpl struct {
	repo   repository.PostRepository
	logger *zap.Logger
}

func NewPostService(repo repository.PostRepository, logger *zap.Logger) *PostServiceImpl {
	return &PostServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *PostServiceImpl) Create(ctx context.Context, dto domain.CreatePostDTO) (int64, error) {
	if !validator.ValidateSlug(dto.Slug) {
		return 0, errors.New("неверный формат slug")
	}

	existing, err := s.repo.GetBySlug(ctx, dto.Slug)
	if err == nil && existing != nil {
		return 0, errors.New("публикация с таким slug уже существует")
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания публикации", zap.Error(err))
		return 0, errors.New("ошибка при создании публикации")
	}

	return id, nil
}

func (s *PostServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения публикации", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("публикация не найдена")
	}

	return post, nil
}

func (s *PostServiceImpl) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, errors.New("публикация не найдена")
	}

	return post, nil
}

func (s *PostServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdatePostDTO) error {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("публикация для обновления не найдена", zap.Int64("id", id), zap.Error(err))
		return errors.New("публикация не найдена")
	}

	if dto.Slug != nil {
		if !validator.ValidateSlug(*dto.Slug) {
			return errors.New("неверный формат slug")
		}

		existing, err := s.repo.GetBySlug(ctx, *dto.Slug)
		if err == nil && existing != nil && existing.ID != id {
			return errors.New("публикация с таким slug уже существует")
		}
	}

	err = s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("ошибка обновления публикации", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при обновлении публикации")
	}

	return nil
}

func (s *PostServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("ошибка удаления публикации", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при удалении публикации")
	}

	return nil
}

func (s *PostServiceImpl) List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	posts, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка публикаций", zap.Error(err))
		return nil, 0, errors.New("ошибка при получении списка публикаций")
	}

	return posts, total, nil
}
