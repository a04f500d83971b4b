package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"vitrina/internal/domain"
	"vitrina/internal/repository"
	"vitrina/pkg/validator"
)

type OfferingServiceImpl struct {
	repo   repository.OfferingRepository
	logger *zap.Logger
}

func NewOfferingService(repo repository.OfferingRepository, logger *zap.Logger) *OfferingServiceImpl {
	return &OfferingServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *OfferingServiceImpl) Create(ctx context.Context, dto domain.CreateOfferingDTO) (int64, error) {
	if !validator.ValidateSlug(dto.Slug) {
		return 0, errors.New("неверный формат slug")
	}

	existing, err := s.repo.GetBySlug(ctx, dto.Slug)
	if err == nil && existing != nil {
		return 0, errors.New("услуга с таким slug уже существует")
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания услуги", zap.Error(err))
		return 0, errors.New("ошибка при создании услуги")
	}

	return id, nil
}

func (s *OfferingServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Offering, error) {
	offering, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения услуги", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("услуга не найдена")
	}

	return offering, nil
}

func (s *OfferingServiceImpl) GetBySlug(ctx context.Context, slug string) (*domain.Offering, error) {
	offering, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, errors.New("услуга не найдена")
	}

	return offering, nil
}

func (s *OfferingServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateOfferingDTO) error {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("услуга для обновления не найдена", zap.Int64("id", id), zap.Error(err))
		return errors.New("услуга не найдена")
	}

	if dto.Slug != nil {
		if !validator.ValidateSlug(*dto.Slug) {
			return errors.New("неверный формат slug")
		}

		existing, err := s.repo.GetBySlug(ctx, *dto.Slug)
		if err == nil && existing != nil && existing.ID != id {
			return errors.New("услуга с таким slug уже существует")
		}
	}

	err = s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("ошибка обновления услуги", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при обновлении услуги")
	}

	return nil
}

func (s *OfferingServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("ошибка удаления услуги", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при удалении услуги")
	}

	return nil
}

func (s *OfferingServiceImpl) List(ctx context.Context, publishedOnly bool) ([]domain.Offering, error) {
	offerings, err := s.repo.List(ctx, publishedOnly)
	if err != nil {
		s.logger.Error("ошибка получения списка услуг", zap.Error(err))
		return nil, errors.New("ошибка при получении списка услуг")
	}

	return offerings, nil
}
