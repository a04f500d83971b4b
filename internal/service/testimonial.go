package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"vitrina/internal/domain"
	"vitrina/internal/repository"
)

type TestimonialServiceImpl struct {
	repo   repository.TestimonialRepository
	logger *zap.Logger
}

func NewTestimonialService(repo repository.TestimonialRepository, logger *zap.Logger) *TestimonialServiceImpl {
	return &TestimonialServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *TestimonialServiceImpl) Create(ctx context.Context, dto domain.CreateTestimonialDTO) (int64, error) {
	if dto.Rating != 0 && (dto.Rating < 1 || dto.Rating > 5) {
		return 0, errors.New("оценка должна быть от 1 до 5")
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания отзыва", zap.Error(err))
		return 0, errors.New("ошибка при создании отзыва")
	}

	return id, nil
}

func (s *TestimonialServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Testimonial, error) {
	testimonial, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения отзыва", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("отзыв не найден")
	}

	return testimonial, nil
}

func (s *TestimonialServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateTestimonialDTO) error {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("отзыв для обновления не найден", zap.Int64("id", id), zap.Error(err))
		return errors.New("отзыв не найден")
	}

	err = s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("ошибка обновления отзыва", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при обновлении отзыва")
	}

	return nil
}

func (s *TestimonialServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("ошибка удаления отзыва", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при удалении отзыва")
	}

	return nil
}

func (s *TestimonialServiceImpl) List(ctx context.Context, publishedOnly bool) ([]domain.Testimonial, error) {
	testimonials, err := s.repo.List(ctx, publishedOnly)
	if err != nil {
		s.logger.Error("ошибка получения списка отзывов", zap.Error(err))
		return nil, errors.New("ошибка при получении списка отзывов")
	}

	return testimonials, nil
}
