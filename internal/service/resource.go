package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"vitrina/internal/domain"
	"vitrina/internal/repository"
	"vitrina/internal/storage"
)

const downloadURLExpiry = 15 * time.Minute

type ResourceServiceImpl struct {
	repo        repository.ResourceRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewResourceService(repo repository.ResourceRepository, fileStorage storage.FileStorage, logger *zap.Logger) *ResourceServiceImpl {
	return &ResourceServiceImpl{
		repo:        repo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *ResourceServiceImpl) Create(ctx context.Context, dto domain.CreateResourceDTO) (int64, error) {
	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания материала", zap.Error(err))
		return 0, errors.New("ошибка при создании материала")
	}

	return id, nil
}

func (s *ResourceServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	resource, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения материала", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("материал не найден")
	}

	return resource, nil
}

func (s *ResourceServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateResourceDTO) error {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("материал для обновления не найден", zap.Int64("id", id), zap.Error(err))
		return errors.New("материал не найден")
	}

	err = s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("ошибка обновления материала", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при обновлении материала")
	}

	return nil
}

func (s *ResourceServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("ошибка удаления материала", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при удалении материала")
	}

	return nil
}

func (s *ResourceServiceImpl) List(ctx context.Context, publishedOnly bool) ([]domain.Resource, error) {
	resources, err := s.repo.List(ctx, publishedOnly)
	if err != nil {
		s.logger.Error("ошибка получения списка материалов", zap.Error(err))
		return nil, errors.New("ошибка при получении списка материалов")
	}

	return resources, nil
}

// RegisterDownload отдаёт ссылку на скачивание материала и повышает счётчик.
// Сбой счётчика скачивание не блокирует.
func (s *ResourceServiceImpl) RegisterDownload(ctx context.Context, id int64) (string, error) {
	resource, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", errors.New("материал не найден")
	}

	if !resource.IsPublished {
		return "", errors.New("материал не найден")
	}

	if err := s.repo.IncrementDownloadCount(ctx, id); err != nil {
		s.logger.Warn("не удалось обновить счётчик скачиваний", zap.Int64("id", id), zap.Error(err))
	}

	url := resource.FileURL
	if s.fileStorage != nil {
		presigned, err := s.fileStorage.GetPresignedURL(ctx, resource.FileURL, downloadURLExpiry)
		if err != nil {
			s.logger.Warn("не удалось получить подписанную ссылку, отдаётся прямая",
				zap.Int64("id", id),
				zap.Error(err),
			)
		} else {
			url = presigned
		}
	}

	return url, nil
}
