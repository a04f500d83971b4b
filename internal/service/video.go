package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"vitrina/internal/domain"
	"vitrina/internal/repository"
	"vitrina/pkg/videourl"
)

type VideoServiceImpl struct {
	repo   repository.VideoRepository
	logger *zap.Logger
}

func NewVideoService(repo repository.VideoRepository, logger *zap.Logger) *VideoServiceImpl {
	return &VideoServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *VideoServiceImpl) Create(ctx context.Context, dto domain.CreateVideoDTO) (int64, error) {
	parsed := videourl.Parse(dto.SourceURL)
	if parsed.Type == "" {
		return 0, errors.New("ссылка не распознана: поддерживаются только YouTube и Vimeo")
	}

	video := domain.Video{
		Title:        dto.Title,
		SourceURL:    dto.SourceURL,
		Provider:     domain.VideoProvider(parsed.Type),
		ExternalID:   parsed.ID,
		ThumbnailURL: parsed.ThumbnailURL,
		IsPublished:  dto.IsPublished,
	}

	id, err := s.repo.Create(ctx, video)
	if err != nil {
		s.logger.Error("ошибка создания видео", zap.Error(err))
		return 0, errors.New("ошибка при создании видео")
	}

	return id, nil
}

func (s *VideoServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Video, error) {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения видео", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("видео не найдено")
	}

	return video, nil
}

func (s *VideoServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateVideoDTO) error {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("видео для обновления не найдено", zap.Int64("id", id), zap.Error(err))
		return errors.New("видео не найдено")
	}

	if dto.Title != nil {
		video.Title = *dto.Title
	}

	if dto.SourceURL != nil {
		parsed := videourl.Parse(*dto.SourceURL)
		if parsed.Type == "" {
			return errors.New("ссылка не распознана: поддерживаются только YouTube и Vimeo")
		}

		video.SourceURL = *dto.SourceURL
		video.Provider = domain.VideoProvider(parsed.Type)
		video.ExternalID = parsed.ID
		video.ThumbnailURL = parsed.ThumbnailURL
	}

	if dto.IsPublished != nil {
		video.IsPublished = *dto.IsPublished
	}

	err = s.repo.Update(ctx, *video)
	if err != nil {
		s.logger.Error("ошибка обновления видео", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при обновлении видео")
	}

	return nil
}

func (s *VideoServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("ошибка удаления видео", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при удалении видео")
	}

	return nil
}

func (s *VideoServiceImpl) List(ctx context.Context, publishedOnly bool) ([]domain.Video, error) {
	videos, err := s.repo.List(ctx, publishedOnly)
	if err != nil {
		s.logger.Error("ошибка получения списка видео", zap.Error(err))
		return nil, errors.New("ошибка при получении списка видео")
	}

	return videos, nil
}
