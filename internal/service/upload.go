package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"vitrina/internal/storage"
)

// UploadServiceImpl — загрузка произвольных изображений (обложки публикаций
// и проектов, файлы материалов) через FileStorage.
type UploadServiceImpl struct {
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewUploadService(fileStorage storage.FileStorage, logger *zap.Logger) *UploadServiceImpl {
	return &UploadServiceImpl{
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *UploadServiceImpl) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	if s.fileStorage == nil {
		return "", errors.New("хранилище файлов не настроено")
	}

	url, err := s.fileStorage.UploadFile(ctx, data, filename)
	if err != nil {
		s.logger.Error("ошибка загрузки файла", zap.String("filename", filename), zap.Error(err))
		return "", errors.New("ошибка при загрузке файла")
	}

	return url, nil
}
