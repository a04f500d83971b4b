package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"vitrina/internal/domain"
	"vitrina/internal/repository"
	"vitrina/internal/storage"
)

type TeamServiceImpl struct {
	repo        repository.TeamRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewTeamService(repo repository.TeamRepository, fileStorage storage.FileStorage, logger *zap.Logger) *TeamServiceImpl {
	return &TeamServiceImpl{
		repo:        repo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *TeamServiceImpl) Create(ctx context.Context, dto domain.CreateTeamMemberDTO) (int64, error) {
	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания сотрудника", zap.Error(err))
		return 0, errors.New("ошибка при создании сотрудника")
	}

	return id, nil
}

func (s *TeamServiceImpl) GetByID(ctx context.Context, id int64) (*domain.TeamMember, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения сотрудника", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("сотрудник не найден")
	}

	return member, nil
}

func (s *TeamServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateTeamMemberDTO) error {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("сотрудник для обновления не найден", zap.Int64("id", id), zap.Error(err))
		return errors.New("сотрудник не найден")
	}

	err = s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("ошибка обновления сотрудника", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при обновлении сотрудника")
	}

	return nil
}

func (s *TeamServiceImpl) Delete(ctx context.Context, id int64) error {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("сотрудник для удаления не найден", zap.Int64("id", id), zap.Error(err))
		return errors.New("сотрудник не найден")
	}

	if member.PhotoURL != "" {
		if err := s.fileStorage.DeleteFile(ctx, member.PhotoURL); err != nil {
			s.logger.Warn("не удалось удалить фотографию сотрудника", zap.Int64("id", id), zap.Error(err))
		}
	}

	err = s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("ошибка удаления сотрудника", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при удалении сотрудника")
	}

	return nil
}

func (s *TeamServiceImpl) List(ctx context.Context, visibleOnly bool) ([]domain.TeamMember, error) {
	members, err := s.repo.List(ctx, visibleOnly)
	if err != nil {
		s.logger.Error("ошибка получения списка сотрудников", zap.Error(err))
		return nil, errors.New("ошибка при получении списка сотрудников")
	}

	return members, nil
}

func (s *TeamServiceImpl) UploadPhoto(ctx context.Context, memberID int64, photo []byte, filename string) error {
	member, err := s.repo.GetByID(ctx, memberID)
	if err != nil {
		s.logger.Error("сотрудник не найден", zap.Int64("id", memberID), zap.Error(err))
		return errors.New("сотрудник не найден")
	}

	url, err := s.fileStorage.UploadFile(ctx, photo, filename)
	if err != nil {
		s.logger.Error("ошибка загрузки фотографии", zap.Int64("id", memberID), zap.Error(err))
		return errors.New("ошибка при загрузке фотографии")
	}

	if member.PhotoURL != "" {
		if err := s.fileStorage.DeleteFile(ctx, member.PhotoURL); err != nil {
			s.logger.Warn("не удалось удалить старую фотографию", zap.Int64("id", memberID), zap.Error(err))
		}
	}

	err = s.repo.Update(ctx, memberID, domain.UpdateTeamMemberDTO{PhotoURL: &url})
	if err != nil {
		s.logger.Error("ошибка сохранения фотографии", zap.Int64("id", memberID), zap.Error(err))
		return errors.New("ошибка при загрузке фотографии")
	}

	return nil
}
