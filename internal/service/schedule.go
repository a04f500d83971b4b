package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"vitrina/internal/domain"
	"vitrina/internal/repository"
	"vitrina/pkg/validator"
)

type ScheduleServiceImpl struct {
	repo   repository.ScheduleRepository
	logger *zap.Logger
}

func NewScheduleService(repo repository.ScheduleRepository, logger *zap.Logger) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *ScheduleServiceImpl) Create(ctx context.Context, dto domain.CreateTimeSlotWindowDTO) (int64, error) {
	if err := validateWindowTimes(dto.StartTime, dto.EndTime); err != nil {
		return 0, err
	}

	isAvailable := true
	if dto.IsAvailable != nil {
		isAvailable = *dto.IsAvailable
	}

	window := domain.TimeSlotWindow{
		DayOfWeek:   dto.DayOfWeek,
		StartTime:   dto.StartTime,
		EndTime:     dto.EndTime,
		IsAvailable: isAvailable,
	}

	id, err := s.repo.Create(ctx, window)
	if err != nil {
		s.logger.Error("ошибка создания окна расписания", zap.Error(err))
		return 0, errors.New("ошибка при создании окна расписания")
	}

	return id, nil
}

func (s *ScheduleServiceImpl) GetByID(ctx context.Context, id int64) (*domain.TimeSlotWindow, error) {
	window, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения окна расписания", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("окно расписания не найдено")
	}

	return window, nil
}

func (s *ScheduleServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateTimeSlotWindowDTO) error {
	window, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("окно расписания не найдено", zap.Int64("id", id), zap.Error(err))
		return errors.New("окно расписания не найдено")
	}

	if dto.DayOfWeek != nil {
		window.DayOfWeek = *dto.DayOfWeek
	}
	if dto.StartTime != nil {
		window.StartTime = *dto.StartTime
	}
	if dto.EndTime != nil {
		window.EndTime = *dto.EndTime
	}
	if dto.IsAvailable != nil {
		window.IsAvailable = *dto.IsAvailable
	}

	if err := validateWindowTimes(window.StartTime, window.EndTime); err != nil {
		return err
	}

	err = s.repo.Update(ctx, *window)
	if err != nil {
		s.logger.Error("ошибка обновления окна расписания", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при обновлении окна расписания")
	}

	return nil
}

func (s *ScheduleServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("ошибка удаления окна расписания", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при удалении окна расписания")
	}

	return nil
}

func (s *ScheduleServiceImpl) List(ctx context.Context) ([]domain.TimeSlotWindow, error) {
	windows, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ошибка получения расписания", zap.Error(err))
		return nil, errors.New("ошибка при получении расписания")
	}

	return windows, nil
}

func validateWindowTimes(start, end string) error {
	if !validator.ValidateTimeOfDay(start) || !validator.ValidateTimeOfDay(end) {
		return errors.New("неверный формат времени, ожидается HH:MM")
	}

	startMinutes, _ := parseTimeOfDay(start)
	endMinutes, _ := parseTimeOfDay(end)
	if endMinutes <= startMinutes {
		return errors.New("время окончания должно быть позже времени начала")
	}

	return nil
}
