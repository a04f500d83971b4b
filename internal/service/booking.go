package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"vitrina/config"
	"vitrina/internal/domain"
	"vitrina/internal/notify"
	"vitrina/internal/repository"
	"vitrina/pkg/auth"
	"vitrina/pkg/validator"
)

// ErrSlotUnavailable возвращается, когда запрошенное время пересекается
// с уже существующей активной заявкой.
var ErrSlotUnavailable = repository.ErrSlotTaken

type BookingServiceImpl struct {
	bookingRepo  repository.BookingRepository
	scheduleRepo repository.ScheduleRepository
	offeringRepo repository.OfferingRepository
	notifier     Notifier
	slotStep     time.Duration
	location     *time.Location
	site         config.SiteConfig
	logger       *zap.Logger
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	scheduleRepo repository.ScheduleRepository,
	offeringRepo repository.OfferingRepository,
	notifier Notifier,
	bookingConfig config.BookingConfig,
	site config.SiteConfig,
	logger *zap.Logger,
) *BookingServiceImpl {
	location, err := time.LoadLocation(bookingConfig.Timezone)
	if err != nil {
		logger.Warn("не удалось загрузить часовой пояс, используется UTC",
			zap.String("timezone", bookingConfig.Timezone),
			zap.Error(err),
		)
		location = time.UTC
	}

	return &BookingServiceImpl{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		offeringRepo: offeringRepo,
		notifier:     notifier,
		slotStep:     bookingConfig.SlotStep,
		location:     location,
		site:         site,
		logger:       logger,
	}
}

// GetAvailableSlots возвращает свободные слоты на дату в формате "HH:MM".
// Любая внутренняя ошибка даёт пустой список: форма записи на сайте
// не должна падать из-за недоступной базы.
func (s *BookingServiceImpl) GetAvailableSlots(ctx context.Context, date string) ([]string, error) {
	day, err := time.ParseInLocation("2006-01-02", date, s.location)
	if err != nil {
		return nil, errors.New("неверный формат даты, ожидается YYYY-MM-DD")
	}

	windows, err := s.scheduleRepo.GetAvailableByDay(ctx, int(day.Weekday()))
	if err != nil {
		s.logger.Error("ошибка получения расписания", zap.String("date", date), zap.Error(err))
		return []string{}, nil
	}

	bookings, err := s.bookingRepo.GetActiveByDate(ctx, day)
	if err != nil {
		s.logger.Error("ошибка получения заявок на дату", zap.String("date", date), zap.Error(err))
		return []string{}, nil
	}

	slots := buildSlots(windows, bookings, int(s.slotStep.Minutes()))

	// Для сегодняшней даты прошедшие слоты не предлагаем.
	now := time.Now().In(s.location)
	if day.Year() == now.Year() && day.YearDay() == now.YearDay() {
		nowMinutes := now.Hour()*60 + now.Minute()
		filtered := make([]string, 0, len(slots))
		for _, slot := range slots {
			m, err := parseTimeOfDay(slot)
			if err != nil {
				continue
			}
			if m > nowMinutes {
				filtered = append(filtered, slot)
			}
		}
		slots = filtered
	}

	return slots, nil
}

// buildSlots раскладывает окна доступности по шагу step (в минутах)
// и выкидывает кандидатов, пересекающихся с активными заявками.
// Окно короче шага слотов не даёт.
func buildSlots(windows []domain.TimeSlotWindow, bookings []domain.Booking, step int) []string {
	if step <= 0 {
		step = domain.DefaultBookingDuration
	}

	type interval struct {
		start int
		end   int
	}

	busy := make([]interval, 0, len(bookings))
	for _, b := range bookings {
		start, err := parseTimeOfDay(b.BookingTime)
		if err != nil {
			continue
		}
		busy = append(busy, interval{start: start, end: start + b.DurationMinutes})
	}

	slots := []string{}
	for _, w := range windows {
		start, err := parseTimeOfDay(w.StartTime)
		if err != nil {
			continue
		}
		end, err := parseTimeOfDay(w.EndTime)
		if err != nil {
			continue
		}

		if end-start < step {
			continue
		}

		for t := start; t < end; t += step {
			slotEnd := t + step

			conflict := false
			for _, b := range busy {
				// Полуоткрытые интервалы: пересечение, если t < b.end и b.start < slotEnd.
				if t < b.end && b.start < slotEnd {
					conflict = true
					break
				}
			}

			if !conflict {
				slots = append(slots, fmt.Sprintf("%02d:%02d", t/60, t%60))
			}
		}
	}

	return slots
}

func (s *BookingServiceImpl) Create(ctx context.Context, dto domain.CreateBookingDTO) (int64, error) {
	if dto.Name == "" || dto.Email == "" || dto.BookingDate == "" || dto.BookingTime == "" {
		return 0, errors.New("не заполнены обязательные поля: имя, email, дата и время")
	}

	if !validator.ValidateEmail(dto.Email) {
		return 0, errors.New("неверный формат email")
	}

	day, err := time.ParseInLocation("2006-01-02", dto.BookingDate, s.location)
	if err != nil {
		return 0, errors.New("неверный формат даты, ожидается YYYY-MM-DD")
	}

	if !validator.ValidateTimeOfDay(dto.BookingTime) {
		return 0, errors.New("неверный формат времени, ожидается HH:MM")
	}

	startMinutes, err := parseTimeOfDay(dto.BookingTime)
	if err != nil {
		return 0, errors.New("неверный формат времени, ожидается HH:MM")
	}

	startAt := day.Add(time.Duration(startMinutes) * time.Minute)
	if !startAt.After(time.Now().In(s.location)) {
		return 0, errors.New("нельзя записаться на прошедшее время")
	}

	duration := dto.DurationMinutes
	var offeringName string
	if dto.OfferingID != nil {
		offering, err := s.offeringRepo.GetByID(ctx, *dto.OfferingID)
		if err != nil {
			return 0, errors.New("услуга не найдена")
		}
		offeringName = offering.Name
		if duration == 0 {
			duration = offering.DurationMinutes
		}
	}
	if duration == 0 {
		duration = domain.DefaultBookingDuration
	}

	token, err := auth.NewConfirmationToken()
	if err != nil {
		s.logger.Error("ошибка генерации токена подтверждения", zap.Error(err))
		return 0, errors.New("ошибка при создании заявки")
	}

	booking := domain.Booking{
		Name:              dto.Name,
		Email:             dto.Email,
		Phone:             validator.FormatPhone(dto.Phone),
		OfferingID:        dto.OfferingID,
		BookingDate:       day,
		BookingTime:       dto.BookingTime,
		DurationMinutes:   duration,
		Status:            domain.BookingStatusPending,
		Message:           validator.SanitizeString(dto.Message),
		ConfirmationToken: token,
	}

	id, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return 0, ErrSlotUnavailable
		}
		s.logger.Error("ошибка создания заявки", zap.Error(err))
		return 0, errors.New("ошибка при создании заявки")
	}

	s.enqueueBookingEmails(id, booking, offeringName)

	return id, nil
}

// enqueueBookingEmails ставит письма в очередь. Сбой очереди не откатывает
// заявку: она уже записана, письма можно переотправить вручную.
func (s *BookingServiceImpl) enqueueBookingEmails(id int64, booking domain.Booking, offeringName string) {
	payload := notify.BookingEmailPayload{
		BookingID:    id,
		Name:         booking.Name,
		Email:        booking.Email,
		Phone:        booking.Phone,
		OfferingName: offeringName,
		BookingDate:  booking.BookingDate.Format("02.01.2006"),
		BookingTime:  booking.BookingTime,
		ConfirmURL:   fmt.Sprintf("%s/api/v1/booking/confirm/%s", s.site.BaseURL, booking.ConfirmationToken),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.notifier.EnqueueBookingConfirmation(ctx, payload); err != nil {
		s.logger.Error("не удалось поставить письмо клиенту в очередь",
			zap.Int64("booking_id", id),
			zap.Error(err),
		)
	}

	if err := s.notifier.EnqueueBookingAdminAlert(ctx, payload); err != nil {
		s.logger.Error("не удалось поставить письмо администратору в очередь",
			zap.Int64("booking_id", id),
			zap.Error(err),
		)
	}
}

// Confirm переводит заявку по токену в статус confirmed. Повторное
// подтверждение уже подтверждённой заявки не считается ошибкой.
func (s *BookingServiceImpl) Confirm(ctx context.Context, token string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByConfirmationToken(ctx, token)
	if err != nil {
		s.logger.Warn("заявка по токену не найдена", zap.Error(err))
		return nil, errors.New("заявка не найдена")
	}

	switch booking.Status {
	case domain.BookingStatusConfirmed:
		return booking, nil
	case domain.BookingStatusCancelled:
		return nil, errors.New("заявка отменена")
	case domain.BookingStatusCompleted:
		return nil, errors.New("заявка уже завершена")
	}

	status := domain.BookingStatusConfirmed
	err = s.bookingRepo.Update(ctx, booking.ID, domain.UpdateBookingDTO{Status: &status})
	if err != nil {
		s.logger.Error("ошибка подтверждения заявки", zap.Int64("id", booking.ID), zap.Error(err))
		return nil, errors.New("ошибка при подтверждении заявки")
	}

	booking.Status = domain.BookingStatusConfirmed
	return booking, nil
}

func (s *BookingServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения заявки", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("заявка не найдена")
	}

	return booking, nil
}

func (s *BookingServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateBookingDTO) error {
	_, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("заявка для обновления не найдена", zap.Int64("id", id), zap.Error(err))
		return errors.New("заявка не найдена")
	}

	err = s.bookingRepo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("ошибка обновления заявки", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при обновлении заявки")
	}

	return nil
}

func (s *BookingServiceImpl) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	bookings, total, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка заявок", zap.Error(err))
		return nil, 0, errors.New("ошибка при получении списка заявок")
	}

	return bookings, total, nil
}

func parseTimeOfDay(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
