package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"vitrina/config"
	"vitrina/internal/domain"
	"vitrina/internal/notify"
	"vitrina/internal/repository"
)

type bookingRepoStub struct {
	createErr error
	createdID int64
	created   *domain.Booking

	active    []domain.Booking
	activeErr error

	byToken  *domain.Booking
	tokenErr error

	updatedID  int64
	updatedDTO *domain.UpdateBookingDTO
}

func (s *bookingRepoStub) Create(ctx context.Context, booking domain.Booking) (int64, error) {
	if s.createErr != nil {
		return 0, s.createErr
	}
	s.created = &booking
	if s.createdID == 0 {
		s.createdID = 1
	}
	return s.createdID, nil
}

func (s *bookingRepoStub) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return &domain.Booking{ID: id}, nil
}

func (s *bookingRepoStub) GetByConfirmationToken(ctx context.Context, token string) (*domain.Booking, error) {
	if s.tokenErr != nil {
		return nil, s.tokenErr
	}
	return s.byToken, nil
}

func (s *bookingRepoStub) Update(ctx context.Context, id int64, dto domain.UpdateBookingDTO) error {
	s.updatedID = id
	s.updatedDTO = &dto
	return nil
}

func (s *bookingRepoStub) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, int, error) {
	return nil, 0, nil
}

func (s *bookingRepoStub) GetActiveByDate(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	if s.activeErr != nil {
		return nil, s.activeErr
	}
	return s.active, nil
}

type scheduleRepoStub struct {
	windows []domain.TimeSlotWindow
	err     error
}

func (s *scheduleRepoStub) Create(ctx context.Context, window domain.TimeSlotWindow) (int64, error) {
	return 0, nil
}

func (s *scheduleRepoStub) GetByID(ctx context.Context, id int64) (*domain.TimeSlotWindow, error) {
	return nil, errors.New("not found")
}

func (s *scheduleRepoStub) Update(ctx context.Context, window domain.TimeSlotWindow) error {
	return nil
}

func (s *scheduleRepoStub) Delete(ctx context.Context, id int64) error { return nil }

func (s *scheduleRepoStub) List(ctx context.Context) ([]domain.TimeSlotWindow, error) {
	return s.windows, s.err
}

func (s *scheduleRepoStub) GetAvailableByDay(ctx context.Context, dayOfWeek int) ([]domain.TimeSlotWindow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.windows, nil
}

type offeringRepoStub struct {
	offering *domain.Offering
	err      error
}

func (s *offeringRepoStub) Create(ctx context.Context, dto domain.CreateOfferingDTO) (int64, error) {
	return 0, nil
}

func (s *offeringRepoStub) GetByID(ctx context.Context, id int64) (*domain.Offering, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.offering, nil
}

func (s *offeringRepoStub) GetBySlug(ctx context.Context, slug string) (*domain.Offering, error) {
	return nil, errors.New("not found")
}

func (s *offeringRepoStub) Update(ctx context.Context, id int64, dto domain.UpdateOfferingDTO) error {
	return nil
}

func (s *offeringRepoStub) Delete(ctx context.Context, id int64) error { return nil }

func (s *offeringRepoStub) List(ctx context.Context, publishedOnly bool) ([]domain.Offering, error) {
	return nil, nil
}

type notifierStub struct {
	confirmations []notify.BookingEmailPayload
	alerts        []notify.BookingEmailPayload
}

func (s *notifierStub) EnqueueBookingConfirmation(ctx context.Context, payload notify.BookingEmailPayload) error {
	s.confirmations = append(s.confirmations, payload)
	return nil
}

func (s *notifierStub) EnqueueBookingAdminAlert(ctx context.Context, payload notify.BookingEmailPayload) error {
	s.alerts = append(s.alerts, payload)
	return nil
}

func newTestBookingService(bookings *bookingRepoStub, schedule *scheduleRepoStub, offerings *offeringRepoStub, notifier *notifierStub) *BookingServiceImpl {
	return NewBookingService(
		bookings,
		schedule,
		offerings,
		notifier,
		config.BookingConfig{SlotStep: time.Hour, Timezone: "UTC"},
		config.SiteConfig{BaseURL: "http://localhost:8080", Title: "Vitrina"},
		zap.NewNop(),
	)
}

func window(start, end string) domain.TimeSlotWindow {
	return domain.TimeSlotWindow{DayOfWeek: 1, StartTime: start, EndTime: end, IsAvailable: true}
}

func TestBuildSlots(t *testing.T) {
	tests := []struct {
		name     string
		windows  []domain.TimeSlotWindow
		bookings []domain.Booking
		step     int
		want     []string
	}{
		{
			name:    "no windows",
			windows: nil,
			step:    60,
			want:    []string{},
		},
		{
			name:    "single window",
			windows: []domain.TimeSlotWindow{window("10:00", "13:00")},
			step:    60,
			want:    []string{"10:00", "11:00", "12:00"},
		},
		{
			name:    "window shorter than step",
			windows: []domain.TimeSlotWindow{window("10:00", "10:30")},
			step:    60,
			want:    []string{},
		},
		{
			name:    "window end excluded",
			windows: []domain.TimeSlotWindow{window("10:00", "12:00")},
			step:    60,
			want:    []string{"10:00", "11:00"},
		},
		{
			name:    "booking removes slot",
			windows: []domain.TimeSlotWindow{window("10:00", "13:00")},
			bookings: []domain.Booking{
				{BookingTime: "11:00", DurationMinutes: 60},
			},
			step: 60,
			want: []string{"10:00", "12:00"},
		},
		{
			name:    "overlapping booking removes both slots",
			windows: []domain.TimeSlotWindow{window("10:00", "13:00")},
			bookings: []domain.Booking{
				{BookingTime: "10:30", DurationMinutes: 60},
			},
			step: 60,
			want: []string{"12:00"},
		},
		{
			name:    "adjacent booking does not conflict",
			windows: []domain.TimeSlotWindow{window("10:00", "12:00")},
			bookings: []domain.Booking{
				{BookingTime: "09:00", DurationMinutes: 60},
				{BookingTime: "12:00", DurationMinutes: 60},
			},
			step: 60,
			want: []string{"10:00", "11:00"},
		},
		{
			name: "multiple windows",
			windows: []domain.TimeSlotWindow{
				window("09:00", "11:00"),
				window("14:00", "16:00"),
			},
			step: 60,
			want: []string{"09:00", "10:00", "14:00", "15:00"},
		},
		{
			name:    "half hour step",
			windows: []domain.TimeSlotWindow{window("10:00", "11:30")},
			step:    30,
			want:    []string{"10:00", "10:30", "11:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildSlots(tt.windows, tt.bookings, tt.step)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildSlots() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetAvailableSlots_BadDate(t *testing.T) {
	svc := newTestBookingService(&bookingRepoStub{}, &scheduleRepoStub{}, &offeringRepoStub{}, &notifierStub{})

	_, err := svc.GetAvailableSlots(context.Background(), "28-01-2026")
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestGetAvailableSlots_RepoErrorReturnsEmpty(t *testing.T) {
	svc := newTestBookingService(
		&bookingRepoStub{},
		&scheduleRepoStub{err: errors.New("db down")},
		&offeringRepoStub{},
		&notifierStub{},
	)

	slots, err := svc.GetAvailableSlots(context.Background(), "2030-01-07")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected empty slots, got %v", slots)
	}
}

func TestGetAvailableSlots_FutureDate(t *testing.T) {
	// 2030-01-07 is a Monday.
	bookings := &bookingRepoStub{
		active: []domain.Booking{{BookingTime: "11:00", DurationMinutes: 60, Status: domain.BookingStatusPending}},
	}
	schedule := &scheduleRepoStub{windows: []domain.TimeSlotWindow{window("10:00", "13:00")}}
	svc := newTestBookingService(bookings, schedule, &offeringRepoStub{}, &notifierStub{})

	slots, err := svc.GetAvailableSlots(context.Background(), "2030-01-07")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"10:00", "12:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("GetAvailableSlots() = %v, want %v", slots, want)
	}
}

func validCreateDTO() domain.CreateBookingDTO {
	return domain.CreateBookingDTO{
		Name:        "Иван Петров",
		Email:       "ivan@example.com",
		BookingDate: time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02"),
		BookingTime: "12:00",
	}
}

func TestCreate_MissingFields(t *testing.T) {
	svc := newTestBookingService(&bookingRepoStub{}, &scheduleRepoStub{}, &offeringRepoStub{}, &notifierStub{})

	dto := validCreateDTO()
	dto.Email = ""
	if _, err := svc.Create(context.Background(), dto); err == nil {
		t.Fatal("expected error for missing email")
	}
}

func TestCreate_InvalidEmail(t *testing.T) {
	repo := &bookingRepoStub{}
	svc := newTestBookingService(repo, &scheduleRepoStub{}, &offeringRepoStub{}, &notifierStub{})

	dto := validCreateDTO()
	dto.Email = "not-an-email"
	if _, err := svc.Create(context.Background(), dto); err == nil {
		t.Fatal("expected error for invalid email")
	}
	if repo.created != nil {
		t.Fatal("booking must not be persisted when validation fails")
	}
}

func TestCreate_PastTime(t *testing.T) {
	svc := newTestBookingService(&bookingRepoStub{}, &scheduleRepoStub{}, &offeringRepoStub{}, &notifierStub{})

	dto := validCreateDTO()
	dto.BookingDate = "2020-01-01"
	if _, err := svc.Create(context.Background(), dto); err == nil {
		t.Fatal("expected error for past date")
	}
}

func TestCreate_SlotTaken(t *testing.T) {
	repo := &bookingRepoStub{createErr: repository.ErrSlotTaken}
	notifier := &notifierStub{}
	svc := newTestBookingService(repo, &scheduleRepoStub{}, &offeringRepoStub{}, notifier)

	_, err := svc.Create(context.Background(), validCreateDTO())
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("expected ErrSlotUnavailable, got %v", err)
	}
	if len(notifier.confirmations) != 0 {
		t.Fatal("emails must not be enqueued for a failed booking")
	}
}

func TestCreate_OK(t *testing.T) {
	repo := &bookingRepoStub{createdID: 42}
	notifier := &notifierStub{}
	offeringID := int64(7)
	offerings := &offeringRepoStub{
		offering: &domain.Offering{ID: offeringID, Name: "Консультация", DurationMinutes: 90},
	}
	svc := newTestBookingService(repo, &scheduleRepoStub{}, offerings, notifier)

	dto := validCreateDTO()
	dto.OfferingID = &offeringID

	id, err := svc.Create(context.Background(), dto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}
	if repo.created == nil {
		t.Fatal("booking was not persisted")
	}
	if repo.created.Status != domain.BookingStatusPending {
		t.Errorf("expected status pending, got %s", repo.created.Status)
	}
	if repo.created.DurationMinutes != 90 {
		t.Errorf("expected duration from offering (90), got %d", repo.created.DurationMinutes)
	}
	if repo.created.ConfirmationToken == "" {
		t.Error("confirmation token must be set")
	}
	if len(notifier.confirmations) != 1 || len(notifier.alerts) != 1 {
		t.Errorf("expected one confirmation and one alert, got %d and %d",
			len(notifier.confirmations), len(notifier.alerts))
	}
	if len(notifier.confirmations) == 1 && notifier.confirmations[0].OfferingName != "Консультация" {
		t.Errorf("expected offering name in payload, got %q", notifier.confirmations[0].OfferingName)
	}
}

func TestCreate_DefaultDuration(t *testing.T) {
	repo := &bookingRepoStub{}
	svc := newTestBookingService(repo, &scheduleRepoStub{}, &offeringRepoStub{}, &notifierStub{})

	if _, err := svc.Create(context.Background(), validCreateDTO()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.created.DurationMinutes != domain.DefaultBookingDuration {
		t.Errorf("expected default duration %d, got %d", domain.DefaultBookingDuration, repo.created.DurationMinutes)
	}
}

func TestConfirm(t *testing.T) {
	t.Run("pending becomes confirmed", func(t *testing.T) {
		repo := &bookingRepoStub{
			byToken: &domain.Booking{ID: 5, Status: domain.BookingStatusPending},
		}
		svc := newTestBookingService(repo, &scheduleRepoStub{}, &offeringRepoStub{}, &notifierStub{})

		booking, err := svc.Confirm(context.Background(), "token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if booking.Status != domain.BookingStatusConfirmed {
			t.Errorf("expected confirmed, got %s", booking.Status)
		}
		if repo.updatedDTO == nil || repo.updatedDTO.Status == nil || *repo.updatedDTO.Status != domain.BookingStatusConfirmed {
			t.Error("expected status update to confirmed")
		}
	})

	t.Run("already confirmed is not an error", func(t *testing.T) {
		repo := &bookingRepoStub{
			byToken: &domain.Booking{ID: 5, Status: domain.BookingStatusConfirmed},
		}
		svc := newTestBookingService(repo, &scheduleRepoStub{}, &offeringRepoStub{}, &notifierStub{})

		booking, err := svc.Confirm(context.Background(), "token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if booking.Status != domain.BookingStatusConfirmed {
			t.Errorf("expected confirmed, got %s", booking.Status)
		}
		if repo.updatedDTO != nil {
			t.Error("already confirmed booking must not be updated")
		}
	})

	t.Run("cancelled cannot be confirmed", func(t *testing.T) {
		repo := &bookingRepoStub{
			byToken: &domain.Booking{ID: 5, Status: domain.BookingStatusCancelled},
		}
		svc := newTestBookingService(repo, &scheduleRepoStub{}, &offeringRepoStub{}, &notifierStub{})

		if _, err := svc.Confirm(context.Background(), "token"); err == nil {
			t.Fatal("expected error for cancelled booking")
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		repo := &bookingRepoStub{tokenErr: errors.New("not found")}
		svc := newTestBookingService(repo, &scheduleRepoStub{}, &offeringRepoStub{}, &notifierStub{})

		if _, err := svc.Confirm(context.Background(), "missing"); err == nil {
			t.Fatal("expected error for unknown token")
		}
	})
}
