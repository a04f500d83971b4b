package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"vitrina/internal/domain"
)

type Repositories struct {
	User        UserRepository
	Auth        AuthRepository
	Post        PostRepository
	Project     ProjectRepository
	Offering    OfferingRepository
	Team        TeamRepository
	Testimonial TestimonialRepository
	Video       VideoRepository
	Resource    ResourceRepository
	Schedule    ScheduleRepository
	Booking     BookingRepository
	ViewMarker  ViewMarkerStore
}

func NewRepositories(db *pgxpool.Pool, rdb *redis.Client) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Auth:        NewAuthRepository(db),
		Post:        NewPostRepository(db),
		Project:     NewProjectRepository(db),
		Offering:    NewOfferingRepository(db),
		Team:        NewTeamRepository(db),
		Testimonial: NewTestimonialRepository(db),
		Video:       NewVideoRepository(db),
		Resource:    NewResourceRepository(db),
		Schedule:    NewScheduleRepository(db),
		Booking:     NewBookingRepository(db),
		ViewMarker:  NewViewMarkerStore(rdb),
	}
}

type UserRepository interface {
	Create(ctx context.Context, user domain.CreateUserDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, user domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteSessionsByUserID(ctx context.Context, userID int64) error
}

type PostRepository interface {
	Create(ctx context.Context, dto domain.CreatePostDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	Update(ctx context.Context, id int64, dto domain.UpdatePostDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, int, error)
	IncrementViewCount(ctx context.Context, slug string) (int64, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, dto domain.CreateProjectDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Project, error)
	Update(ctx context.Context, id int64, dto domain.UpdateProjectDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Project, int, error)
}

type OfferingRepository interface {
	Create(ctx context.Context, dto domain.CreateOfferingDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Offering, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Offering, error)
	Update(ctx context.Context, id int64, dto domain.UpdateOfferingDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, publishedOnly bool) ([]domain.Offering, error)
}

type TeamRepository interface {
	Create(ctx context.Context, dto domain.CreateTeamMemberDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.TeamMember, error)
	Update(ctx context.Context, id int64, dto domain.UpdateTeamMemberDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, visibleOnly bool) ([]domain.TeamMember, error)
}

type TestimonialRepository interface {
	Create(ctx context.Context, dto domain.CreateTestimonialDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Testimonial, error)
	Update(ctx context.Context, id int64, dto domain.UpdateTestimonialDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, publishedOnly bool) ([]domain.Testimonial, error)
}

type VideoRepository interface {
	Create(ctx context.Context, video domain.Video) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Video, error)
	Update(ctx context.Context, video domain.Video) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, publishedOnly bool) ([]domain.Video, error)
}

type ResourceRepository interface {
	Create(ctx context.Context, dto domain.CreateResourceDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
	Update(ctx context.Context, id int64, dto domain.UpdateResourceDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, publishedOnly bool) ([]domain.Resource, error)
	IncrementDownloadCount(ctx context.Context, id int64) error
}

type ScheduleRepository interface {
	Create(ctx context.Context, window domain.TimeSlotWindow) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlotWindow, error)
	Update(ctx context.Context, window domain.TimeSlotWindow) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.TimeSlotWindow, error)
	GetAvailableByDay(ctx context.Context, dayOfWeek int) ([]domain.TimeSlotWindow, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking domain.Booking) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByConfirmationToken(ctx context.Context, token string) (*domain.Booking, error)
	Update(ctx context.Context, id int64, dto domain.UpdateBookingDTO) error
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, int, error)
	GetActiveByDate(ctx context.Context, date time.Time) ([]domain.Booking, error)
}

// ViewMarkerStore хранит сессионные отметки "просмотр уже засчитан".
type ViewMarkerStore interface {
	MarkViewed(ctx context.Context, slug, sessionKey string, ttl time.Duration) (bool, error)
	Unmark(ctx context.Context, slug, sessionKey string) error
}
