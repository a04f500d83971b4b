package service

import (
	"context"

	"go.uber.org/zap"

	"vitrina/config"
	"vitrina/internal/domain"
	"vitrina/internal/notify"
	"vitrina/internal/repository"
	"vitrina/internal/storage"
)

// Notifier ставит почтовые задачи в очередь. Реализуется notify.Client.
type Notifier interface {
	EnqueueBookingConfirmation(ctx context.Context, payload notify.BookingEmailPayload) error
	EnqueueBookingAdminAlert(ctx context.Context, payload notify.BookingEmailPayload) error
}

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
	Notifier    Notifier
}

type Services struct {
	User        UserService
	Auth        AuthService
	Post        PostService
	Project     ProjectService
	Offering    OfferingService
	Team        TeamService
	Testimonial TestimonialService
	Video       VideoService
	Resource    ResourceService
	Schedule    ScheduleService
	Booking     BookingService
	View        ViewService
	Upload      UploadService
}

func NewServices(deps Deps) *Services {
	return &Services{
		User:        NewUserService(deps.Repos.User, deps.Logger),
		Auth:        NewAuthService(deps.Repos.Auth, deps.Repos.User, deps.Config.JWT, deps.Logger),
		Post:        NewPostService(deps.Repos.Post, deps.Logger),
		Project:     NewProjectService(deps.Repos.Project, deps.Logger),
		Offering:    NewOfferingService(deps.Repos.Offering, deps.Logger),
		Team:        NewTeamService(deps.Repos.Team, deps.FileStorage, deps.Logger),
		Testimonial: NewTestimonialService(deps.Repos.Testimonial, deps.Logger),
		Video:       NewVideoService(deps.Repos.Video, deps.Logger),
		Resource:    NewResourceService(deps.Repos.Resource, deps.FileStorage, deps.Logger),
		Schedule:    NewScheduleService(deps.Repos.Schedule, deps.Logger),
		Booking:     NewBookingService(deps.Repos.Booking, deps.Repos.Schedule, deps.Repos.Offering, deps.Notifier, deps.Config.Booking, deps.Config.Site, deps.Logger),
		View:        NewViewService(deps.Repos.Post, deps.Repos.ViewMarker, deps.Config.Site.ViewTTL, deps.Logger),
		Upload:      NewUploadService(deps.FileStorage, deps.Logger),
	}
}

type UserService interface {
	Create(ctx context.Context, dto domain.CreateUserDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type AuthService interface {
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseToken(ctx context.Context, token string) (int64, domain.UserRole, error)
}

type PostService interface {
	Create(ctx context.Context, dto domain.CreatePostDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	Update(ctx context.Context, id int64, dto domain.UpdatePostDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, int, error)
}

type ProjectService interface {
	Create(ctx context.Context, dto domain.CreateProjectDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Project, error)
	Update(ctx context.Context, id int64, dto domain.UpdateProjectDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Project, int, error)
}

type OfferingService interface {
	Create(ctx context.Context, dto domain.CreateOfferingDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Offering, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Offering, error)
	Update(ctx context.Context, id int64, dto domain.UpdateOfferingDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, publishedOnly bool) ([]domain.Offering, error)
}

type TeamService interface {
	Create(ctx context.Context, dto domain.CreateTeamMemberDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.TeamMember, error)
	Update(ctx context.Context, id int64, dto domain.UpdateTeamMemberDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, visibleOnly bool) ([]domain.TeamMember, error)
	UploadPhoto(ctx context.Context, memberID int64, photo []byte, filename string) error
}

type TestimonialService interface {
	Create(ctx context.Context, dto domain.CreateTestimonialDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Testimonial, error)
	Update(ctx context.Context, id int64, dto domain.UpdateTestimonialDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, publishedOnly bool) ([]domain.Testimonial, error)
}

type VideoService interface {
	Create(ctx context.Context, dto domain.CreateVideoDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Video, error)
	Update(ctx context.Context, id int64, dto domain.UpdateVideoDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, publishedOnly bool) ([]domain.Video, error)
}

type ResourceService interface {
	Create(ctx context.Context, dto domain.CreateResourceDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
	Update(ctx context.Context, id int64, dto domain.UpdateResourceDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, publishedOnly bool) ([]domain.Resource, error)
	RegisterDownload(ctx context.Context, id int64) (string, error)
}

type ScheduleService interface {
	Create(ctx context.Context, dto domain.CreateTimeSlotWindowDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlotWindow, error)
	Update(ctx context.Context, id int64, dto domain.UpdateTimeSlotWindowDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.TimeSlotWindow, error)
}

type BookingService interface {
	GetAvailableSlots(ctx context.Context, date string) ([]string, error)
	Create(ctx context.Context, dto domain.CreateBookingDTO) (int64, error)
	Confirm(ctx context.Context, token string) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, id int64, dto domain.UpdateBookingDTO) error
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, int, error)
}

type ViewService interface {
	RegisterView(ctx context.Context, slug, sessionKey string) (int64, error)
}

type UploadService interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
}
