package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vitrina/config"
	"vitrina/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	router.GET("/feed.xml", h.getRSSFeed)
	router.GET("/sitemap.xml", h.getSitemap)

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.login)
			auth.POST("/refresh", h.refreshTokens)
			auth.POST("/logout", h.logout)
		}

		users := api.Group("/users")
		users.Use(h.authMiddleware())
		{
			users.GET("/me", h.getCurrentUser)
			users.PUT("/:id/password", h.updatePassword)

			admin := users.Group("/")
			admin.Use(h.adminMiddleware())
			{
				admin.POST("/", h.createUser)
				admin.GET("/", h.getUsers)
				admin.GET("/:id", h.getUserByID)
				admin.PUT("/:id", h.updateUser)
				admin.DELETE("/:id", h.deleteUser)
			}
		}

		posts := api.Group("/posts")
		{
			posts.GET("/", h.getPosts)
			posts.GET("/:slug", h.getPostBySlug)
			posts.POST("/:slug/views", h.rateLimitMiddleware(), h.registerPostView)
		}

		projects := api.Group("/projects")
		{
			projects.GET("/", h.getProjects)
			projects.GET("/:slug", h.getProjectBySlug)
		}

		api.GET("/offerings", h.getOfferings)
		api.GET("/team", h.getTeam)
		api.GET("/testimonials", h.getTestimonials)
		api.GET("/videos", h.getVideos)

		resources := api.Group("/resources")
		{
			resources.GET("/", h.getResources)
			resources.GET("/:id/download", h.downloadResource)
		}

		booking := api.Group("/booking")
		{
			booking.GET("/available-slots", h.getAvailableSlots)
			booking.POST("/", h.rateLimitMiddleware(), h.createBooking)
			booking.GET("/confirm/:token", h.confirmBooking)
		}

		admin := api.Group("/admin")
		admin.Use(h.authMiddleware(), h.editorMiddleware())
		{
			adminPosts := admin.Group("/posts")
			{
				adminPosts.POST("/", h.createPost)
				adminPosts.GET("/", h.getAllPosts)
				adminPosts.GET("/:id", h.getPostByID)
				adminPosts.PUT("/:id", h.updatePost)
				adminPosts.DELETE("/:id", h.deletePost)
			}

			adminProjects := admin.Group("/projects")
			{
				adminProjects.POST("/", h.createProject)
				adminProjects.GET("/", h.getAllProjects)
				adminProjects.GET("/:id", h.getProjectByID)
				adminProjects.PUT("/:id", h.updateProject)
				adminProjects.DELETE("/:id", h.deleteProject)
			}

			adminOfferings := admin.Group("/offerings")
			{
				adminOfferings.POST("/", h.createOffering)
				adminOfferings.GET("/", h.getAllOfferings)
				adminOfferings.GET("/:id", h.getOfferingByID)
				adminOfferings.PUT("/:id", h.updateOffering)
				adminOfferings.DELETE("/:id", h.deleteOffering)
			}

			adminTeam := admin.Group("/team")
			{
				adminTeam.POST("/", h.createTeamMember)
				adminTeam.GET("/", h.getAllTeamMembers)
				adminTeam.GET("/:id", h.getTeamMemberByID)
				adminTeam.PUT("/:id", h.updateTeamMember)
				adminTeam.DELETE("/:id", h.deleteTeamMember)
				adminTeam.POST("/:id/photo", h.uploadTeamMemberPhoto)
			}

			adminTestimonials := admin.Group("/testimonials")
			{
				adminTestimonials.POST("/", h.createTestimonial)
				adminTestimonials.GET("/", h.getAllTestimonials)
				adminTestimonials.GET("/:id", h.getTestimonialByID)
				adminTestimonials.PUT("/:id", h.updateTestimonial)
				adminTestimonials.DELETE("/:id", h.deleteTestimonial)
			}

			adminVideos := admin.Group("/videos")
			{
				adminVideos.POST("/", h.createVideo)
				adminVideos.GET("/", h.getAllVideos)
				adminVideos.GET("/:id", h.getVideoByID)
				adminVideos.PUT("/:id", h.updateVideo)
				adminVideos.DELETE("/:id", h.deleteVideo)
			}

			adminResources := admin.Group("/resources")
			{
				adminResources.POST("/", h.createResource)
				adminResources.GET("/", h.getAllResources)
				adminResources.GET("/:id", h.getResourceByID)
				adminResources.PUT("/:id", h.updateResource)
				adminResources.DELETE("/:id", h.deleteResource)
			}

			adminSchedule := admin.Group("/schedule")
			{
				adminSchedule.POST("/", h.createTimeSlotWindow)
				adminSchedule.GET("/", h.getTimeSlotWindows)
				adminSchedule.GET("/:id", h.getTimeSlotWindowByID)
				adminSchedule.PUT("/:id", h.updateTimeSlotWindow)
				adminSchedule.DELETE("/:id", h.deleteTimeSlotWindow)
			}

			admin.POST("/uploads", h.uploadFile)

			adminBookings := admin.Group("/bookings")
			{
				adminBookings.GET("/", h.getBookings)
				adminBookings.GET("/:id", h.getBookingByID)
				adminBookings.PUT("/:id", h.updateBooking)
			}
		}
	}
}
