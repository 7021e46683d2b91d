package router

import (
	"net/http"
	"time"

	"spotline/config"
	"spotline/internal/cache"
	"spotline/internal/handler"
	"spotline/internal/middleware"
	"spotline/internal/repository"
	"spotline/internal/service"
	"spotline/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cch *cache.Cache, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewSlidingWindowLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	locRepo := repository.NewLocationRepository(db)
	checkInRepo := repository.NewCheckInRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	msgRepo := repository.NewMessageRepository(db)
	favRepo := repository.NewFavoriteRepository(db)
	blockRepo := repository.NewBlockRepository(db)
	reportRepo := repository.NewReportRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, userRepo, auditRepo)
	googleOAuthHandler := handler.NewGoogleOAuthHandler(cfg, authSvc)
	locationHandler := handler.NewLocationHandler(locRepo, checkInRepo, commentRepo)
	checkInHandler := handler.NewCheckInHandler(checkInRepo, locRepo)
	commentHandler := handler.NewCommentHandler(commentRepo, locRepo, reportRepo)
	alertHandler := handler.NewAlertHandler(alertRepo, locRepo, cch)
	messageHandler := handler.NewMessageHandler(msgRepo, userRepo, blockRepo)
	userHandler := handler.NewUserHandler(userRepo, blockRepo, authSvc, cloud)
	favoriteHandler := handler.NewFavoriteHandler(favRepo, locRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.PATCH("/change-password", authMw, authHandler.ChangePassword)
			authGroup.GET("/me", authMw, authHandler.Me)
			authGroup.GET("/google", googleOAuthHandler.Redirect)
			authGroup.GET("/google/callback", googleOAuthHandler.Callback)
		}

		locations := api.Group("/locations")
		locations.Use(authMw)
		{
			locations.GET("", locationHandler.List)
			locations.GET("/nearby", locationHandler.Nearby)
			locations.POST("", locationHandler.Create)
			locations.GET("/:id", locationHandler.Get)
			locations.POST("/:id/rate", locationHandler.Rate)
			locations.GET("/:id/safety", alertHandler.SafetyStats)
			locations.GET("/:id/alerts", alertHandler.ForLocation)
			locations.GET("/:id/comments", commentHandler.ListByLocation)
			locations.POST("/:id/comments", commentHandler.Create)
			locations.GET("/:id/users", checkInHandler.ActiveAtLocation)
			locations.GET("/:id/favorite", favoriteHandler.Check)
			locations.POST("/:id/favorite", favoriteHandler.Add)
			locations.DELETE("/:id/favorite", favoriteHandler.Remove)
		}

		checkins := api.Group("/checkins")
		checkins.Use(authMw)
		{
			checkins.POST("", checkInHandler.Create)
			checkins.POST("/checkout", checkInHandler.Checkout)
			checkins.GET("/me", checkInHandler.MyActive)
		}

		comments := api.Group("/comments")
		comments.Use(authMw)
		{
			comments.DELETE("/:id", commentHandler.Delete)
			comments.POST("/:id/report", commentHandler.Report)
		}

		alerts := api.Group("/alerts")
		alerts.Use(authMw)
		{
			alerts.POST("", alertHandler.Create)
			alerts.GET("/nearby", alertHandler.Nearby)
			alerts.POST("/:id/dismiss", alertHandler.Dismiss)
		}

		messages := api.Group("/messages")
		messages.Use(authMw)
		{
			messages.POST("", messageHandler.Send)
			messages.GET("/unread", messageHandler.UnreadCount)
			messages.GET("/conversations", messageHandler.Conversations)
			messages.GET("/conversations/:id", messageHandler.Conversation)
			messages.PUT("/read-all", messageHandler.MarkAllRead)
			messages.PUT("/:id/read", messageHandler.MarkRead)
			messages.DELETE("/:id", messageHandler.Delete)
		}

		api.GET("/users/:id", authMw, userHandler.GetProfile)
		api.POST("/users/:id/block", authMw, userHandler.Block)
		api.DELETE("/users/:id/block", authMw, userHandler.Unblock)

		me := api.Group("/me")
		me.Use(authMw)
		{
			me.PATCH("/profile", userHandler.UpdateProfile)
			me.GET("/settings", userHandler.GetSettings)
			me.PATCH("/settings", userHandler.UpdateSettings)
			me.POST("/avatar", userHandler.UploadAvatar)
			me.GET("/blocked", userHandler.ListBlocked)
			me.GET("/comments", commentHandler.Mine)
			me.GET("/favorites", favoriteHandler.List)
			me.DELETE("", userHandler.DeleteAccount)
		}
	}

	return r
}
