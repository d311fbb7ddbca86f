package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apihttp "inkwell/internal/controller/http"
	"inkwell/internal/repo/persistent"
	"inkwell/internal/usecase"
	"inkwell/pkg/cache"
	"inkwell/pkg/config"
	"inkwell/pkg/jwt"
	"inkwell/pkg/logger"
	"inkwell/pkg/middleware"
	"inkwell/pkg/response"
	"inkwell/pkg/session"
	"inkwell/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, s3Client *storage.Client) {
	gin.SetMode(cfg.GinMode)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.TokenTTL)
	sessions := session.NewRedisStore(redisClient)
	listCache := cache.New(redisClient, cfg.CacheTTL)

	// Repositories
	postRepo := persistent.NewPostRepository(db)
	categoryRepo := persistent.NewCategoryRepository(db)
	tagRepo := persistent.NewTagRepository(db)
	authorRepo := persistent.NewAuthorRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	interactionRepo := persistent.NewInteractionRepository(db)
	mediaRepo := persistent.NewMediaRepository(db)
	userRepo := persistent.NewUserRepository(db)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, sessions)
	postUseCase := usecase.NewPostUseCase(postRepo, categoryRepo, listCache, log)
	taxonomyUseCase := usecase.NewTaxonomyUseCase(categoryRepo, tagRepo, listCache, log)
	authorUseCase := usecase.NewAuthorUseCase(authorRepo)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo)
	interactionUseCase := usecase.NewInteractionUseCase(interactionRepo, postRepo, commentRepo)
	mediaUseCase := usecase.NewMediaUseCase(mediaRepo, s3Client, cfg.MaxUploadBytes, log)

	// HTTP handlers
	authHandler := apihttp.NewAuthHandler(authUseCase, log)
	postHandler := apihttp.NewPostHandler(postUseCase, log)
	taxonomyHandler := apihttp.NewTaxonomyHandler(taxonomyUseCase, log)
	authorHandler := apihttp.NewAuthorHandler(authorUseCase, log)
	commentHandler := apihttp.NewCommentHandler(commentUseCase, log)
	interactionHandler := apihttp.NewInteractionHandler(interactionUseCase, log)
	mediaHandler := apihttp.NewMediaHandler(mediaUseCase, log)

	r := gin.New()
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not found")
	})

	api := r.Group("/api/v1")

	// Rate limiting keys on user_id when set, so it must run after
	// AuthMiddleware on authenticated groups. Public routes fall back
	// to the client IP.
	rateLimit := middleware.RateLimitMiddleware(redisClient, 100, time.Minute)

	// Public routes
	public := api.Group("")
	public.Use(rateLimit)
	{
		public.POST("/auth/login", authHandler.Login)

		public.GET("/posts", postHandler.ListPublic)
		public.GET("/posts/slug/:slug", postHandler.GetBySlug)
		public.GET("/posts/:id", postHandler.GetByID)

		public.GET("/categories", taxonomyHandler.ListCategories)
		public.GET("/categories/:id", taxonomyHandler.GetCategory)
		public.GET("/tags", taxonomyHandler.ListTags)
		public.GET("/tags/:id", taxonomyHandler.GetTag)

		public.GET("/authors", authorHandler.List)
		public.GET("/authors/:id", authorHandler.Get)

		public.GET("/comments", commentHandler.ListForPost)
	}

	// Authenticated routes
	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware(jwtService, sessions), rateLimit)
	{
		auth.POST("/auth/logout", authHandler.Logout)
		auth.GET("/auth/me", authHandler.Me)
		auth.POST("/auth/refresh", authHandler.Refresh)
		auth.POST("/auth/change-password", authHandler.ChangePassword)

		auth.POST("/comments", commentHandler.Create)

		auth.POST("/likes/toggle", interactionHandler.ToggleLike)
		auth.GET("/likes/check", interactionHandler.CheckLike)
		auth.GET("/likes/count", interactionHandler.LikeCount)

		auth.GET("/saves", interactionHandler.ListSaves)
		auth.POST("/saves/toggle", interactionHandler.ToggleSave)
		auth.GET("/saves/check", interactionHandler.CheckSave)
	}

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtService, sessions), middleware.RequireAdmin(), rateLimit)
	{
		admin.GET("/posts", postHandler.ListAdmin)
		admin.POST("/posts", postHandler.Create)
		admin.GET("/posts/:id", postHandler.GetAdmin)
		admin.PUT("/posts/:id", postHandler.Update)
		admin.DELETE("/posts/:id", postHandler.Delete)

		admin.POST("/categories", taxonomyHandler.CreateCategory)
		admin.PUT("/categories/:id", taxonomyHandler.UpdateCategory)
		admin.DELETE("/categories/:id", taxonomyHandler.DeleteCategory)

		admin.POST("/tags", taxonomyHandler.CreateTag)
		admin.PUT("/tags/:id", taxonomyHandler.UpdateTag)
		admin.DELETE("/tags/:id", taxonomyHandler.DeleteTag)

		admin.POST("/authors", authorHandler.Create)
		admin.PUT("/authors/:id", authorHandler.Update)
		admin.DELETE("/authors/:id", authorHandler.Delete)

		admin.GET("/comments", commentHandler.ListAdmin)
		admin.PUT("/comments/:id", commentHandler.Update)
		admin.DELETE("/comments/:id", commentHandler.Delete)

		admin.DELETE("/saves/:id", interactionHandler.DeleteSave)
	}

	// Media library (admin tooling)
	media := api.Group("/media")
	media.Use(middleware.AuthMiddleware(jwtService, sessions), middleware.RequireAdmin(), rateLimit)
	{
		media.GET("", mediaHandler.List)
		media.POST("/upload", mediaHandler.Upload)
		media.POST("/bulk-destroy", mediaHandler.BulkDestroy)
		media.GET("/:id", mediaHandler.Get)
		media.PUT("/:id", mediaHandler.Update)
		media.DELETE("/:id", mediaHandler.Delete)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Error closing Redis: %v", err)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Server exited")
}
