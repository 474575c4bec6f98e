package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "portfolio-api/docs" // Swagger docs
	httpctl "portfolio-api/internal/controller/http"
	"portfolio-api/internal/model"
	"portfolio-api/internal/repo/cache"
	"portfolio-api/internal/repo/persistent"
	"portfolio-api/internal/repo/storage"
	"portfolio-api/internal/usecase"
	pkgcache "portfolio-api/pkg/cache"
	"portfolio-api/pkg/config"
	"portfolio-api/pkg/database"
	"portfolio-api/pkg/jwt"
	"portfolio-api/pkg/logger"
	"portfolio-api/pkg/middleware"
	"portfolio-api/pkg/queue"
	"portfolio-api/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const s3MediaPrefix = "media"

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	files       storage.FileStorage
	jwtService  *jwt.Service
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := pkgcache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	files, err := newFileStorage(cfg)
	if err != nil {
		log.Error("Failed to set up media storage: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		files:       files,
		jwtService:  jwt.NewService(cfg.JWTSecret, cfg.TokenTTL),
		queueClient: queueClient,
	}, nil
}

func newFileStorage(cfg *config.Config) (storage.FileStorage, error) {
	switch cfg.MediaBackend {
	case config.MediaBackendS3:
		client, err := s3.NewClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create S3 client: %w", err)
		}
		return storage.NewS3Storage(client, s3MediaPrefix), nil
	default:
		local, err := storage.NewLocalStorage(cfg.UploadDir)
		if err != nil {
			return nil, err
		}
		return local, nil
	}
}

func (a *App) Run() error {
	if a.cfg.AutoMigrate {
		if err := a.db.AutoMigrate(model.All()...); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Avoid a typed nil inside the interface when the queue is disabled.
	var publisher usecase.EventPublisher
	if a.queueClient != nil {
		publisher = a.queueClient
	}

	// Initialize repositories
	postRepo := persistent.NewPostRepository(a.db)
	contactRepo := persistent.NewContactRepository(a.db)
	subscriptionRepo := persistent.NewSubscriptionRepository(a.db)
	mediaRepo := persistent.NewMediaRepository(a.db)
	adminRepo := persistent.NewAdminRepository(a.db)

	postCache := cache.NewPostCache(a.redisClient, cache.DefaultTTL, a.log)

	// Initialize use cases
	blogUseCase := usecase.NewBlogUseCase(postRepo, postCache, publisher, a.cfg.SiteAuthor, a.log)
	authUseCase := usecase.NewAuthUseCase(adminRepo, a.jwtService, a.cfg.AdminUsername, a.log)
	mediaUseCase := usecase.NewMediaUseCase(mediaRepo, a.files, publisher, a.log)
	contactUseCase := usecase.NewContactUseCase(contactRepo, publisher, a.log)
	newsletterUseCase := usecase.NewNewsletterUseCase(subscriptionRepo, publisher, a.log)
	portfolioUseCase := usecase.NewPortfolioUseCase()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := authUseCase.EnsureAdmin(ctx, a.cfg.AdminPassword); err != nil {
		return fmt.Errorf("failed to provision admin: %w", err)
	}

	// Initialize HTTP handlers
	handlers := httpctl.Handlers{
		Blog:       httpctl.NewBlogHandler(blogUseCase, a.log),
		Auth:       httpctl.NewAuthHandler(authUseCase, a.log),
		Media:      httpctl.NewMediaHandler(mediaUseCase, a.cfg.MaxUploadBytes, a.log),
		Contact:    httpctl.NewContactHandler(contactUseCase, a.log),
		Newsletter: httpctl.NewNewsletterHandler(newsletterUseCase, a.log),
		Portfolio:  httpctl.NewPortfolioHandler(portfolioUseCase, a.log),
	}
	if a.redisClient != nil {
		notificationUseCase := usecase.NewNotificationUseCase(cache.NewNotificationStore(a.redisClient, a.log), a.log)
		handlers.Notifications = httpctl.NewNotificationHandler(notificationUseCase, a.log)
	}

	r := newEngine(a.cfg, a.log)

	opts := httpctl.RouterOptions{
		PublicBlogCreate: a.cfg.PublicBlogCreate,
		Throttle:         middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimit, a.cfg.RateLimitWindow, a.log),
	}
	if local, ok := a.files.(*storage.LocalStorage); ok {
		opts.UploadDir = local.Root()
	}
	httpctl.RegisterRoutes(r, handlers, middleware.AuthMiddleware(authUseCase), opts)

	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		a.log.Info("Portfolio API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

// newEngine builds the gin engine with recovery, CORS, request logging, the
// health check and the Swagger UI. Requests are logged once, by RequestLogger.
func newEngine(cfg *config.Config, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = 8 << 20

	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	r.Use(middleware.RequestLogger(log))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// corsConfig allows any origin for "*"; credentials are only allowed with an
// explicit origin list.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Language"},
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down portfolio API...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var serverErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			serverErr = err
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	a.log.Info("Portfolio API exited")
	return serverErr
}
