package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authapp "sdc/internal/application/auth"
	"sdc/internal/application/auth/usecases"
	contentapp "sdc/internal/application/content"
	intakeapp "sdc/internal/application/intake"
	"sdc/internal/domain/session"
	infraauth "sdc/internal/infrastructure/auth"
	"sdc/internal/infrastructure/cache"
	"sdc/internal/infrastructure/config"
	"sdc/internal/infrastructure/database"
	"sdc/internal/infrastructure/email"
	"sdc/internal/infrastructure/repository"
	"sdc/internal/infrastructure/sessionstore"
	"sdc/internal/interfaces/http/handlers"
	"sdc/internal/interfaces/http/middleware"
	"sdc/internal/shared/logger"
)

// Container wires the infrastructure, use cases, handlers and background
// services, and owns their lifecycles.
type Container struct {
	db    *gorm.DB
	cfg   *config.Config
	log   logger.Interface
	redis *redis.Client

	monitor *authapp.Monitor

	authHandler    *handlers.AuthHandler
	contentHandler *handlers.ContentHandler
	intakeHandler  *handlers.IntakeHandler

	sessionAuth *middleware.SessionAuth
	rateLimiter *middleware.RateLimiter
}

// NewContainer assembles the application. When Redis is disabled in the
// config, the session mirror and warning state fall back to in-process
// stores and rate limiting is skipped.
func NewContainer(cfg *config.Config, log logger.Interface) (*Container, error) {
	if err := database.Init(&cfg.Database); err != nil {
		return nil, err
	}
	db := database.Get()

	c := &Container{
		db:  db,
		cfg: cfg,
		log: log,
	}

	var mirror session.Mirror
	var warnings usecases.WarningStateStore

	if cfg.Redis.Enabled {
		redisClient, err := initRedis(cfg, log)
		if err != nil {
			return nil, err
		}
		c.redis = redisClient
		mirror = sessionstore.NewRedisMirror(redisClient)
		warnings = cache.NewRedisWarningStateStore(redisClient, "session:warning:")
		c.rateLimiter = middleware.NewRateLimiter(redisClient, 20, 1*time.Minute)
	} else {
		log.Warnw("Redis disabled, using in-process session mirror and warning state")
		mirror = sessionstore.NewMemoryMirror()
		warnings = cache.NewMemoryWarningStateStore()
	}

	adminRepo := repository.NewAdminRepository(db, log)
	testimonialRepo := repository.NewTestimonialRepository(db, log)
	personRepo := repository.NewPersonRepository(db, log)
	projectRepo := repository.NewProjectRepository(db, log)
	faqRepo := repository.NewFAQRepository(db, log)
	galleryRepo := repository.NewGalleryRepository(db, log)
	contactRepo := repository.NewContactMessageRepository(db, log)
	applicationRepo := repository.NewApplicationRepository(db, log)

	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	tokenService := infraauth.NewSessionTokenService(cfg.Auth.Token.Secret)
	store := sessionstore.NewDualStore(mirror, log)

	loginUC := usecases.NewLoginUseCase(adminRepo, hasher, tokenService, store, warnings, log)
	logoutUC := usecases.NewLogoutUseCase(store, warnings, log)
	verifyUC := usecases.NewVerifySessionUseCase(adminRepo, tokenService, store, log)
	statusUC := usecases.NewSessionStatusUseCase(store, warnings, log)
	extendUC := usecases.NewExtendSessionUseCase(store, warnings, log)
	dismissUC := usecases.NewDismissWarningUseCase(store, warnings, log)
	getProfileUC := usecases.NewGetProfileUseCase(adminRepo, log)
	updateProfileUC := usecases.NewUpdateProfileUseCase(adminRepo, log)

	contentService := contentapp.NewService(
		testimonialRepo, personRepo, projectRepo, faqRepo, galleryRepo, log,
	)

	var emailService intakeapp.EmailService
	if cfg.Email.Enabled {
		emailService = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			IntakeInbox: cfg.Email.IntakeInbox,
		})
	}
	intakeService := intakeapp.NewService(contactRepo, applicationRepo, emailService, log)

	loginPath := cfg.Server.AdminLoginPath

	c.authHandler = handlers.NewAuthHandler(
		loginUC, logoutUC, verifyUC, statusUC, extendUC, dismissUC,
		getProfileUC, updateProfileUC,
		cfg.Auth.Cookie, loginPath, log,
	)
	c.contentHandler = handlers.NewContentHandler(contentService, log)
	c.intakeHandler = handlers.NewIntakeHandler(intakeService, log)

	c.sessionAuth = middleware.NewSessionAuth(verifyUC, cfg.Auth.Cookie, loginPath)
	c.monitor = authapp.NewMonitor(mirror, log)

	return c, nil
}

// Start launches the background session monitor.
func (c *Container) Start(ctx context.Context) {
	c.monitor.Start(ctx)
}

// Shutdown stops background services and closes external connections.
func (c *Container) Shutdown(ctx context.Context) {
	c.monitor.Stop()

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close Redis connection", "error", err)
		}
	}

	if err := database.Close(); err != nil {
		c.log.Warnw("failed to close database connection", "error", err)
	}
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	log.Infow("Redis connection established")

	return redisClient, nil
}
