package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinica-dental-api/config"
	deliveryHttp "clinica-dental-api/internal/delivery/http"
	"clinica-dental-api/internal/delivery/http/handler"
	"clinica-dental-api/internal/delivery/http/middleware"
	"clinica-dental-api/internal/infrastructure/cache"
	"clinica-dental-api/internal/infrastructure/database"
	"clinica-dental-api/internal/repository"
	"clinica-dental-api/internal/service"
	"clinica-dental-api/internal/usecase"
	"clinica-dental-api/pkg/jwt"
	"clinica-dental-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config       *config.Config
	DB           *gorm.DB
	RedisClient  *redis.Client
	Server       *http.Server
	LoginLimiter *middleware.RateLimiter
	logFile      io.Closer
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	app.logFile = configureLogger(cfg.Log)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, database.LogLevel(cfg.App.Env))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(db, database.MigrateUp); err != nil {
			app.Close()
			return nil, err
		}
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	app.LoginLimiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	app.Server = initializeServer(cfg, db, redisClient, app.LoginLimiter)

	return app, nil
}

// Migrate applies the embedded schema migrations and exits
func Migrate(direction database.MigrationDirection) error {
	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if closer := configureLogger(cfg.Log); closer != nil {
		defer closer.Close()
	}

	db, err := database.NewPostgresConnection(cfg.DB, database.LogLevel(cfg.App.Env))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	return database.RunMigrations(db, direction)
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// configureLogger applies the configured level and, when LOG_FILE is set, tees
// output into a rotating file. The returned closer is nil without a file.
func configureLogger(cfg config.LogConfig) io.Closer {
	if level, err := logrus.ParseLevel(cfg.Level); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Warnf("Unknown log level %q, keeping %s", cfg.Level, logrus.GetLevel())
	}

	if cfg.File == "" {
		return nil
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    50, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}
	logrus.SetOutput(io.MultiWriter(os.Stdout, file))
	return file
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, loginLimiter *middleware.RateLimiter) *http.Server {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	dentistRepo := repository.NewDentistRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	tokenStore := service.NewRedisTokenStore(redisClient)
	auditService := service.NewAuditService(log, auditLogRepo)
	schedulingRule := service.NewSchedulingRule(cfg.App.Location(), cfg.Schedule.AllowBackToBack)
	scheduleLocker := service.NewRedisScheduleLocker(redisClient, log, cfg.Schedule.LockTTL)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, jwtService, tokenStore, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, clientRepo, dentistRepo, serviceRepo, appointmentRepo, schedulingRule, scheduleLocker, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	dentistHandler := handler.NewDentistHandler(appointmentUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowedOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(log, authHandler, appointmentHandler, dentistHandler, auditLogHandler, authMiddleware, corsMiddleware, loginLimiter)
	httpRouter := router.Setup()

	logrus.Infof("Clinic time zone: %s", schedulingRule.Location())

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.LoginLimiter != nil {
		app.LoginLimiter.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}

	if app.logFile != nil {
		app.logFile.Close()
	}
}
