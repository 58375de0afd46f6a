package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medical-office-api/config"
	deliveryHttp "medical-office-api/internal/delivery/http"
	"medical-office-api/internal/delivery/http/handler"
	"medical-office-api/internal/delivery/http/middleware"
	"medical-office-api/internal/infrastructure/cache"
	"medical-office-api/internal/infrastructure/database"
	"medical-office-api/internal/infrastructure/metrics"
	"medical-office-api/internal/repository"
	"medical-office-api/internal/service"
	"medical-office-api/internal/usecase"
	"medical-office-api/pkg/jwt"
	"medical-office-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := NewLogger(cfg.App.LogLevel)
	app.Log = log
	log.Info("Configuration loaded successfully")

	if cfg.DB.AutoMigrate {
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, err
		}
		if err := database.MigrateUp(dsn, log); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	server, accountUsecase := initializeServer(cfg, log, db, redisClient)
	app.Server = server

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	created, err := accountUsecase.SeedAdmin(ctx, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to seed admin: %w", err)
	}
	if created {
		log.WithField("email", cfg.Bootstrap.AdminEmail).Info("Bootstrap administrator created")
	}

	return app, nil
}

// NewLogger returns a JSON logrus logger writing to stdout. Unknown levels fall back to info.
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// initializeServer wires repositories, usecases, handlers and middleware
// into the HTTP server. The account usecase is returned for the admin seed.
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) (*http.Server, usecase.AccountUsecase) {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	adminRepo := repository.NewAdminRepository()
	patientRepo := repository.NewPatientRepository()
	practitionerRepo := repository.NewPractitionerRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	consultationRepo := repository.NewConsultationRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	examRepo := repository.NewExamRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	tokenStore := service.NewTokenStore(redisClient, log)

	// Metrics go to the default registry served on /metrics
	appointmentMetrics := metrics.NewAppointmentMetrics(nil)
	httpMetrics := metrics.NewHTTPMetrics(nil)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, adminRepo, auditService, jwtService, tokenStore)
	accountUsecase := usecase.NewAccountUsecase(db, log, userRepo, adminRepo, auditService, tokenStore)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService)
	practitionerUsecase := usecase.NewPractitionerUsecase(db, log, practitionerRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, consultationRepo, auditService, appointmentMetrics)
	consultationUsecase := usecase.NewConsultationUsecase(db, log, consultationRepo, auditService)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo)
	examUsecase := usecase.NewExamUsecase(db, log, examRepo)
	statsUsecase := usecase.NewStatsUsecase(db, log, patientRepo, practitionerRepo, appointmentRepo,
		consultationRepo, prescriptionRepo, examRepo, userRepo, adminRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Auth:         handler.NewAuthHandler(authUsecase, customValidator),
		Account:      handler.NewAccountHandler(accountUsecase, customValidator),
		Patient:      handler.NewPatientHandler(patientUsecase, customValidator),
		Practitioner: handler.NewPractitionerHandler(practitionerUsecase, customValidator),
		Appointment:  handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		Consultation: handler.NewConsultationHandler(consultationUsecase, customValidator),
		Prescription: handler.NewPrescriptionHandler(prescriptionUsecase, customValidator),
		Exam:         handler.NewExamHandler(examUsecase, customValidator),
		Stats:        handler.NewStatsHandler(statsUsecase),
		AuditLog:     handler.NewAuditLogHandler(auditLogUsecase),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(log, httpMetrics)

	router := deliveryHttp.NewRouter(handlers, authMiddleware, corsMiddleware, loggingMiddleware)

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
	}, accountUsecase
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
