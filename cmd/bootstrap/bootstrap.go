package bootstrap

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"mediguard-api/config"
	deliveryHttp "mediguard-api/internal/delivery/http"
	"mediguard-api/internal/delivery/http/handler"
	"mediguard-api/internal/delivery/http/middleware"
	"mediguard-api/internal/delivery/web"
	"mediguard-api/internal/infrastructure/database"
	"mediguard-api/internal/repository"
	"mediguard-api/internal/usecase"
	"mediguard-api/pkg/jwt"
	"mediguard-api/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Log    *logrus.Logger
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := NewLogger(cfg.Log)
	log.Info("Configuration loaded successfully")

	db, err := database.NewConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Infof("Database connected successfully (driver=%s)", cfg.DB.Driver)

	h, err := NewHandler(cfg, db, log)
	if err != nil {
		database.Close(db)
		return nil, err
	}

	return &App{
		Config: cfg,
		DB:     db,
		Log:    log,
		Server: &http.Server{
			Addr:              net.JoinHostPort(cfg.App.Host, cfg.App.Port),
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if strings.EqualFold(cfg.Format, "text") {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// NewHandler wires repositories, usecases, handlers and middleware over db.
func NewHandler(cfg *config.Config, db *gorm.DB, log *logrus.Logger) (http.Handler, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	medicationRepo := repository.NewMedicationRepository()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo)
	medicationUsecase := usecase.NewMedicationUsecase(db, log, medicationRepo)
	adminUsecase := usecase.NewAdminUsecase(db, log, userRepo, appointmentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	medicationHandler := handler.NewMedicationHandler(medicationUsecase, customValidator)
	adminHandler := handler.NewAdminHandler(adminUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	spa, err := web.NewHandler(cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up app host: %w", err)
	}

	router := deliveryHttp.NewRouter(
		authHandler,
		appointmentHandler,
		medicationHandler,
		adminHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
		spa,
	)
	return router.Setup(), nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on %s", app.Server.Addr)
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

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close releases the database handle.
func (app *App) Close() {
	if app.DB != nil {
		if err := database.Close(app.DB); err != nil {
			app.Log.Warnf("Failed to close database: %+v", err)
		}
	}
}
