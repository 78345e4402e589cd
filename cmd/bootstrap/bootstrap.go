package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"hongmove-frontdesk/config"
	deliveryHttp "hongmove-frontdesk/internal/delivery/http"
	"hongmove-frontdesk/internal/delivery/http/handler"
	"hongmove-frontdesk/internal/delivery/http/middleware"
	"hongmove-frontdesk/internal/infrastructure/cache"
	"hongmove-frontdesk/internal/infrastructure/hongmove"
	"hongmove-frontdesk/internal/repository"
	"hongmove-frontdesk/internal/service"
	"hongmove-frontdesk/internal/usecase"
	"hongmove-frontdesk/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
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

	// Setup logger
	log := setupLogger(cfg.Log)
	log.Info("Configuration loaded successfully")

	if cfg.Hongmove.AdminToken == "" {
		log.Warn("ADMIN_API_KEY is not set, booking management routes will answer 500")
	}
	if cfg.Hongmove.AgentToken == "" {
		log.Info("HONGMOVE_AGENT_TOKEN is not set, bookings are created without agent credentials")
	}

	// Redis is optional; without it the create route is limited per process
	var limiter service.RateLimiter
	if cfg.RateLimit.Enabled() {
		if cfg.Redis.Enabled() {
			redisClient, err := cache.NewRedisClient(cfg.Redis, log)
			if err != nil {
				return nil, fmt.Errorf("failed to connect to Redis: %w", err)
			}
			app.RedisClient = redisClient
			limiter = service.NewRedisRateLimiter(redisClient, log, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		} else {
			limiter = service.NewLocalRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		}
	}

	// Initialize all layers
	server, err := initializeServer(cfg, log, limiter)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the standard logrus logger from config
func setupLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()

	if strings.EqualFold(cfg.Format, "text") {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, limiter service.RateLimiter) (*http.Server, error) {
	handler, err := NewHandler(cfg, log, limiter)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// NewHandler wires every layer behind the router. A nil limiter disables rate limiting.
func NewHandler(cfg *config.Config, log *logrus.Logger, limiter service.RateLimiter) (http.Handler, error) {
	proxies, err := middleware.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RATE_LIMIT_TRUSTED_PROXIES: %w", err)
	}

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories and upstream client
	locationRepo := repository.NewLocationRepository()
	hongmoveClient := hongmove.NewClient(cfg.Hongmove, nil, log)

	// Initialize usecases
	bookingUsecase := usecase.NewBookingUsecase(log, hongmoveClient, cfg.Hongmove)
	locationUsecase := usecase.NewLocationUsecase(locationRepo)

	// Initialize handlers
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	locationHandler := handler.NewLocationHandler(locationUsecase)

	// Initialize middleware
	requestMiddleware := middleware.NewRequestMiddleware(log, proxies)
	corsMiddleware := middleware.NewCORSMiddleware()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(limiter, proxies, log)

	// Initialize router
	router := deliveryHttp.NewRouter(bookingHandler, locationHandler, requestMiddleware, corsMiddleware, rateLimitMiddleware)
	return router.Setup(), nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		logrus.Infof("Hongmove API: %s", app.Config.Hongmove.BaseURL)
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

// Close closes the Redis connection when one was opened
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
