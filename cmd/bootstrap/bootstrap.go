package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthnet-api/config"
	deliveryHttp "healthnet-api/internal/delivery/http"
	"healthnet-api/internal/delivery/http/handler"
	"healthnet-api/internal/delivery/http/middleware"
	"healthnet-api/internal/infrastructure/ai"
	"healthnet-api/internal/infrastructure/cache"
	"healthnet-api/internal/infrastructure/database"
	"healthnet-api/internal/infrastructure/ws"
	"healthnet-api/internal/repository"
	"healthnet-api/internal/service"
	"healthnet-api/internal/usecase"
	"healthnet-api/pkg/jwt"
	"healthnet-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config          *config.Config
	DB              *gorm.DB
	RedisClient     *redis.Client
	Server          *http.Server
	SlotHoldService *service.SlotHoldService
	Hub             *ws.Hub

	hubCancel context.CancelFunc
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
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	log := logrus.StandardLogger()

	// Apply schema migrations before serving traffic
	if err := database.RunMigrations(db, log); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Websocket hub with the redis relay connecting API instances
	hub := ws.NewHub(log)
	hubCtx, hubCancel := context.WithCancel(context.Background())
	go hub.Run(hubCtx)
	go hub.RelayFromRedis(hubCtx, redisClient)
	app.Hub = hub
	app.hubCancel = hubCancel

	// Slot hold service guards the booking hot path
	slotHoldService := service.NewSlotHoldService(redisClient, log)
	app.SlotHoldService = slotHoldService

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, log, hub, slotHoldService)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	log *logrus.Logger,
	hub *ws.Hub,
	slotHoldService *service.SlotHoldService,
) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	hospitalRepo := repository.NewHospitalRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	availabilityWindowRepo := repository.NewAvailabilityWindowRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	messageRepo := repository.NewMessageRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	groqClient := ai.NewGroqClient(cfg.Groq, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, hospitalRepo, doctorProfileRepo, patientProfileRepo, jwtService, redisClient)
	hospitalUsecase := usecase.NewHospitalUsecase(db, log, hospitalRepo, doctorProfileRepo, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorProfileRepo, userRepo, availabilityWindowRepo, appointmentRepo, auditService)
	timeSlotUsecase := usecase.NewTimeSlotUsecase(db, log, availabilityWindowRepo, doctorProfileRepo, appointmentRepo, auditService)
	bookingUsecase := usecase.NewBookingUsecase(db, log, appointmentRepo, availabilityWindowRepo, doctorProfileRepo, patientProfileRepo, hospitalRepo, slotHoldService, auditService, redisClient, cfg.Booking.AllowWeekend)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, slotHoldService, auditService)
	patientProfileUsecase := usecase.NewPatientProfileUsecase(db, log, userRepo, patientProfileRepo, auditService)
	triageUsecase := usecase.NewTriageUsecase(log, groqClient)
	messageUsecase := usecase.NewMessageUsecase(db, log, messageRepo, userRepo, redisClient)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	hospitalHandler := handler.NewHospitalHandler(hospitalUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	timeSlotHandler := handler.NewTimeSlotHandler(timeSlotUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(bookingUsecase, appointmentUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientProfileUsecase, customValidator)
	triageHandler := handler.NewTriageHandler(triageUsecase, customValidator)
	messageHandler := handler.NewMessageHandler(messageUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)
	wsHandler := handler.NewWSHandler(hub, log)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		hospitalHandler,
		doctorHandler,
		timeSlotHandler,
		appointmentHandler,
		patientHandler,
		triageHandler,
		messageHandler,
		auditLogHandler,
		wsHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
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
	// Stop background workers first, they use the connections below
	if app.SlotHoldService != nil {
		app.SlotHoldService.Stop()
	}
	if app.hubCancel != nil {
		app.hubCancel()
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
}
