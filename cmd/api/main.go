package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/config"
	"github.com/campusmesh/portal-api/internal/database"
	"github.com/campusmesh/portal-api/internal/handler"
	"github.com/campusmesh/portal-api/internal/middleware"
	"github.com/campusmesh/portal-api/internal/repository"
	"github.com/campusmesh/portal-api/internal/router"
	"github.com/campusmesh/portal-api/internal/service"
	"github.com/campusmesh/portal-api/internal/store"
	"github.com/campusmesh/portal-api/pkg/assistant"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	var (
		stateStore  store.Store
		redisClient *redis.Client
	)

	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		stateStore = store.NewRedis(redisClient)
	} else {
		db, err := database.ConnectSQL(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		if err := store.Migrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
		stateStore = store.NewSQL(db)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	catalogRepo := repository.NewCatalogRepository(stateStore)
	userRepo := repository.NewUserRepository(stateStore)
	sessionRepo := repository.NewSessionRepository(stateStore)
	messageRepo := repository.NewMessageRepository(stateStore)

	grades := service.RandomGradeSource()

	var responder assistant.Responder
	if cfg.OpenAIAPIKey != "" {
		responder, err = assistant.NewOpenAIResponder(assistant.OpenAIConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.AssistantModel,
			Logger: logger,
		})
		if err != nil {
			log.Fatalf("failed to create assistant responder: %v", err)
		}
	}

	seedService := service.NewSeedService(catalogRepo, logger)
	taskService := service.NewTaskService(userRepo, logger)
	authService := service.NewAuthService(sessionRepo, userRepo, taskService, logger)
	catalogService := service.NewCatalogService(catalogRepo, logger)
	eventService := service.NewEventService(catalogRepo, logger)
	libraryService := service.NewLibraryService(catalogRepo, userRepo, logger)
	assignmentService := service.NewAssignmentService(catalogRepo, userRepo, logger)
	submissionService := service.NewSubmissionService(userRepo, logger)
	enrollmentService := service.NewEnrollmentService(catalogRepo, userRepo, grades, redisClient, cfg.AnalyticsCacheTTL, logger)
	notificationService := service.NewNotificationService(catalogRepo, userRepo, logger)
	profileService := service.NewProfileService(userRepo, logger)
	messageService := service.NewMessageService(messageRepo, logger)
	assistantService := service.NewAssistantService(catalogRepo, userRepo, grades, responder, logger)
	adminService := service.NewAdminService(catalogRepo, userRepo, logger)

	if cfg.SeedOnStart {
		seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := seedService.EnsureDefaults(seedCtx); err != nil {
			cancel()
			log.Fatalf("failed to seed default catalogs: %v", err)
		}
		cancel()
	}

	authHandler := handler.NewAuthHandler(authService, validate, logger)
	catalogHandler := handler.NewCatalogHandler(catalogService, validate, logger)
	eventHandler := handler.NewEventHandler(eventService, validate, logger)
	libraryHandler := handler.NewLibraryHandler(libraryService, validate, logger)
	assignmentHandler := handler.NewAssignmentHandler(assignmentService, submissionService, validate, logger)
	studentHandler := handler.NewStudentHandler(enrollmentService, taskService, profileService, validate, logger)
	notificationHandler := handler.NewNotificationHandler(notificationService, logger)
	messageHandler := handler.NewMessageHandler(messageService, validate, logger)
	assistantHandler := handler.NewAssistantHandler(assistantService, validate, logger)
	adminHandler := handler.NewAdminHandler(adminService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		Sessions:            sessionRepo,
		AuthHandler:         authHandler,
		CatalogHandler:      catalogHandler,
		EventHandler:        eventHandler,
		LibraryHandler:      libraryHandler,
		AssignmentHandler:   assignmentHandler,
		StudentHandler:      studentHandler,
		NotificationHandler: notificationHandler,
		MessageHandler:      messageHandler,
		AssistantHandler:    assistantHandler,
		AdminHandler:        adminHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
