package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"eventlink.backend/internal/config"
	"eventlink.backend/internal/infrastructure/notifications"
	"eventlink.backend/internal/infrastructure/repositories"
	"eventlink.backend/internal/interfaces/http/handlers"
	"eventlink.backend/internal/interfaces/http/middleware"
	"eventlink.backend/internal/usecases"
	"eventlink.backend/pkg/jwt"
	"eventlink.backend/pkg/logger"
	"eventlink.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	connectionRepo := repositories.NewConnectionRepository(db)
	personaRepo := repositories.NewPersonaRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize notification delivery
	notifier := notifications.NewRedisNotifier()

	// Initialize usecases
	nonceStore := redis.NewNonceStore(cfg.Auth.NonceTTL)
	authUsecase := usecases.NewAuthUsecase(nonceStore, jwtService)
	eventUsecase := usecases.NewEventUsecase(eventRepo)
	personaUsecase := usecases.NewPersonaUsecase(personaRepo, eventRepo)
	connectionUsecase := usecases.NewConnectionUsecase(connectionRepo, eventRepo, uow, notifier)
	matchingUsecase := usecases.NewMatchingUsecase(personaRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	eventHandler := handlers.NewEventHandler(eventUsecase)
	personaHandler := handlers.NewPersonaHandler(personaUsecase)
	connectionHandler := handlers.NewConnectionHandler(connectionUsecase)
	matchingHandler := handlers.NewMatchingHandler(matchingUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		eventHandler:      eventHandler,
		personaHandler:    personaHandler,
		connectionHandler: connectionHandler,
		matchingHandler:   matchingHandler,
		authMiddleware:    middleware.AuthMiddleware(jwtService),
	})

	// Start server
	log.Printf("🚀 EventLink Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
