// @title Quill API
// @version 1.0
// @description Quiz generation and export service.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quill/internal/adapter"
	"quill/internal/adapter/provider"
	"quill/internal/cache"
	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/domain"
	"quill/internal/handler"
	"quill/internal/logger"
	"quill/internal/middleware"
	"quill/internal/repository"
	"quill/internal/service"

	_ "quill/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// Generation providers: Gemini first, OpenAI as fallback.
	primaryProvider, err := provider.NewGeminiProvider(ctx, cfg.LLM.Gemini.APIKey, cfg.LLM.Gemini.Model)
	if err != nil {
		appLogger.Fatal("Failed to create Gemini provider", zap.Error(err))
	}
	secondaryProvider, err := provider.NewOpenAIProvider(cfg.LLM.OpenAI.APIKey, cfg.LLM.OpenAI.Model)
	if err != nil {
		appLogger.Fatal("Failed to create OpenAI provider", zap.Error(err))
	}
	appLogger.Info("Generation providers initialized",
		zap.String("primary", primaryProvider.Name()),
		zap.String("secondary", secondaryProvider.Name()))

	// Connect to database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Initialize repositories
	quizRepository := repository.NewQuizDatabaseAdapter(db)
	userRepository := repository.NewUserDatabaseAdapter(db)

	// Redis is optional; without it every generation reaches a provider.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		appLogger.Info("Successfully connected to Redis")
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
	} else {
		appLogger.Warn("Redis address not configured, generation cache disabled")
	}

	// Initialize services
	generationService := service.NewGenerationService(primaryProvider, secondaryProvider, cacheAdapter, cfg)
	quizService := service.NewQuizService(quizRepository)
	exportService := service.NewExportService(quizRepository)

	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	appLogger.Info("AuthService initialized")

	// Initialize handlers
	quizHandler := handler.NewQuizHandler(generationService, quizService, exportService)
	authHandler := handler.NewAuthHandler(authService)
	validationMiddleware := middleware.NewValidationMiddleware()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	apiGroup := app.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Quiz routes (all protected)
	quizGroup := apiGroup.Group("/quizzes", middleware.Protected(authService))
	quizGroup.Post("/generate", quizHandler.GenerateQuiz)
	quizGroup.Post("/", quizHandler.SaveQuiz)
	quizGroup.Get("/", quizHandler.GetQuizzes)
	quizGroup.Get("/:id", validationMiddleware.ValidateQuizID(), quizHandler.GetQuiz)
	quizGroup.Put("/:id", validationMiddleware.ValidateQuizID(), quizHandler.UpdateQuiz)
	quizGroup.Delete("/:id", validationMiddleware.ValidateQuizID(), quizHandler.DeleteQuiz)
	quizGroup.Get("/:id/export/:format", validationMiddleware.ValidateQuizID(), validationMiddleware.ValidateExportFormat(), quizHandler.ExportQuiz)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
