package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"charismaai/interview-coach/internal/config"
	"charismaai/interview-coach/internal/handlers"
	"charismaai/interview-coach/internal/logger"
	"charismaai/interview-coach/internal/services"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.Logging.JSON, cfg.Logging.Debug)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		zapLogger.Fatal("failed to create upload directory", zap.Error(err))
	}

	pdfParser := services.NewPDFParserService()
	contextResolver := services.NewContextResolver(pdfParser)

	geminiService, err := services.NewGeminiService(context.Background(), cfg.Gemini, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to initialize gemini client", zap.Error(err))
	}
	zapLogger.Info("gemini client initialized", zap.String("model", cfg.Gemini.Model))

	questionService := services.NewQuestionService(geminiService, zapLogger)
	feedbackService := services.NewFeedbackService(geminiService, zapLogger)

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(questionService, contextResolver, storageService, zapLogger)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, storageService, zapLogger)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CharismaAI Interview Coach API",
		ReadTimeout:  30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: handlers.FaultHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CharismaAI Backend API - Ready",
			"status":  "online",
			"version": version,
			"endpoints": []string{
				"POST /agent1/generate-questions",
				"POST /agent2/analyze-video",
			},
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": version,
		})
	})

	agent1 := app.Group("/agent1")
	agent1.Post("/generate-questions", questionHandler.HandleGenerateQuestions)

	agent2 := app.Group("/agent2")
	agent2.Post("/analyze-video", feedbackHandler.HandleAnalyzeVideo)
	agent2.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"agent":  "Agent 2 - Multimodal Coach",
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zapLogger.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zapLogger.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zapLogger.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Server.Env))

	if err := app.Listen(addr); err != nil {
		zapLogger.Fatal("failed to start server", zap.Error(err))
	}
}
