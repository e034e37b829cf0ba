package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"resumatch/resume-matcher/internal/config"
	"resumatch/resume-matcher/internal/handlers"
	"resumatch/resume-matcher/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize storage for temp uploads
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractor := services.NewDocumentExtractor()
	log.Println("✅ Document services initialized")

	// Initialize Gemini model client (shared, stateless, injected everywhere)
	llmService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.BaseURL,
		cfg.Gemini.Timeout,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Optional Redis match-result cache
	var matchCache services.MatchCache
	if cfg.Redis.URL != "" {
		matchCache, err = services.NewRedisMatchCache(cfg.Redis.URL, cfg.Redis.TTL)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Redis cache: %v", err)
		}
		log.Println("✅ Redis match cache enabled")
	} else {
		log.Println("ℹ️ REDIS_URL not set, match cache disabled")
	}

	// Initialize pipeline orchestrator
	matcherService := services.NewMatcherService(
		llmService,
		services.NewMatchResultParser(),
		matchCache,
		cfg.Gemini.Temperature,
		cfg.Gemini.MaxAttempts,
	)
	log.Println("✅ Matcher service initialized")

	githubService := services.NewGithubService(cfg.Github.APIBase, cfg.Github.Token)
	rendererService := services.NewPDFRenderService(cfg.Chrome.DisableSandbox)

	// Initialize handlers
	parseHandler := handlers.NewParseHandler(storageService, extractor, cfg.Storage.MaxFileSize)
	matchHandler := handlers.NewMatchHandler(matcherService)
	coverLetterHandler := handlers.NewCoverLetterHandler(matcherService)
	githubHandler := handlers.NewGithubHandler(githubService)
	resumeHandler := handlers.NewResumeHandler(matcherService)
	pdfHandler := handlers.NewPDFHandler(rendererService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Matcher API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/parse-resume", parseHandler.HandleParse)
	api.Post("/match", matchHandler.HandleMatch)
	api.Post("/generate-cover-letter", coverLetterHandler.HandleGenerate)
	api.Get("/github/:username", githubHandler.HandleGetProfile)
	api.Post("/generate-resume", resumeHandler.HandleGenerate)
	api.Post("/download-pdf", pdfHandler.HandleDownload)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Matcher API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/parse-resume",
				"POST /api/v1/match",
				"POST /api/v1/generate-cover-letter",
				"GET /api/v1/github/:username",
				"POST /api/v1/generate-resume",
				"POST /api/v1/download-pdf",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
