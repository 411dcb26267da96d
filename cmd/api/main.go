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
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/handlers"
	"alfredoptarigan/resume-matcher/internal/repositories"
	"alfredoptarigan/resume-matcher/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	docRepo := repositories.NewDocumentRepository(db)
	runRepo := repositories.NewMatchRunRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	textExtract := services.NewTextExtractService()
	extractor := services.NewExtractorService()
	explainer := services.NewExplainerService()
	log.Println("✅ Services initialized successfully")

	// Select the embedding source: model-backed when a Gemini key is
	// configured, deterministic hash fallback otherwise.
	var embeddings services.EmbeddingSource
	if cfg.Embedding.GeminiAPIKey != "" {
		embeddings, err = services.NewGeminiEmbeddingSource(cfg.Embedding.GeminiAPIKey, cfg.Worker.RetryMaxAttempts)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini embeddings: %v", err)
		}
		log.Println("✅ Gemini embedding source initialized")
	} else {
		embeddings = services.NewHashEmbeddingSource(cfg.Embedding.Dimension)
		log.Println("⚠️  No GEMINI_API_KEY set, using hash-fallback embeddings (similarity scores are not semantic)")
	}

	// Initialize Qdrant
	vectorStore, err := services.NewVectorStoreService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
		cfg.Embedding.Dimension,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := vectorStore.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Qdrant initialized successfully")

	// Initialize match engine
	engine, err := services.NewMatchEngine(services.Weights{
		services.WeightRequiredSkills:  cfg.Match.RequiredSkillsWeight,
		services.WeightPreferredSkills: cfg.Match.PreferredSkillsWeight,
		services.WeightExperience:      cfg.Match.ExperienceWeight,
		services.WeightEducation:       cfg.Match.EducationWeight,
		services.WeightSemantic:        cfg.Match.SemanticWeight,
	})
	if err != nil {
		log.Fatalf("❌ Failed to initialize match engine: %v", err)
	}

	// Initialize matcher pipeline
	matcherService := services.NewMatcherService(
		runRepo,
		docRepo,
		textExtract,
		extractor,
		embeddings,
		vectorStore,
		engine,
		explainer,
	)
	log.Println("✅ Matcher service initialized")

	// Initialize worker
	worker := services.NewWorker(
		runRepo,
		matcherService,
		cfg.Worker.Concurrency,
	)
	log.Println("✅ Worker initialized successfully")

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(
		docRepo,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	matchHandler := handlers.NewMatchHandler(
		runRepo,
		docRepo,
		worker,
	)
	rankHandler := handlers.NewRankHandler(
		docRepo,
		textExtract,
		extractor,
		embeddings,
		engine,
		explainer,
	)
	resultHandler := handlers.NewResultHandler(runRepo, explainer)
	documentHandler := handlers.NewDocumentHandler(docRepo, storageService, vectorStore)
	similarHandler := handlers.NewSimilarHandler(docRepo, textExtract, embeddings, vectorStore)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Matcher API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
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
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/upload", uploadHandler.HandleUpload)
	api.Post("/match", matchHandler.HandleMatch)
	api.Post("/rank", rankHandler.HandleRank)
	api.Get("/result/:id", resultHandler.HandleGetResult)
	api.Get("/documents", documentHandler.HandleListDocuments)
	api.Delete("/document/:id", documentHandler.HandleDeleteDocument)
	api.Get("/similar/:id", similarHandler.HandleFindSimilar)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Matcher API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/upload",
				"POST /api/v1/match",
				"POST /api/v1/rank",
				"GET /api/v1/result/:id",
				"GET /api/v1/documents",
				"DELETE /api/v1/document/:id",
				"GET /api/v1/similar/:id",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
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
