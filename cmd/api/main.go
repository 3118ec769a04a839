package main

import (
	"context"
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Nezeon/legal-doc-backend/internal/auth"
	"github.com/Nezeon/legal-doc-backend/internal/backend"
	"github.com/Nezeon/legal-doc-backend/internal/config"
	handlers "github.com/Nezeon/legal-doc-backend/internal/http/handler"
	"github.com/Nezeon/legal-doc-backend/internal/http/middleware"
	tracing "github.com/Nezeon/legal-doc-backend/internal/otel"
	"github.com/Nezeon/legal-doc-backend/internal/repository"
	"github.com/Nezeon/legal-doc-backend/internal/repository/firestore"
	"github.com/Nezeon/legal-doc-backend/internal/repository/localfile"
	"github.com/Nezeon/legal-doc-backend/internal/service"
	"github.com/Nezeon/legal-doc-backend/internal/storage"
)

func main() {
	ctx := context.Background()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	shutdownTracing, err := tracing.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Resolve the metadata backend once; the choice is fixed for the
	// process lifetime. Missing or unusable credentials are not fatal:
	// the process falls back to the local file store.
	var (
		repo        repository.DocumentRepository
		verifier    auth.Verifier
		backendMode string
	)
	if b, err := backend.Resolve(ctx, cfg.Firebase); err != nil {
		log.Printf("remote backend unavailable (%v), falling back to local store", err)
		local, lErr := localfile.NewDocumentLocal(cfg.LocalStorePath)
		if lErr != nil {
			log.Fatalf("failed to initialize local store: %v", lErr)
		}
		repo = local
		verifier = auth.NewDisabled()
		backendMode = "local"
	} else {
		defer b.Close()
		repo = firestore.NewDocumentFirestore(b.Firestore)
		verifier = auth.NewFirebase(b.Auth)
		backendMode = "firestore"
	}

	store, err := storage.NewDisk(cfg.ContentDir)
	if err != nil {
		log.Fatalf("failed to initialize content storage: %v", err)
	}

	docSvc := service.NewDocumentService(store, repo)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// Upload ceiling plus headroom for multipart framing; oversized
		// bodies are rejected before buffering completes.
		BodyLimit: service.MaxUploadSize + 1<<20,
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, docSvc, verifier, backendMode)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
