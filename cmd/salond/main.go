package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salon-assistant-backend/config"
	"salon-assistant-backend/internal/api"
	"salon-assistant-backend/internal/assistant"
	"salon-assistant-backend/internal/booking"
	"salon-assistant-backend/internal/db"
	"salon-assistant-backend/internal/knowledge"
	"salon-assistant-backend/internal/notification"
	"salon-assistant-backend/internal/scraper"
	"salon-assistant-backend/internal/store"

	"github.com/SherClockHolmes/webpush-go"
	"golang.org/x/time/rate"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "salon-backend ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// Check for VAPID keys
	if cfg.Push.PublicKey == "" || cfg.Push.PrivateKey == "" {
		logger.Fatalf("VAPID keys must be configured. Please generate them and add them to your config file.")
	}

	webpushOptions := webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}

	// Initialize database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appStore := store.NewGormStore(gormDB)
	logger.Println("data store initialized")

	// Build the knowledge index from whatever the last scrape persisted, so
	// the assistant can answer questions before the next scrape completes.
	embedder := knowledge.NewOpenAIEmbedder(&cfg.AI)
	index := knowledge.NewIndex(embedder)
	if snippets, err := appStore.ListSnippets(ctx); err != nil {
		logger.Printf("could not load stored snippets: %v", err)
	} else if err := index.Reindex(ctx, snippets); err != nil {
		logger.Printf("initial knowledge index build failed: %v", err)
	} else {
		logger.Printf("knowledge index built from %d stored snippets", len(snippets))
	}

	// Refresh the knowledge base from the salon website in the background
	scraperSvc := scraper.NewService(cfg, appStore, index)
	go scraperSvc.Run(ctx)

	// Booking alert workers
	workerPool := notification.NewWorkerPool(cfg.WorkerPool.Size, gormDB, &webpushOptions)
	workerPool.Start(ctx)

	coordinator := booking.NewCoordinator(appStore)
	chatter := assistant.NewOpenAIChatter(&cfg.AI)
	assistantSvc := assistant.NewService(index, chatter, coordinator)
	assistantSvc.SetNotify(workerPool.Dispatch)

	router := api.NewRouter(api.RouterOptions{
		Store:     appStore,
		Bookings:  coordinator,
		Chat:      assistantSvc,
		WebPush:   &webpushOptions,
		RateLimit: rate.Limit(cfg.Server.RateLimitPerSec),
		RateBurst: cfg.Server.RateLimitBurst,
		Notify:    workerPool.Dispatch,
	})
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
