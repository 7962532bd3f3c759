package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"recommender/internal/config"
	"recommender/internal/database"
	"recommender/internal/events"
	"recommender/internal/logger"
	"recommender/internal/metrics"
	"recommender/internal/repository"
	"recommender/internal/services/ecwid"
	"recommender/internal/services/recommendation"
	"recommender/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)
	defer logger.Sync()

	// Register prometheus collectors
	metrics.Init()

	// Initialize database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Repositories
	storeRepo := repository.NewStoreRepository(db.DB)
	productRepo := repository.NewProductRepository(db.DB)
	orderRepo := repository.NewOrderRepository(db.DB)
	categoryRepo := repository.NewCategoryRepository(db.DB)

	// Services
	publisher := events.NewPublisher(cfg.KafkaBrokers, logger)
	defer publisher.Close()

	syncService := ecwid.NewSyncService(cfg, productRepo, orderRepo, logger)
	engine := recommendation.NewEngine(productRepo, orderRepo, productRepo, logger)
	categoryEngine := recommendation.NewCategoryEngine(productRepo, orderRepo, categoryRepo, logger)

	processor := worker.NewProcessor(storeRepo, syncService, engine, categoryEngine, publisher, logger)

	// Initialize worker
	w := worker.New(cfg, logger, processor)

	// Start worker
	logger.Info("Starting worker...")
	go w.Start()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down worker...")
	w.Stop()
}
