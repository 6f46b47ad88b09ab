package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"forgefinds/dealworker/config"
	"forgefinds/dealworker/internal/scraper"
	"forgefinds/dealworker/internal/store"
	"forgefinds/dealworker/logger"
	"forgefinds/dealworker/services/cache"
	"forgefinds/dealworker/services/publisher"
	"forgefinds/dealworker/services/worker"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Str("deals_file", cfg.DealsFile).
		Dur("update_interval", cfg.UpdateInterval).
		Int("max_deals", cfg.MaxDeals).
		Int("retention_days", cfg.RetentionDays).
		Msg("Starting application")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Initialize services
	cacheService := cache.NewMemcacheService(cfg.MemcacheAddr)
	logger.Info("Connected to Memcache at %s", cfg.MemcacheAddr)

	redisPublisher := publisher.NewRedisPublisher(
		ctx,
		cfg.RedisAddr,
		cfg.RedisDB,
		cfg.RedisStream,
		cfg.RedisStreamCount,
		cfg.RedisStreamMaxLength,
	)
	defer redisPublisher.Close()
	logger.Info("Connected to Redis at %s (DB: %d, Stream: %s)",
		cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)

	dealStore := store.New(cfg.DealsFile)

	// Create scrapers
	scrapers := scraper.CreateScrapers(cfg, cacheService)
	if len(scrapers) == 0 {
		log.Fatal().Msg("No scrapers were created")
	}

	log.Info().
		Int("scraper_count", len(scrapers)).
		Msg("Created scrapers")

	// Create and start worker
	w := worker.NewWorker(
		ctx,
		scrapers,
		dealStore,
		redisPublisher,
		cfg.UpdateInterval,
		cfg.RetentionDays,
		cfg.MaxDeals,
	)

	// Start worker in a goroutine
	workerDone := make(chan error, 1)
	go func() {
		log.Info().Msg("Starting deal update worker")
		workerDone <- w.Start()
	}()

	// Wait for shutdown signal or worker error
	select {
	case sig := <-sigChan:
		log.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal")
		cancel()
	case err := <-workerDone:
		if err != nil {
			log.Error().Err(err).Msg("Worker exited with error")
		} else {
			log.Info().Msg("Worker exited normally")
		}
	}

	// Graceful shutdown
	log.Info().Msg("Shutting down gracefully...")
}
