// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/voice-shop/internal/config"
	"github.com/your-org/voice-shop/internal/domain/checkout"
	"github.com/your-org/voice-shop/internal/domain/store"
	"github.com/your-org/voice-shop/internal/domain/transcript"
	"github.com/your-org/voice-shop/internal/infrastructure/database/postgres"
	"github.com/your-org/voice-shop/internal/infrastructure/database/redis"
	"github.com/your-org/voice-shop/internal/infrastructure/messaging/kafka"
	"github.com/your-org/voice-shop/internal/interfaces/http"
	"github.com/your-org/voice-shop/internal/pkg/logger"
	"github.com/your-org/voice-shop/internal/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg)
	log.WithFields(logrus.Fields{
		"name":        cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Info("Starting service")

	opts := http.Options{
		Metrics: metrics.New("voice_shop"),
		Checks:  map[string]http.HealthChecker{},
	}

	// Transcript log: Postgres when enabled, in memory otherwise
	transcriptRepo := transcript.Repository(transcript.NewMemoryRepository())
	if cfg.Transcripts.Enabled {
		db, err := postgres.NewConnection(cfg, log)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := postgres.NewMigration(db.GetDB(), log).RunAutoMigrations(); err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}

		transcriptRepo = postgres.NewTranscriptRepository(db.GetDB())
		opts.Checks["database"] = db
	}
	opts.Transcripts = transcript.NewService(transcriptRepo, log.WithField("component", "transcript"))

	// Redis backs the rate limiter only
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewConnection(cfg, log)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()

		opts.Redis = redisClient.GetClient()
		opts.Checks["redis"] = redisClient
	}

	var publisher checkout.EventPublisher = checkout.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(&cfg.Kafka, log.WithField("component", "kafka"))
		defer func() {
			if err := producer.Close(); err != nil {
				log.WithError(err).Warn("Failed to close Kafka producer")
			}
		}()
		publisher = producer
	}

	st := store.NewFromConfig(cfg, log, publisher)
	server := http.NewServer(cfg, log, st, opts)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	log.Info("Server shutdown completed")
}
