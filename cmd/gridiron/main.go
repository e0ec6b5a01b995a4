package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fortuna/gridiron/internal/api/rest"
	"github.com/fortuna/gridiron/internal/cache"
	"github.com/fortuna/gridiron/internal/config"
	"github.com/fortuna/gridiron/internal/jobs"
	"github.com/fortuna/gridiron/internal/store"
)

const (
	serviceName    = "gridiron"
	serviceVersion = "1.0.0"
)

func main() {
	log.Printf("Starting %s v%s - NFL Statistics Service", serviceName, serviceVersion)

	// Load configuration from environment
	cfg := config.Load()

	// Initialize database connection
	db, err := store.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("✓ Connected to database")

	// Run migrations
	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// Initialize cache; a failed connect disables caching for the process
	// lifetime rather than failing startup.
	c, err := cache.New(cfg.RedisURL)
	if err != nil {
		log.Printf("⚠️  Redis unavailable, caching disabled: %v", err)
		c = cache.NewDisabled()
	} else {
		log.Println("✓ Connected to Redis")
	}
	defer c.Close()

	// Initialize jobs service and worker
	jobsService := jobs.NewService(db, c, cfg.DataDir, cfg.CurrentSeason, log.Default())
	jobsService.Start()

	log.Println("✓ Jobs service started")

	// Initialize REST API server
	restServer := rest.NewServer(rest.Config{
		Port:          cfg.Port,
		AdminAPIKey:   cfg.AdminAPIKey,
		CurrentSeason: cfg.CurrentSeason,
		Environment:   cfg.Environment,
	}, db, c, jobsService)

	go func() {
		log.Printf("Starting REST API server on port %s", cfg.Port)
		if err := restServer.Start(); err != nil {
			log.Printf("REST server error: %v", err)
		}
	}()

	log.Printf("✓ %s v%s started successfully", serviceName, serviceVersion)
	log.Printf("  REST API: http://0.0.0.0:%s", cfg.Port)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST API server shutdown error: %v", err)
	}

	if err := jobsService.Shutdown(shutdownCtx); err != nil {
		log.Printf("Jobs service shutdown error: %v", err)
	}

	log.Println("Stopped")
}
