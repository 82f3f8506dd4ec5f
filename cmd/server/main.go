package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creator-compass/api"
	"creator-compass/report"
	"creator-compass/script"
	"creator-compass/search"
	"creator-compass/search/youtube"
	"creator-compass/shared/config"
	"creator-compass/shared/monitoring"
	"creator-compass/shared/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context that responds to signals
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	monitor := monitoring.NewMonitor()

	cache := search.NewQueryCache(cfg.Search.CacheCapacity, cfg.Search.CacheMaxAge())

	// Search is optional: without an API key the script workflow still runs.
	// Each component gets its own rand source; they synchronize under
	// different locks, so sharing one would race.
	var orchestrator *search.Orchestrator
	client, err := youtube.NewClient(ctx, &cfg.YouTube)
	if err != nil {
		log.Printf("Search disabled: %v", err)
	} else {
		searchRng := rand.New(rand.NewSource(time.Now().UnixNano()))
		orchestrator = search.NewOrchestrator(client, cache, monitor, cfg.Search.MaxResults, searchRng)
	}

	generator, err := buildGenerator(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to build script generator: %v", err)
	}
	workflow := script.NewWorkflow(generator, rand.New(rand.NewSource(time.Now().UnixNano())))

	exporter, err := report.NewExporter()
	if err != nil {
		log.Fatalf("Failed to build report exporter: %v", err)
	}

	if cfg.Search.CacheMaxAge() > 0 {
		s := scheduler.New()
		if err := s.Add(ctx, cfg.Search.CleanupSchedule, search.NewJanitor(cache)); err != nil {
			log.Fatalf("Failed to schedule cache cleanup: %v", err)
		}
		s.Start(ctx)
	}

	server := api.NewServer(cfg, orchestrator, workflow, monitor, exporter)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func buildGenerator(ctx context.Context, cfg *config.Config) (script.Generator, error) {
	if cfg.Script.Generator == "gemini" {
		return script.NewGeminiGenerator(ctx, &cfg.Script)
	}
	return script.NewTemplateGenerator(cfg.Script.StepDelay()), nil
}
