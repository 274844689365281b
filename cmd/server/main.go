package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"placerank/internal/cache"
	"placerank/internal/category"
	"placerank/internal/config"
	"placerank/internal/engine"
	"placerank/internal/jobs"
	"placerank/internal/keyword"
	"placerank/internal/llm"
	"placerank/internal/metrics"
	"placerank/internal/naver"
	"placerank/internal/population"
	"placerank/internal/server"
	"placerank/internal/strategy"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	metrics.Init()

	categories, err := category.Load(cfg.CategoriesDir)
	if err != nil {
		log.Fatalf("Failed to load category templates: %v", err)
	}
	log.Printf("Loaded %d category templates", len(categories.Names()))

	lookupCache := cache.New(cfg.RedisURL, cfg.CacheTTL)
	if cfg.RedisURL != "" {
		log.Println("Lookup cache backed by Redis")
	}

	// External clients; unconfigured ones degrade to the estimation tiers.
	searchAd := naver.NewSearchAdClient(naver.SearchAdConfig{
		CustomerID: cfg.NaverSearchAdCustomerID,
		APIKey:     cfg.NaverSearchAdAPIKey,
		SecretKey:  cfg.NaverSearchAdSecretKey,
	})
	local := naver.NewLocalClient(naver.LocalConfig{
		ClientID:     cfg.NaverClientID,
		ClientSecret: cfg.NaverClientSecret,
	})
	resolver := population.NewResolver(cfg.MOISAPIKey, logger)

	var llmClient llm.Client = llm.Disabled{}
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("Gemini unavailable, using template generation: %v", err)
		} else {
			llmClient = gemini
		}
	} else {
		log.Println("GEMINI_API_KEY not set, keyword generation uses templates only")
	}

	// Analysis pipeline
	gen := keyword.NewGenerator(llmClient, categories, logger)
	vol := keyword.NewVolumeEstimator(searchAd, resolver, categories, lookupCache, logger)
	comp := keyword.NewCompetitionAnalyzer(local, logger)
	planner := strategy.NewPlanner(categories)
	eng := engine.New(gen, vol, comp, planner, categories, logger)

	srv := server.New(cfg, lookupCache)
	srv.RegisterRoutes(eng, categories, logger)

	probe := jobs.NewDependencyProbe(5 * time.Minute)
	go probe.Start(ctx)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()
	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
