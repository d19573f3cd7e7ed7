package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"sparetime/business/ingest"
	"sparetime/internal/repository/embedding"
	psqlRepo "sparetime/internal/repository/postgres"
	"sparetime/internal/repository/youtube"
	"sparetime/pkg/config"
	"sparetime/pkg/database"
	"sparetime/pkg/logger"
)

// seedSearches is the initial catalog spread: a few focused channels
// plus broad topical queries across the product's launch verticals.
var seedSearches = []ingest.SearchQuery{
	{Query: "machine learning transformers", MaxResults: 5, ChannelID: "UCYO_jab_esuFRV4b17AJtAw"},
	{Query: "linear algebra", MaxResults: 5, ChannelID: "UCYO_jab_esuFRV4b17AJtAw"},
	{Query: "Machine Learning Basics", MaxResults: 10},
	{Query: "AI for Beginners", MaxResults: 10},
	{Query: "Understanding Neural Networks", MaxResults: 10},
	{Query: "Deep Learning Explained", MaxResults: 10},
	{Query: "Ethics in AI", MaxResults: 10},
	{Query: "AI in Healthcare", MaxResults: 10},
	{Query: "Stock Market Basics", MaxResults: 10},
	{Query: "How to Start Investing", MaxResults: 10},
	{Query: "Investing for Beginners", MaxResults: 10},
	{Query: "Day Trading Strategies", MaxResults: 10},
	{Query: "Cryptocurrency Investing", MaxResults: 10},
	{Query: "Retirement Planning Investments", MaxResults: 10},
	{Query: "Easy Cooking Recipes for Beginners", MaxResults: 10},
	{Query: "Gourmet Cooking Made Simple", MaxResults: 10},
	{Query: "10-Minute Meals", MaxResults: 10},
	{Query: "Interesting Ted Talks", MaxResults: 50},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting catalog ingestion", "searches", len(seedSearches))

	if cfg.YouTube.APIKey == "" {
		logger.Fatal("Missing YOUTUBE_API_KEY")
	}

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	videoRepo := psqlRepo.NewVideoRepository(db)

	youtubeRepo := youtube.NewYouTubeRepository(youtube.YouTubeConfig{
		APIKey:  cfg.YouTube.APIKey,
		BaseURL: cfg.YouTube.BaseURL,
	})

	embedder := embedding.NewEmbeddingRepository(embedding.EmbeddingConfig{
		BaseURL:           cfg.Embedding.BaseURL,
		BasicAuthUsername: cfg.Embedding.BasicAuthUsername,
		BasicAuthPassword: cfg.Embedding.BasicAuthPassword,
	})

	svc := ingest.NewIngestService(youtubeRepo, videoRepo, embedder)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ingested, err := svc.Run(ctx, seedSearches)
	if err != nil {
		logger.Fatal("Ingestion failed", "error", err)
	}

	logger.Info("Ingestion finished", "videos_ingested", ingested)
}
