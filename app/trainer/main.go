package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"shopReco/business/recommend"
	"shopReco/business/trainer"
	psqlRepo "shopReco/internal/repository/postgres"
	"shopReco/pkg/config"
	"shopReco/pkg/database"
	"shopReco/pkg/logger"
)

// Offline training step: reads the catalog and interaction history from
// postgres and writes the serving artifact. Run this before starting
// (or reloading) the API server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	productRepo := psqlRepo.NewProductRepository(db)
	interactionRepo := psqlRepo.NewInteractionRepository(db)

	svc := trainer.NewTrainerService(productRepo, interactionRepo)

	artifact, err := svc.Train(context.Background())
	if err != nil {
		logger.Fatal("Training failed", "error", err)
	}

	if dir := filepath.Dir(cfg.Reco.ArtifactPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Fatal("Failed to create artifact directory", "error", err)
		}
	}

	if err := recommend.SaveArtifact(cfg.Reco.ArtifactPath, artifact); err != nil {
		logger.Fatal("Failed to save artifact", "error", err)
	}

	logger.Info("Model training complete", "path", cfg.Reco.ArtifactPath, "products", len(artifact.Products))
}
