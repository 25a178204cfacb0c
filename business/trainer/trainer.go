package trainer

import (
	"context"
	"fmt"
	"shopReco/business/recommend"
	"shopReco/domain"
	"shopReco/pkg/logger"
	"time"
)

// ProductRepository contract interface
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

// InteractionRepository contract interface
type InteractionRepository interface {
	FindAll(ctx context.Context) ([]domain.Interaction, error)
}

type TrainerService struct {
	productRepo     ProductRepository
	interactionRepo InteractionRepository
}

func NewTrainerService(productRepo ProductRepository, interactionRepo InteractionRepository) *TrainerService {
	return &TrainerService{
		productRepo:     productRepo,
		interactionRepo: interactionRepo,
	}
}

// Train loads the catalog and interaction history, fits the feature
// store and popularity table, and packs both into a serializable
// artifact. The serving process never calls this; it loads the artifact
// written by the trainer CLI.
func (s *TrainerService) Train(ctx context.Context) (*recommend.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	interactions, err := s.interactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}

	logger.Info("training recommender", "products", len(products), "interactions", len(interactions))

	store := recommend.NewFeatureStore(products)
	popularity := recommend.NewPopularityTable(products, interactions)

	artifact := &recommend.Artifact{
		Version:    1,
		BuiltAt:    time.Now().UTC(),
		Products:   products,
		Vectors:    store.Vectors(),
		IDF:        store.IDF(),
		Popularity: popularity.Scores(),
	}

	if err := artifact.Validate(); err != nil {
		return nil, fmt.Errorf("built artifact failed validation: %w", err)
	}

	return artifact, nil
}
