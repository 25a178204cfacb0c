package recommend

import (
	"fmt"
	"math"
	"shopReco/domain"
	"sort"
)

// HybridScorer blends content similarity with popularity into a single
// deterministic ranking over the whole catalog.
type HybridScorer struct {
	store      *FeatureStore
	popularity *PopularityTable
	ordered    []domain.Product // catalog sorted by product_id
}

func NewHybridScorer(store *FeatureStore, popularity *PopularityTable, ordered []domain.Product) *HybridScorer {
	return &HybridScorer{
		store:      store,
		popularity: popularity,
		ordered:    ordered,
	}
}

// Rank scores every catalog product except the anchor and returns the
// full ranked list: descending blended score, ties by ascending
// product_id. Scores are rounded to 3 decimals before sorting so the
// visible ordering contract is exact.
func (s *HybridScorer) Rank(anchorID string, alpha float64) ([]domain.RankedCandidate, error) {
	if _, err := s.store.VectorOf(anchorID); err != nil {
		return nil, fmt.Errorf("rank anchor %q: %w", anchorID, domain.ErrProductNotFound)
	}

	alpha = clamp01(alpha)

	candidates := make([]domain.RankedCandidate, 0, len(s.ordered))
	for _, p := range s.ordered {
		if p.ProductID == anchorID {
			continue
		}

		content, err := s.store.Similarity(anchorID, p.ProductID)
		if err != nil {
			return nil, err
		}
		pop := s.popularity.ScoreOf(p.ProductID)
		blended := alpha*content + (1-alpha)*pop

		candidates = append(candidates, domain.RankedCandidate{
			ProductID:       p.ProductID,
			ProductName:     p.ProductName,
			ContentScore:    round3(content),
			PopularityScore: round3(pop),
			Score:           round3(blended),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].ProductID < candidates[j].ProductID
	})

	return candidates, nil
}

// RankPopular orders the whole catalog by popularity alone, ties by
// ascending product_id. Used by the popular-items listing.
func (s *HybridScorer) RankPopular() []domain.RankedCandidate {
	items := make([]domain.RankedCandidate, 0, len(s.ordered))
	for _, p := range s.ordered {
		pop := round3(s.popularity.ScoreOf(p.ProductID))
		items = append(items, domain.RankedCandidate{
			ProductID:       p.ProductID,
			ProductName:     p.ProductName,
			PopularityScore: pop,
			Score:           pop,
			Reason:          reasonPopularFallback,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].ProductID < items[j].ProductID
	})

	return items
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
