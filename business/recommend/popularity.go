package recommend

import "shopReco/domain"

// Interaction weights for the popularity aggregate. Purchases count
// double, matching the offline trainer.
const (
	weightPurchase = 2.0
	weightView     = 1.0
)

// PopularityTable maps every catalog product to a score in [0,1]. The
// table is total over the catalog: products without interaction history
// score 0 instead of being absent (cold-start guarantee).
type PopularityTable struct {
	scores map[string]float64
}

// NewPopularityTable aggregates weighted interaction counts per product
// and normalizes so the most popular product scores 1.
func NewPopularityTable(products []domain.Product, interactions []domain.Interaction) *PopularityTable {
	raw := make(map[string]float64)
	for _, ev := range interactions {
		switch ev.EventType {
		case domain.EventPurchase:
			raw[ev.ProductID] += weightPurchase
		case domain.EventView:
			raw[ev.ProductID] += weightView
		}
	}

	var max float64
	for _, v := range raw {
		if v > max {
			max = v
		}
	}

	scores := make(map[string]float64, len(products))
	for _, p := range products {
		if max > 0 {
			scores[p.ProductID] = raw[p.ProductID] / max
		} else {
			scores[p.ProductID] = 0
		}
	}

	return &PopularityTable{scores: scores}
}

// NewPopularityTableFromArtifact rebuilds the table from pre-computed
// scores (the offline artifact path).
func NewPopularityTableFromArtifact(scores map[string]float64) *PopularityTable {
	return &PopularityTable{scores: scores}
}

// ScoreOf never fails: unknown products score 0.
func (t *PopularityTable) ScoreOf(productID string) float64 {
	return t.scores[productID]
}

// Scores exposes the full mapping for serialization by the trainer.
func (t *PopularityTable) Scores() map[string]float64 {
	return t.scores
}
