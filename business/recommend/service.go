package recommend

import (
	"context"
	"fmt"
	"math"
	"shopReco/domain"
	"sort"
)

// anchor field used by cursors of the popular listing, which has no
// anchor product of its own
const popularCursorAnchor = "_popular"

// RecommendRequest is a validated recommendation query. Alpha weights
// content similarity against popularity; Diversify enables the
// brand/category de-clustering pass over the top of the ranking.
type RecommendRequest struct {
	ProductID string
	K         int
	Alpha     float64
	Cursor    string
	Diversify bool
}

// Service is the recommendation engine facade handed to the HTTP layer.
// All state is immutable after construction; concurrent use needs no
// locking.
type Service struct {
	productsByID    map[string]domain.Product
	ordered         []domain.Product
	store           *FeatureStore
	popularity      *PopularityTable
	scorer          *HybridScorer
	matcher         *SearchMatcher
	diversifyWindow int
}

// NewService builds the engine from a validated offline artifact.
func NewService(artifact *Artifact, diversifyWindow int) (*Service, error) {
	if err := artifact.Validate(); err != nil {
		return nil, fmt.Errorf("inconsistent artifact: %w", err)
	}

	store := NewFeatureStoreFromArtifact(artifact.Vectors, artifact.IDF)
	popularity := NewPopularityTableFromArtifact(artifact.Popularity)

	return newService(artifact.Products, store, popularity, diversifyWindow), nil
}

// NewServiceFromCatalog trains the feature store and popularity table
// in-process. Used by the trainer and by tests; the server loads the
// serialized artifact instead.
func NewServiceFromCatalog(products []domain.Product, interactions []domain.Interaction, diversifyWindow int) *Service {
	store := NewFeatureStore(products)
	popularity := NewPopularityTable(products, interactions)
	return newService(products, store, popularity, diversifyWindow)
}

func newService(products []domain.Product, store *FeatureStore, popularity *PopularityTable, diversifyWindow int) *Service {
	ordered := make([]domain.Product, len(products))
	copy(ordered, products)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ProductID < ordered[j].ProductID
	})

	byID := make(map[string]domain.Product, len(ordered))
	for _, p := range ordered {
		byID[p.ProductID] = p
	}

	if diversifyWindow <= 0 {
		diversifyWindow = 10
	}

	return &Service{
		productsByID:    byID,
		ordered:         ordered,
		store:           store,
		popularity:      popularity,
		scorer:          NewHybridScorer(store, popularity, ordered),
		matcher:         NewSearchMatcher(ordered),
		diversifyWindow: diversifyWindow,
	}
}

// GetRecommendations ranks the catalog against the anchor product and
// returns one page. A cursor resumes the exact same ranking: its alpha
// and diversify flag take precedence over the request's so pages never
// drift.
func (s *Service) GetRecommendations(ctx context.Context, req RecommendRequest) (domain.RecommendationPage, error) {
	if err := ctx.Err(); err != nil {
		return domain.RecommendationPage{}, fmt.Errorf("context error: %w", err)
	}

	if req.K <= 0 {
		return domain.RecommendationPage{}, fmt.Errorf("k must be positive: %w", domain.ErrInvalidParameter)
	}
	if math.IsNaN(req.Alpha) || req.Alpha < 0 || req.Alpha > 1 {
		return domain.RecommendationPage{}, fmt.Errorf("alpha must be in [0,1]: %w", domain.ErrInvalidParameter)
	}

	offset := 0
	alpha := req.Alpha
	diversify := req.Diversify
	if req.Cursor != "" {
		state, err := DecodeCursor(req.Cursor)
		if err != nil {
			return domain.RecommendationPage{}, err
		}
		if state.ProductID != req.ProductID {
			return domain.RecommendationPage{}, fmt.Errorf("cursor anchor %q does not match request: %w", state.ProductID, domain.ErrCursorMismatch)
		}
		offset = state.Offset
		alpha = state.Alpha
		diversify = state.Diversify
	}

	anchor, ok := s.productsByID[req.ProductID]
	if !ok {
		return domain.RecommendationPage{}, fmt.Errorf("anchor %q: %w", req.ProductID, domain.ErrProductNotFound)
	}

	ranked, err := s.scorer.Rank(req.ProductID, alpha)
	if err != nil {
		return domain.RecommendationPage{}, err
	}

	if diversify {
		ranked = Diversify(ranked, s.diversifyWindow, s.productsByID)
	}

	total := len(ranked)
	items := pageSlice(ranked, offset, req.K)
	for i := range items {
		candidate := s.productsByID[items[i].ProductID]
		items[i].Reason = Explain(anchor, candidate, items[i].ContentScore, items[i].PopularityScore)
	}

	page := domain.RecommendationPage{
		ProductID:      anchor.ProductID,
		ProductName:    anchor.ProductName,
		Alpha:          round3(alpha),
		PageSize:       req.K,
		Offset:         offset,
		TotalAvailable: total,
		Items:          items,
	}

	if offset+req.K < total {
		page.NextCursor = EncodeCursor(CursorState{
			ProductID: anchor.ProductID,
			Offset:    offset + req.K,
			Alpha:     alpha,
			Diversify: diversify,
		})
	}

	return page, nil
}

// PopularProducts returns the popularity-ranked catalog, paginated with
// the same cursor mechanics as recommendations.
func (s *Service) PopularProducts(ctx context.Context, k int, cursor string) (domain.PopularPage, error) {
	if err := ctx.Err(); err != nil {
		return domain.PopularPage{}, fmt.Errorf("context error: %w", err)
	}

	if k <= 0 {
		return domain.PopularPage{}, fmt.Errorf("k must be positive: %w", domain.ErrInvalidParameter)
	}

	offset := 0
	if cursor != "" {
		state, err := DecodeCursor(cursor)
		if err != nil {
			return domain.PopularPage{}, err
		}
		if state.ProductID != popularCursorAnchor {
			return domain.PopularPage{}, fmt.Errorf("cursor is not a popular-listing cursor: %w", domain.ErrCursorMismatch)
		}
		offset = state.Offset
	}

	ranked := s.scorer.RankPopular()
	total := len(ranked)

	page := domain.PopularPage{
		PageSize:       k,
		Offset:         offset,
		TotalAvailable: total,
		Items:          pageSlice(ranked, offset, k),
	}

	if offset+k < total {
		page.NextCursor = EncodeCursor(CursorState{
			ProductID: popularCursorAnchor,
			Offset:    offset + k,
		})
	}

	return page, nil
}

// SearchProducts is the free-text catalog lookup. An empty result set
// is a valid response.
func (s *Service) SearchProducts(ctx context.Context, query string, k int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if k <= 0 {
		return nil, fmt.Errorf("k must be positive: %w", domain.ErrInvalidParameter)
	}

	return s.matcher.Search(query, k), nil
}

// SearchAndRecommend resolves the best search hit and recommends
// against it.
func (s *Service) SearchAndRecommend(ctx context.Context, query string, k int, alpha float64) (domain.SearchRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return domain.SearchRecommendation{}, fmt.Errorf("context error: %w", err)
	}

	matches, err := s.SearchProducts(ctx, query, 1)
	if err != nil {
		return domain.SearchRecommendation{}, err
	}
	if len(matches) == 0 {
		return domain.SearchRecommendation{}, fmt.Errorf("query %q: %w", query, domain.ErrNoSearchMatch)
	}

	page, err := s.GetRecommendations(ctx, RecommendRequest{
		ProductID: matches[0].ProductID,
		K:         k,
		Alpha:     alpha,
	})
	if err != nil {
		return domain.SearchRecommendation{}, err
	}

	return domain.SearchRecommendation{
		MatchedProduct:  matches[0],
		Recommendations: page,
	}, nil
}

// ProductByID reads one product from the immutable catalog snapshot.
func (s *Service) ProductByID(productID string) (domain.Product, error) {
	p, ok := s.productsByID[productID]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %q: %w", productID, domain.ErrProductNotFound)
	}
	return p, nil
}

// Products returns the catalog snapshot ordered by product_id.
func (s *Service) Products() []domain.Product {
	return s.ordered
}

func pageSlice(ranked []domain.RankedCandidate, offset, k int) []domain.RankedCandidate {
	if offset >= len(ranked) {
		return []domain.RankedCandidate{}
	}
	end := offset + k
	if end > len(ranked) {
		end = len(ranked)
	}

	out := make([]domain.RankedCandidate, end-offset)
	copy(out, ranked[offset:end])
	return out
}
