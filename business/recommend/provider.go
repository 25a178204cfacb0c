package recommend

import (
	"context"
	"shopReco/domain"
	"sync/atomic"
)

// Provider hands the current immutable engine to request handlers and
// lets the boundary layer swap in a freshly trained snapshot atomically.
// Requests in flight keep the snapshot they started with; a rebuild is
// never interleaved with serving.
type Provider struct {
	current atomic.Pointer[Service]
}

func NewProvider(svc *Service) *Provider {
	p := &Provider{}
	p.current.Store(svc)
	return p
}

// Swap replaces the serving snapshot.
func (p *Provider) Swap(svc *Service) {
	p.current.Store(svc)
}

func (p *Provider) Current() *Service {
	return p.current.Load()
}

func (p *Provider) GetRecommendations(ctx context.Context, req RecommendRequest) (domain.RecommendationPage, error) {
	return p.Current().GetRecommendations(ctx, req)
}

func (p *Provider) PopularProducts(ctx context.Context, k int, cursor string) (domain.PopularPage, error) {
	return p.Current().PopularProducts(ctx, k, cursor)
}

func (p *Provider) SearchProducts(ctx context.Context, query string, k int) ([]domain.Product, error) {
	return p.Current().SearchProducts(ctx, query, k)
}

func (p *Provider) SearchAndRecommend(ctx context.Context, query string, k int, alpha float64) (domain.SearchRecommendation, error) {
	return p.Current().SearchAndRecommend(ctx, query, k, alpha)
}

func (p *Provider) ProductByID(productID string) (domain.Product, error) {
	return p.Current().ProductByID(productID)
}

func (p *Provider) Products() []domain.Product {
	return p.Current().Products()
}
