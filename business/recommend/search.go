package recommend

import (
	"shopReco/domain"
	"sort"
	"strings"
)

// SearchMatcher is a lexical lookup from free text to catalog products.
// It is independent of the hybrid scorer: matching is field containment,
// not vector similarity, so queries outside the fitted vocabulary still
// find products.
type SearchMatcher struct {
	ordered []domain.Product // catalog sorted by product_id
}

func NewSearchMatcher(ordered []domain.Product) *SearchMatcher {
	return &SearchMatcher{ordered: ordered}
}

// Search matches the query case-insensitively against name, description,
// brand and category. Relevance is the number of matched fields, ties
// broken by ascending product_id. Returns at most k products; an empty
// result is valid, not an error.
func (m *SearchMatcher) Search(query string, k int) []domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || k <= 0 {
		return []domain.Product{}
	}

	type match struct {
		product domain.Product
		fields  int
	}

	matches := make([]match, 0)
	for _, p := range m.ordered {
		fields := 0
		if strings.Contains(strings.ToLower(p.ProductName), query) {
			fields++
		}
		if strings.Contains(strings.ToLower(p.Description), query) {
			fields++
		}
		if strings.Contains(strings.ToLower(p.Brand), query) {
			fields++
		}
		if strings.Contains(strings.ToLower(p.Category), query) {
			fields++
		}
		if fields > 0 {
			matches = append(matches, match{product: p, fields: fields})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].fields != matches[j].fields {
			return matches[i].fields > matches[j].fields
		}
		return matches[i].product.ProductID < matches[j].product.ProductID
	})

	if len(matches) > k {
		matches = matches[:k]
	}

	products := make([]domain.Product, 0, len(matches))
	for _, m := range matches {
		products = append(products, m.product)
	}
	return products
}
