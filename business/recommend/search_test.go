package recommend

import (
	"context"
	"errors"
	"shopReco/domain"
	"testing"
)

func TestSearchCaseInsensitiveContainment(t *testing.T) {
	m := NewSearchMatcher(testService().Products())

	results := m.Search("HEADPHONES", 10)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].ProductID != "prod_1" || results[1].ProductID != "prod_2" {
		t.Errorf("got %s, %s", results[0].ProductID, results[1].ProductID)
	}
}

func TestSearchRanksByMatchedFields(t *testing.T) {
	m := NewSearchMatcher(testService().Products())

	// "yoga" appears in name and description of prod_3 and prod_4;
	// "acme" appears in name and brand of prod_1/2/5
	results := m.Search("yoga", 10)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	// "zen" matches brand on both yoga products, but name only of
	// neither; ties fall back to product_id order
	results = m.Search("zen", 10)
	if len(results) != 2 {
		t.Fatalf("got %d results for zen, want 2", len(results))
	}
	if results[0].ProductID != "prod_3" || results[1].ProductID != "prod_4" {
		t.Errorf("tie not broken by product_id: %s, %s", results[0].ProductID, results[1].ProductID)
	}
}

func TestSearchLimitAndEmpty(t *testing.T) {
	m := NewSearchMatcher(testService().Products())

	if got := m.Search("acme", 2); len(got) != 2 {
		t.Errorf("k=2 returned %d results", len(got))
	}
	if got := m.Search("nonexistent gadget", 10); len(got) != 0 {
		t.Errorf("no-match query returned %d results", len(got))
	}
	if got := m.Search("   ", 10); len(got) != 0 {
		t.Errorf("blank query returned %d results", len(got))
	}
}

func TestSearchProductsValidatesK(t *testing.T) {
	svc := testService()

	_, err := svc.SearchProducts(context.Background(), "acme", 0)
	if !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestSearchEmptyResultIsNotError(t *testing.T) {
	svc := testService()

	results, err := svc.SearchProducts(context.Background(), "warp drive", 5)
	if err != nil {
		t.Fatalf("empty search errored: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("got %d results", len(results))
	}
}
