package recommend

import (
	"math"
	"testing"
)

func TestPopularityNormalization(t *testing.T) {
	table := NewPopularityTable(testCatalog(), testInteractions())

	// prod_1: 3 purchases = 6.0 (the max)
	// prod_2: 1 purchase + 1 view = 3.0
	// prod_3: 2 views = 2.0
	cases := []struct {
		productID string
		want      float64
	}{
		{"prod_1", 1.0},
		{"prod_2", 0.5},
		{"prod_3", 2.0 / 6.0},
		{"prod_4", 0},
		{"prod_5", 0},
		{"prod_6", 0},
	}

	for _, tc := range cases {
		got := table.ScoreOf(tc.productID)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("ScoreOf(%s) = %f, want %f", tc.productID, got, tc.want)
		}
	}
}

func TestPopularityTotalOverCatalog(t *testing.T) {
	table := NewPopularityTable(testCatalog(), testInteractions())

	for _, p := range testCatalog() {
		score := table.ScoreOf(p.ProductID)
		if score < 0 || score > 1 {
			t.Errorf("ScoreOf(%s) = %f outside [0,1]", p.ProductID, score)
		}
	}
}

func TestPopularityColdStartIsZeroNotError(t *testing.T) {
	table := NewPopularityTable(testCatalog(), testInteractions())

	if got := table.ScoreOf("prod_6"); got != 0 {
		t.Errorf("cold-start product scored %f, want 0", got)
	}
	// unknown ids also score 0 rather than failing
	if got := table.ScoreOf("prod_999"); got != 0 {
		t.Errorf("unknown product scored %f, want 0", got)
	}
}

func TestPopularityNoInteractions(t *testing.T) {
	table := NewPopularityTable(testCatalog(), nil)

	for _, p := range testCatalog() {
		if got := table.ScoreOf(p.ProductID); got != 0 {
			t.Errorf("ScoreOf(%s) = %f with empty history, want 0", p.ProductID, got)
		}
	}
}
