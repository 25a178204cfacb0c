package recommend

import (
	"reflect"
	"shopReco/domain"
	"testing"
)

func diversifyFixture() ([]domain.RankedCandidate, map[string]domain.Product) {
	products := map[string]domain.Product{
		"a1": {ProductID: "a1", Brand: "Acme", Category: "audio"},
		"a2": {ProductID: "a2", Brand: "Acme", Category: "audio"},
		"a3": {ProductID: "a3", Brand: "Acme", Category: "audio"},
		"b1": {ProductID: "b1", Brand: "Zen", Category: "fitness"},
		"b2": {ProductID: "b2", Brand: "Zen", Category: "fitness"},
		"c1": {ProductID: "c1", Brand: "Acme", Category: "accessories"},
	}

	ranked := []domain.RankedCandidate{
		{ProductID: "a1", Score: 0.9},
		{ProductID: "a2", Score: 0.8},
		{ProductID: "b1", Score: 0.7},
		{ProductID: "a3", Score: 0.6},
		{ProductID: "b2", Score: 0.5},
		{ProductID: "c1", Score: 0.4},
	}
	return ranked, products
}

func idsOf(items []domain.RankedCandidate) []string {
	ids := make([]string, len(items))
	for i, c := range items {
		ids[i] = c.ProductID
	}
	return ids
}

func TestDiversifyDefersClusteredNeighbor(t *testing.T) {
	ranked, products := diversifyFixture()

	out := Diversify(ranked, 6, products)

	// a2 clusters with a1 and is deferred behind b1; a3 then clusters
	// with a2 and is deferred behind b2
	want := []string{"a1", "b1", "a2", "b2", "a3", "c1"}
	if got := idsOf(out); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDiversifyIsPermutationWithinWindow(t *testing.T) {
	ranked, products := diversifyFixture()

	for window := 1; window <= len(ranked)+2; window++ {
		out := Diversify(ranked, window, products)

		if len(out) != len(ranked) {
			t.Fatalf("window=%d: length changed from %d to %d", window, len(ranked), len(out))
		}

		seen := make(map[string]int)
		for _, c := range out {
			seen[c.ProductID]++
		}
		for _, c := range ranked {
			if seen[c.ProductID] != 1 {
				t.Fatalf("window=%d: %s appears %d times", window, c.ProductID, seen[c.ProductID])
			}
		}

		// beyond the window nothing moves
		w := window
		if w > len(ranked) {
			w = len(ranked)
		}
		if !reflect.DeepEqual(out[w:], ranked[w:]) {
			// only valid when the window prefix is also a prefix permutation
			t.Fatalf("window=%d: tail reordered", window)
		}
	}
}

func TestDiversifyNoAlternativeKeepsOrder(t *testing.T) {
	products := map[string]domain.Product{
		"a1": {ProductID: "a1", Brand: "Acme", Category: "audio"},
		"a2": {ProductID: "a2", Brand: "Acme", Category: "audio"},
		"a3": {ProductID: "a3", Brand: "Acme", Category: "audio"},
	}
	ranked := []domain.RankedCandidate{
		{ProductID: "a1"},
		{ProductID: "a2"},
		{ProductID: "a3"},
	}

	out := Diversify(ranked, 3, products)
	if got := idsOf(out); !reflect.DeepEqual(got, []string{"a1", "a2", "a3"}) {
		t.Fatalf("order changed without an alternative: %v", got)
	}
}

func TestDiversifyDeterministic(t *testing.T) {
	ranked, products := diversifyFixture()

	first := Diversify(ranked, 4, products)
	for i := 0; i < 20; i++ {
		again := Diversify(ranked, 4, products)
		if !reflect.DeepEqual(first, again) {
			t.Fatal("diversification is not deterministic")
		}
	}
}

func TestDiversifyDoesNotMutateInput(t *testing.T) {
	ranked, products := diversifyFixture()
	original := make([]domain.RankedCandidate, len(ranked))
	copy(original, ranked)

	Diversify(ranked, 6, products)

	if !reflect.DeepEqual(ranked, original) {
		t.Fatal("input slice was mutated")
	}
}
