package recommend

import (
	"errors"
	"math"
	"shopReco/domain"
	"testing"
)

func TestVectorOfUnknownProduct(t *testing.T) {
	fs := NewFeatureStore(testCatalog())

	_, err := fs.VectorOf("prod_999")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestVectorsAreUnitLength(t *testing.T) {
	fs := NewFeatureStore(testCatalog())

	for _, p := range testCatalog() {
		vec, err := fs.VectorOf(p.ProductID)
		if err != nil {
			t.Fatalf("VectorOf(%s): %v", p.ProductID, err)
		}

		var sum float64
		for _, w := range vec {
			if w < 0 {
				t.Fatalf("negative weight in vector of %s", p.ProductID)
			}
			sum += w * w
		}

		if len(vec) == 0 {
			continue // prod_6 has no features at all
		}
		if math.Abs(math.Sqrt(sum)-1) > 1e-9 {
			t.Errorf("vector of %s has norm %f, want 1", p.ProductID, math.Sqrt(sum))
		}
	}
}

func TestSimilaritySelfIsOne(t *testing.T) {
	fs := NewFeatureStore(testCatalog())

	sim, err := fs.Similarity("prod_1", "prod_1")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(sim-1) > 1e-9 {
		t.Errorf("self similarity = %f, want 1", sim)
	}
}

func TestSimilarityRangeAndOrdering(t *testing.T) {
	fs := NewFeatureStore(testCatalog())
	catalog := testCatalog()

	for _, a := range catalog {
		for _, b := range catalog {
			sim, err := fs.Similarity(a.ProductID, b.ProductID)
			if err != nil {
				t.Fatal(err)
			}
			if sim < 0 || sim > 1 {
				t.Errorf("similarity(%s,%s) = %f outside [0,1]", a.ProductID, b.ProductID, sim)
			}
		}
	}

	// the two headphone products must be closer than headphones vs yoga mat
	headphones, _ := fs.Similarity("prod_1", "prod_2")
	crossDomain, _ := fs.Similarity("prod_1", "prod_3")
	if headphones <= crossDomain {
		t.Errorf("similar products scored %f, dissimilar %f", headphones, crossDomain)
	}
}

func TestSimilarityZeroVector(t *testing.T) {
	fs := NewFeatureStore(testCatalog())

	sim, err := fs.Similarity("prod_1", "prod_6")
	if err != nil {
		t.Fatal(err)
	}
	if sim != 0 {
		t.Errorf("similarity against all-zero vector = %f, want 0", sim)
	}
}

func TestSimilarityDeterministic(t *testing.T) {
	fs := NewFeatureStore(testCatalog())

	first, _ := fs.Similarity("prod_1", "prod_2")
	for i := 0; i < 50; i++ {
		again, _ := fs.Similarity("prod_1", "prod_2")
		if again != first {
			t.Fatalf("similarity drifted between calls: %v vs %v", first, again)
		}
	}
}

func TestTokenizeBigramsAndStopwords(t *testing.T) {
	terms := Tokenize("The Wireless Headphones")

	want := map[string]bool{
		"wireless":            true,
		"headphones":          true,
		"wireless headphones": true,
	}
	if len(terms) != len(want) {
		t.Fatalf("got terms %v", terms)
	}
	for _, term := range terms {
		if !want[term] {
			t.Errorf("unexpected term %q", term)
		}
	}
}
