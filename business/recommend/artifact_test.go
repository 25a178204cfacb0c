package recommend

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func testArtifact() *Artifact {
	products := testCatalog()
	store := NewFeatureStore(products)
	popularity := NewPopularityTable(products, testInteractions())

	return &Artifact{
		Version:    artifactVersion,
		BuiltAt:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Products:   products,
		Vectors:    store.Vectors(),
		IDF:        store.IDF(),
		Popularity: popularity.Scores(),
	}
}

func TestArtifactValidate(t *testing.T) {
	if err := testArtifact().Validate(); err != nil {
		t.Fatalf("consistent artifact rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(a *Artifact)
	}{
		{"wrong version", func(a *Artifact) { a.Version = 2 }},
		{"no products", func(a *Artifact) { a.Products = nil }},
		{"empty product_id", func(a *Artifact) { a.Products[0].ProductID = "" }},
		{"duplicate product_id", func(a *Artifact) { a.Products[1].ProductID = a.Products[0].ProductID }},
		{"missing vector", func(a *Artifact) { delete(a.Vectors, "prod_3") }},
		{"missing popularity", func(a *Artifact) { delete(a.Popularity, "prod_5") }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := testArtifact()
			tc.mutate(a)
			if err := a.Validate(); err == nil {
				t.Fatal("corrupt artifact accepted")
			}
		})
	}
}

func TestArtifactSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recommender.json")

	if err := SaveArtifact(path, testArtifact()); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadArtifact(path)
	if err != nil {
		t.Fatal(err)
	}

	fromArtifact, err := NewService(loaded, 10)
	if err != nil {
		t.Fatal(err)
	}

	req := RecommendRequest{ProductID: "prod_1", K: 5, Alpha: 0.6}
	want, err := testService().GetRecommendations(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	got, err := fromArtifact.GetRecommendations(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatal("serialized engine diverges from the in-process one")
	}
}

func TestLoadArtifactRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadArtifact(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file accepted")
	}

	a := testArtifact()
	delete(a.Vectors, "prod_2")
	path := filepath.Join(dir, "corrupt.json")
	if err := SaveArtifact(path, a); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadArtifact(path); err == nil {
		t.Error("inconsistent artifact accepted at load")
	}
}

func TestNewServiceRejectsInvalidArtifact(t *testing.T) {
	a := testArtifact()
	a.Version = 99

	if _, err := NewService(a, 10); err == nil {
		t.Fatal("invalid artifact accepted")
	}
}
