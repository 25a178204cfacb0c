package recommend

import (
	"encoding/json"
	"fmt"
	"os"
	"shopReco/domain"
	"time"
)

const artifactVersion = 1

// Artifact is the serialized model bundle produced by the offline
// trainer and consumed at server startup. The schema is explicit: both
// mappings must cover every catalog product, validated at load time.
type Artifact struct {
	Version    int                      `json:"version"`
	BuiltAt    time.Time                `json:"built_at"`
	Products   []domain.Product         `json:"products"`
	Vectors    map[string]FeatureVector `json:"vectors"`
	IDF        map[string]float64       `json:"idf"`
	Popularity map[string]float64       `json:"popularity"`
}

// Validate checks snapshot consistency. A product missing from either
// mapping means a corrupt artifact; callers treat this as fatal at
// startup, never as a per-request error.
func (a *Artifact) Validate() error {
	if a.Version != artifactVersion {
		return fmt.Errorf("unsupported artifact version %d", a.Version)
	}
	if len(a.Products) == 0 {
		return fmt.Errorf("artifact contains no products")
	}

	seen := make(map[string]bool, len(a.Products))
	for _, p := range a.Products {
		if p.ProductID == "" {
			return fmt.Errorf("artifact product with empty product_id")
		}
		if seen[p.ProductID] {
			return fmt.Errorf("duplicate product_id %q in artifact", p.ProductID)
		}
		seen[p.ProductID] = true

		if _, ok := a.Vectors[p.ProductID]; !ok {
			return fmt.Errorf("product %q missing from vectors", p.ProductID)
		}
		if _, ok := a.Popularity[p.ProductID]; !ok {
			return fmt.Errorf("product %q missing from popularity", p.ProductID)
		}
	}

	return nil
}

func SaveArtifact(path string, a *Artifact) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}

	return nil
}

func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("unmarshal artifact: %w", err)
	}

	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("validate artifact: %w", err)
	}

	return &a, nil
}
