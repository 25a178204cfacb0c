package recommend

import (
	"shopReco/domain"
	"testing"
)

func TestExplainRulePriority(t *testing.T) {
	acmeAudio := domain.Product{ProductID: "a", Brand: "Acme", Category: "audio"}
	acmeFitness := domain.Product{ProductID: "b", Brand: "Acme", Category: "fitness"}
	zenAudio := domain.Product{ProductID: "c", Brand: "Zen", Category: "audio"}
	zenFitness := domain.Product{ProductID: "d", Brand: "Zen", Category: "fitness"}

	cases := []struct {
		name       string
		anchor     domain.Product
		candidate  domain.Product
		content    float64
		popularity float64
		want       string
	}{
		{
			name:   "same brand with strong content wins over everything",
			anchor: acmeAudio, candidate: acmeFitness,
			content: 0.8, popularity: 0.9,
			want: "strong content match & same brand",
		},
		{
			name:   "strong content alone",
			anchor: acmeAudio, candidate: zenAudio,
			content: 0.65, popularity: 0.1,
			want: "high text similarity",
		},
		{
			name:   "same category with moderate popularity",
			anchor: acmeAudio, candidate: zenAudio,
			content: 0.1, popularity: 0.45,
			want: "same category & moderate popularity",
		},
		{
			name:   "moderate content",
			anchor: acmeAudio, candidate: zenFitness,
			content: 0.35, popularity: 0.1,
			want: "moderate text similarity",
		},
		{
			name:   "popular item",
			anchor: acmeAudio, candidate: zenFitness,
			content: 0.05, popularity: 0.75,
			want: "popular item",
		},
		{
			name:   "generic fallback",
			anchor: acmeAudio, candidate: zenFitness,
			content: 0.05, popularity: 0.1,
			want: "related item",
		},
		{
			name:   "threshold boundary counts as strong",
			anchor: acmeAudio, candidate: acmeFitness,
			content: 0.6, popularity: 0,
			want: "strong content match & same brand",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Explain(tc.anchor, tc.candidate, tc.content, tc.popularity)
			if got != tc.want {
				t.Errorf("Explain() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExplainNeverEmpty(t *testing.T) {
	a := domain.Product{ProductID: "a"}
	b := domain.Product{ProductID: "b", Brand: "x", Category: "y"}

	for _, content := range []float64{0, 0.3, 0.6, 1} {
		for _, pop := range []float64{0, 0.4, 0.7, 1} {
			if Explain(a, b, content, pop) == "" {
				t.Fatalf("empty reason for content=%v popularity=%v", content, pop)
			}
		}
	}
}
