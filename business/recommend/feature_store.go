package recommend

import (
	"fmt"
	"math"
	"regexp"
	"shopReco/domain"
	"sort"
	"strings"
)

// Vocabulary cap for text terms, matching the offline trainer. Brand and
// category pseudo-terms are always kept on top of this budget.
const maxTextFeatures = 100

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// stopwords excluded from the text vocabulary. Common articles and
// prepositions only; domain words always survive.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "or": true, "but": true, "not": true, "no": true,
	"of": true, "in": true, "on": true, "for": true, "with": true,
	"by": true, "at": true, "from": true, "to": true, "into": true,
	"as": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "it": true, "its": true,
	"this": true, "that": true, "these": true, "those": true,
	"has": true, "have": true, "had": true, "will": true, "can": true,
	"your": true, "our": true, "their": true, "all": true, "any": true,
	"more": true, "most": true, "other": true, "some": true, "such": true,
	"than": true, "too": true, "very": true, "you": true, "we": true,
}

// FeatureVector is a sparse weighted term vector. Weights are
// non-negative and the stored vectors are L2-normalized.
type FeatureVector map[string]float64

// FeatureStore holds one immutable feature vector per product. Built
// once at load time, read-only afterwards.
type FeatureStore struct {
	vectors map[string]FeatureVector
	idf     map[string]float64
}

// NewFeatureStore builds TF-IDF vectors over product_name + description,
// augmented with brand/category one-hot pseudo-terms, then normalizes
// each vector to unit length.
func NewFeatureStore(products []domain.Product) *FeatureStore {
	docs := make([][]string, len(products))
	corpusCount := make(map[string]int)
	docFreq := make(map[string]int)

	for i, p := range products {
		terms := Tokenize(p.ProductName + " " + p.Description)
		docs[i] = terms

		seen := make(map[string]bool)
		for _, t := range terms {
			corpusCount[t]++
			if !seen[t] {
				seen[t] = true
				docFreq[t]++
			}
		}
	}

	vocab := selectVocabulary(corpusCount, maxTextFeatures)

	n := len(products)
	idf := make(map[string]float64, len(vocab))
	for term := range vocab {
		idf[term] = math.Log(float64(1+n)/float64(1+docFreq[term])) + 1
	}

	vectors := make(map[string]FeatureVector, len(products))
	for i, p := range products {
		vec := make(FeatureVector)

		for _, t := range docs[i] {
			if vocab[t] {
				vec[t] += idf[t]
			}
		}

		// one-hot categorical attributes
		if p.Brand != "" {
			vec["brand="+strings.ToLower(p.Brand)] = 1
		}
		if p.Category != "" {
			vec["category="+strings.ToLower(p.Category)] = 1
		}

		normalize(vec)
		vectors[p.ProductID] = vec
	}

	return &FeatureStore{vectors: vectors, idf: idf}
}

// NewFeatureStoreFromArtifact rebuilds a store from pre-computed vectors
// (the offline artifact path). Vectors are assumed already normalized.
func NewFeatureStoreFromArtifact(vectors map[string]FeatureVector, idf map[string]float64) *FeatureStore {
	return &FeatureStore{vectors: vectors, idf: idf}
}

// VectorOf returns the feature vector of a product.
func (fs *FeatureStore) VectorOf(productID string) (FeatureVector, error) {
	vec, ok := fs.vectors[productID]
	if !ok {
		return nil, fmt.Errorf("feature vector for %q: %w", productID, domain.ErrProductNotFound)
	}
	return vec, nil
}

// Vectors exposes the full mapping for serialization by the trainer.
func (fs *FeatureStore) Vectors() map[string]FeatureVector {
	return fs.vectors
}

// IDF exposes the fitted vocabulary weights for serialization.
func (fs *FeatureStore) IDF() map[string]float64 {
	return fs.idf
}

// Similarity computes cosine similarity between two product vectors.
// Returns 0 if either vector is all-zero. Result is in [0,1] because
// all weights are non-negative.
func (fs *FeatureStore) Similarity(a, b string) (float64, error) {
	va, err := fs.VectorOf(a)
	if err != nil {
		return 0, err
	}
	vb, err := fs.VectorOf(b)
	if err != nil {
		return 0, err
	}
	return cosine(va, vb), nil
}

// Tokenize lowercases text and emits unigrams plus adjacent bigrams,
// with stopwords and single characters removed before ngram formation.
func Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)

	words := make([]string, 0, len(raw))
	for _, w := range raw {
		if len(w) < 2 || stopwords[w] {
			continue
		}
		words = append(words, w)
	}

	terms := make([]string, 0, 2*len(words))
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+" "+words[i+1])
	}
	return terms
}

// selectVocabulary keeps the `limit` most frequent corpus terms,
// breaking frequency ties lexicographically so the vocabulary is a pure
// function of the catalog.
func selectVocabulary(corpusCount map[string]int, limit int) map[string]bool {
	type termCount struct {
		term  string
		count int
	}

	all := make([]termCount, 0, len(corpusCount))
	for t, c := range corpusCount {
		all = append(all, termCount{term: t, count: c})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].term < all[j].term
	})

	if len(all) > limit {
		all = all[:limit]
	}

	vocab := make(map[string]bool, len(all))
	for _, tc := range all {
		vocab[tc.term] = true
	}
	return vocab
}

func normalize(vec FeatureVector) {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for t, w := range vec {
		vec[t] = w / norm
	}
}

// cosine iterates the smaller vector's terms in sorted order so the
// floating-point accumulation is identical across runs and processes.
func cosine(a, b FeatureVector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}

	terms := make([]string, 0, len(a))
	for t := range a {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	var dot float64
	for _, t := range terms {
		if w, ok := b[t]; ok {
			dot += a[t] * w
		}
	}

	// stored vectors are unit length; clamp rounding spill
	if dot > 1 {
		dot = 1
	}
	if dot < 0 {
		dot = 0
	}
	return dot
}
