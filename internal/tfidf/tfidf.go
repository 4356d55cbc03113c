// Package tfidf builds a fixed-vocabulary TF-IDF vector space over a small
// document collection.
//
// The vocabulary is capped at a configurable size and selected once at build
// time; documents are embedded as L2-normalized weight vectors over that
// vocabulary and never mutated afterward. Queries are vectorized against the
// same vocabulary, so cosine similarity between a query and any document
// reduces to a plain dot product of unit vectors.
//
// The weighting is smoothed TF-IDF:
//
//	weight(term, doc) = count(term, doc) * (ln((1+N)/(1+df(term))) + 1)
//
// followed by L2 normalization of each vector. The constants matter: scores
// produced here feed a fixed confidence threshold downstream, so the formula
// must stay put for score comparability.
package tfidf

import (
	"errors"
	"log/slog"
	"math"
	"sort"
	"strings"
)

// DefaultMaxVocabulary caps the vocabulary when the caller passes no limit.
const DefaultMaxVocabulary = 500

// ErrEmptyCorpus is returned when an index is built from zero documents; the
// caller should treat it as a configuration error, not a runtime failure.
var ErrEmptyCorpus = errors.New("tfidf: no documents to index")

// Vocabulary maps terms to fixed column indices with precomputed IDF
// weights. Immutable once built.
type Vocabulary struct {
	columns map[string]int
	terms   []string
	idf     []float64
}

// Size returns the number of terms in the vocabulary.
func (v *Vocabulary) Size() int { return len(v.terms) }

// Terms returns the vocabulary terms in column order. The returned slice is
// shared; callers must not modify it.
func (v *Vocabulary) Terms() []string { return v.terms }

// Vectorize embeds whitespace-tokenized text as an L2-normalized TF-IDF
// vector over the fixed vocabulary. Terms outside the vocabulary contribute
// zero weight; text with no in-vocabulary terms yields the zero vector.
func (v *Vocabulary) Vectorize(text string) []float64 {
	vec := make([]float64, len(v.terms))
	for _, token := range strings.Fields(text) {
		if col, ok := v.columns[token]; ok {
			vec[col]++
		}
	}
	for col := range vec {
		vec[col] *= v.idf[col]
	}
	normalize(vec)
	return vec
}

// Index holds the built vector space: the vocabulary plus one unit vector
// per document. Read-only after Build; safe for concurrent queries.
type Index struct {
	Vocabulary *Vocabulary
	Vectors    [][]float64
}

// Build constructs the vector space from pre-normalized documents. Passing
// maxVocab <= 0 selects DefaultMaxVocabulary. Build fails only when the
// document collection is empty.
func Build(documents []string, maxVocab int) (*Index, error) {
	if len(documents) == 0 {
		return nil, ErrEmptyCorpus
	}
	if maxVocab <= 0 {
		maxVocab = DefaultMaxVocabulary
	}

	// corpus counts and document frequency, with first-seen order recorded
	// so vocabulary selection ties break deterministically
	counts := make(map[string]int)
	docFreq := make(map[string]int)
	var firstSeen []string
	for _, doc := range documents {
		unique := make(map[string]bool)
		for _, token := range strings.Fields(doc) {
			if counts[token] == 0 {
				firstSeen = append(firstSeen, token)
			}
			counts[token]++
			unique[token] = true
		}
		for token := range unique {
			docFreq[token]++
		}
	}

	// select the highest-frequency terms; stable sort preserves first-seen
	// order among equal counts
	selected := append([]string(nil), firstSeen...)
	sort.SliceStable(selected, func(i, j int) bool {
		return counts[selected[i]] > counts[selected[j]]
	})
	if len(selected) > maxVocab {
		selected = selected[:maxVocab]
	}

	totalDocs := float64(len(documents))
	vocab := &Vocabulary{
		columns: make(map[string]int, len(selected)),
		terms:   selected,
		idf:     make([]float64, len(selected)),
	}
	for col, term := range selected {
		vocab.columns[term] = col
		vocab.idf[col] = math.Log((1+totalDocs)/(1+float64(docFreq[term]))) + 1
	}

	vectors := make([][]float64, len(documents))
	for i, doc := range documents {
		vectors[i] = vocab.Vectorize(doc)
	}

	slog.Debug("TF-IDF index built",
		"documents", len(documents),
		"vocabulary", vocab.Size(),
		"totalTerms", len(firstSeen))

	return &Index{Vocabulary: vocab, Vectors: vectors}, nil
}

// Dot returns the dot product of two equal-length vectors. For the unit
// vectors produced here this is their cosine similarity.
func Dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// normalize scales vec to unit length in place; the zero vector stays zero.
func normalize(vec []float64) {
	var sumSq float64
	for _, w := range vec {
		sumSq += w * w
	}
	if sumSq == 0 {
		return
	}
	norm := math.Sqrt(sumSq)
	for i := range vec {
		vec[i] /= norm
	}
}
