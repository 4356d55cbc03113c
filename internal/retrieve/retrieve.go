// Package retrieve matches a user query against the indexed question corpus.
//
// The engine normalizes the query, embeds it in the corpus vector space, and
// scans every document vector for the highest cosine similarity. Scores live
// in [0,1]; a score above the confidence threshold marks a match the caller
// may answer from directly, anything at or below it routes to fallback.
package retrieve

import (
	"fmt"
	"log/slog"

	"github.com/Epicb0i/Chatbot/internal/corpus"
	"github.com/Epicb0i/Chatbot/internal/counter"
	"github.com/Epicb0i/Chatbot/internal/normalize"
	"github.com/Epicb0i/Chatbot/internal/tfidf"
)

// DefaultConfidenceThreshold separates confident matches from fallback.
// Empirically chosen; tunable via config, but changing it shifts every
// routing decision.
const DefaultConfidenceThreshold = 0.15

// Result identifies the best-matching corpus entry for one query. A negative
// Index is the no-content sentinel: the query had no usable tokens and the
// caller should fall back rather than treat it as an error.
type Result struct {
	Index int
	Score float64
}

// NoContent reports whether this result is the empty-query sentinel.
func (r Result) NoContent() bool { return r.Index < 0 }

// Engine scores queries against the indexed general corpus. Engines are
// immutable after New and safe for concurrent Retrieve calls.
type Engine struct {
	entries    []corpus.Entry
	normalizer *normalize.Normalizer
	index      *tfidf.Index
	threshold  float64
	words      counter.Counter
}

// New builds an Engine over the general corpus entries, normalizing and
// caching each entry's question and indexing the results. threshold <= 0
// selects DefaultConfidenceThreshold; maxVocab <= 0 selects the tfidf
// default. Fails when entries is empty (tfidf.ErrEmptyCorpus).
func New(entries []corpus.Entry, n *normalize.Normalizer, maxVocab int, threshold float64) (*Engine, error) {
	if threshold <= 0 {
		threshold = DefaultConfidenceThreshold
	}

	owned := append([]corpus.Entry(nil), entries...)
	documents := make([]string, len(owned))
	for i := range owned {
		owned[i].Normalized = n.Normalize(owned[i].Question)
		documents[i] = owned[i].Normalized
	}

	index, err := tfidf.Build(documents, maxVocab)
	if err != nil {
		return nil, fmt.Errorf("failed to build retrieval index: %w", err)
	}

	return &Engine{
		entries:    owned,
		normalizer: n,
		index:      index,
		threshold:  threshold,
		words:      counter.New(counter.Words),
	}, nil
}

// Retrieve maps a raw query to the best-matching entry. On a multi-way score
// tie the lowest entry index wins, keeping results deterministic.
func (e *Engine) Retrieve(query string) Result {
	normalized := e.normalizer.Normalize(query)
	if e.words.Count(normalized) == 0 {
		slog.Debug("Query empty after normalization")
		return Result{Index: -1}
	}

	queryVec := e.index.Vocabulary.Vectorize(normalized)

	best := Result{Index: -1}
	for i, docVec := range e.index.Vectors {
		score := tfidf.Dot(queryVec, docVec)
		if best.Index < 0 || score > best.Score {
			best = Result{Index: i, Score: score}
		}
	}

	slog.Debug("Retrieval completed",
		"normalizedQuery", normalized,
		"bestIndex", best.Index,
		"bestScore", best.Score)
	return best
}

// Confident reports whether the result clears the confidence threshold.
func (e *Engine) Confident(r Result) bool {
	return !r.NoContent() && r.Score > e.threshold
}

// Answer returns the answer text for a non-sentinel result.
func (e *Engine) Answer(r Result) string {
	return e.entries[r.Index].Answer
}

// Entry returns the matched corpus entry for a non-sentinel result.
func (e *Engine) Entry(r Result) corpus.Entry {
	return e.entries[r.Index]
}

// Documents returns the number of indexed entries.
func (e *Engine) Documents() int { return len(e.entries) }
