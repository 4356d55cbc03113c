package retrieve

import (
	"errors"
	"math"
	"testing"

	"github.com/Epicb0i/Chatbot/internal/corpus"
	"github.com/Epicb0i/Chatbot/internal/normalize"
	"github.com/Epicb0i/Chatbot/internal/tfidf"
)

// testEntries keeps the questions distinct enough that every test query has
// one obvious best match.
var testEntries = []corpus.Entry{
	{ID: 1, Question: "how can sleep better during night", Answer: "keep a routine"},
	{ID: 2, Question: "dealing with stress and pressure from work", Answer: "take breaks"},
	{ID: 3, Question: "feeling lonely without any friends around", Answer: "reach out"},
}

// newTestEngine builds an engine with the identity lemmatizer so test
// queries map onto questions verbatim.
func newTestEngine(t *testing.T, entries []corpus.Entry) *Engine {
	t.Helper()
	e, err := New(entries, normalize.New(normalize.Identity{}), 0, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e
}

func TestNewEmptyCorpus(t *testing.T) {
	_, err := New(nil, normalize.New(normalize.Identity{}), 0, 0)
	if !errors.Is(err, tfidf.ErrEmptyCorpus) {
		t.Errorf("New(nil) error = %v, want ErrEmptyCorpus", err)
	}
}

func TestRetrieveNoContent(t *testing.T) {
	e := newTestEngine(t, testEntries)

	tests := []struct {
		name  string
		query string
	}{
		{name: "empty string", query: ""},
		{name: "pure punctuation", query: "?!..."},
		{name: "only short tokens", query: "i am ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.Retrieve(tt.query)
			if !result.NoContent() {
				t.Errorf("Retrieve(%q) = %+v, want no-content sentinel", tt.query, result)
			}
			if e.Confident(result) {
				t.Errorf("Confident() = true for the no-content sentinel")
			}
		})
	}
}

func TestRetrieveSelfMatch(t *testing.T) {
	e := newTestEngine(t, testEntries)

	for i, entry := range testEntries {
		result := e.Retrieve(entry.Question)
		if result.Index != i {
			t.Errorf("Retrieve(%q) index = %d, want %d", entry.Question, result.Index, i)
		}
		if math.Abs(result.Score-1) > 1e-12 {
			t.Errorf("Retrieve(%q) score = %g, want 1", entry.Question, result.Score)
		}
		if !e.Confident(result) {
			t.Errorf("self match not confident: %+v", result)
		}
		if got := e.Answer(result); got != entry.Answer {
			t.Errorf("Answer() = %q, want %q", got, entry.Answer)
		}
	}
}

func TestRetrieveOutOfVocabulary(t *testing.T) {
	e := newTestEngine(t, testEntries)

	result := e.Retrieve("asdkjhasd qweqwe")
	if result.NoContent() {
		t.Fatalf("out-of-vocabulary query should score, not hit the sentinel")
	}
	if result.Score != 0 {
		t.Errorf("score = %g, want 0", result.Score)
	}
	if result.Index != 0 {
		t.Errorf("index = %d, want lowest index 0 on an all-zero tie", result.Index)
	}
	if e.Confident(result) {
		t.Errorf("Confident() = true for a zero score")
	}
}

func TestRetrieveTieBreaksLowestIndex(t *testing.T) {
	entries := []corpus.Entry{
		{ID: 1, Question: "sleep better night", Answer: "first"},
		{ID: 2, Question: "sleep better night", Answer: "second"},
	}
	e := newTestEngine(t, entries)

	result := e.Retrieve("sleep better night")
	if result.Index != 0 {
		t.Errorf("tie broke to index %d, want 0", result.Index)
	}
}

func TestRetrieveDeterministic(t *testing.T) {
	e := newTestEngine(t, testEntries)

	first := e.Retrieve("trouble with stress at work")
	for i := 0; i < 5; i++ {
		if got := e.Retrieve("trouble with stress at work"); got != first {
			t.Fatalf("Retrieve() varied across calls: %+v vs %+v", got, first)
		}
	}
}

func TestConfidenceThreshold(t *testing.T) {
	e := newTestEngine(t, testEntries)

	tests := []struct {
		name string
		r    Result
		want bool
	}{
		{name: "above threshold", r: Result{Index: 0, Score: 0.16}, want: true},
		{name: "at threshold", r: Result{Index: 0, Score: 0.15}, want: false},
		{name: "below threshold", r: Result{Index: 0, Score: 0.05}, want: false},
		{name: "sentinel", r: Result{Index: -1, Score: 1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Confident(tt.r); got != tt.want {
				t.Errorf("Confident(%+v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}
