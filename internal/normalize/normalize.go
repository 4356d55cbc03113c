// Package normalize reduces free text to the canonical token form shared by
// the corpus index and incoming queries.
//
// The pipeline is: lowercase, strip everything that is not an ASCII letter or
// whitespace, split on whitespace, drop tokens of two characters or fewer,
// and reduce each surviving token to its base form. Both sides of a lookup
// (indexed questions and user queries) must run through the same Normalizer
// instance so their vocabularies line up.
package normalize

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball"
)

// nonLetterRegex is compiled once at package initialization; it matches every
// character that should not survive normalization.
var nonLetterRegex = regexp.MustCompile(`[^a-zA-Z\s]`)

// minTokenLen is the operative token filter: a token survives iff it is
// strictly longer than this. Short function words ("i", "to", "is") fall out
// here, which is why the stopword set below is never consulted.
const minTokenLen = 2

// Stopwords is the nominal English stopword set for this pipeline. Filtering
// is length-based only and the set is not applied to output; it is retained
// as visible configuration so enabling it would be a one-line change.
var Stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "her": {}, "was": {}, "one": {},
	"our": {}, "out": {}, "day": {}, "get": {}, "has": {}, "him": {},
	"his": {}, "how": {}, "man": {}, "new": {}, "now": {}, "old": {},
	"see": {}, "two": {}, "way": {}, "who": {}, "did": {}, "its": {},
	"let": {}, "put": {}, "say": {}, "she": {}, "too": {}, "use": {},
}

// Lemmatizer reduces a single token to its dictionary base form. The token is
// already lowercase ASCII letters by the time it arrives here.
type Lemmatizer interface {
	Lemmatize(token string) string
}

// Snowball is the default Lemmatizer, backed by the English snowball stemmer.
// Stemming is part-of-speech agnostic, which is all this pipeline needs.
type Snowball struct{}

// Lemmatize stems the token; if stemming fails the token passes unchanged.
func (Snowball) Lemmatize(token string) string {
	stemmed, err := snowball.Stem(token, "english", true)
	if err != nil {
		return token
	}
	return stemmed
}

// Identity returns every token unchanged. Useful when the caller wants the
// structural pipeline (case, punctuation, length filter) without stemming.
type Identity struct{}

// Lemmatize returns the token as-is.
func (Identity) Lemmatize(token string) string { return token }

// Normalizer applies the full normalization pipeline with a fixed Lemmatizer.
type Normalizer struct {
	lemmatizer Lemmatizer
}

// New creates a Normalizer. A nil lemmatizer selects the Snowball default.
func New(l Lemmatizer) *Normalizer {
	if l == nil {
		l = Snowball{}
	}
	return &Normalizer{lemmatizer: l}
}

// Normalize maps text to its canonical form. It is deterministic, has no
// failure modes, and always returns a string (possibly empty).
func (n *Normalizer) Normalize(text string) string {
	text = strings.ToLower(text)
	text = nonLetterRegex.ReplaceAllString(text, "")

	var out []string
	for _, token := range strings.Fields(text) {
		if len(token) <= minTokenLen {
			continue
		}
		out = append(out, n.lemmatizer.Lemmatize(token))
	}
	return strings.Join(out, " ")
}
