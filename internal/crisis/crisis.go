// Package crisis flags utterances that read as self-harm or suicide risk.
//
// Detection runs over the lowercased raw input, never the normalized form;
// phrasing like "end it all" only survives intact before token filtering.
// This is a best-effort linguistic filter, not a safety guarantee: callers
// must assume false negatives are possible and must treat a positive result
// as overriding every other interpretation of the turn.
package crisis

import (
	"regexp"
	"strings"
)

// phrases are matched as literal substrings of the lowercased input.
var phrases = []string{
	"suicide", "suicidal", "kill myself", "end my life", "want to die",
	"better off dead", "no reason to live", "end it all", "hurt myself",
	"harm myself", "goodbye letter", "plan to die", "ready to go",
	"wish i was dead", "don't want to live", "ready to end", "take my life",
}

// patterns catch phrasings the literal list misses; compiled once.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`\bi want to (die|kill myself|end (it|my life))\b`),
	regexp.MustCompile(`\bgoing to (kill myself|die|end it)\b`),
	regexp.MustCompile(`\b(better off dead|no point living|can't go on)\b`),
	regexp.MustCompile(`\bsuicide\b`),
	regexp.MustCompile(`\bhurt myself\b`),
}

// Detector answers whether a turn signals crisis intent. The zero value is
// not usable; construct with NewDetector.
type Detector struct {
	phrases  []string
	patterns []*regexp.Regexp
}

// NewDetector creates a Detector with the built-in phrase and pattern lists.
func NewDetector() *Detector {
	return &Detector{phrases: phrases, patterns: patterns}
}

// Detect reports whether the text contains crisis language. It lowercases
// the input itself; punctuation is preserved so contractions still match.
func (d *Detector) Detect(text string) bool {
	lower := strings.ToLower(text)

	for _, phrase := range d.phrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	for _, pattern := range d.patterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}
