package counter

import (
	"strings"
	"unicode/utf8"
)

// charCounter counts UTF-8 runes rather than bytes, so multi-byte
// characters count once.
type charCounter struct{}

func (charCounter) Count(text string) int {
	return utf8.RuneCountInString(text)
}

func (charCounter) Name() string { return "characters" }

// wordCounter counts whitespace-separated fields.
type wordCounter struct{}

func (wordCounter) Count(text string) int {
	return len(strings.Fields(text))
}

func (wordCounter) Name() string { return "words" }
