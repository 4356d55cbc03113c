// Package counter provides text counting strategies for reply shaping.
//
// Replies are gated on length before optional embellishment (short answers
// may receive an encouragement suffix, long ones never do), and queries are
// checked for usable word content before retrieval. Both checks go through
// the Counter interface so the unit of measurement stays swappable.
package counter

// Counter defines the interface for text counting strategies.
type Counter interface {
	// Count returns the number of units (characters or words) in the text.
	Count(text string) int

	// Name returns a human-readable name for this counting method.
	Name() string
}

// Method represents the available counting strategies.
type Method int

const (
	// Characters counts UTF-8 runes, including whitespace.
	Characters Method = iota
	// Words counts whitespace-separated fields.
	Words
)

// String returns the string representation of the counting method.
func (m Method) String() string {
	switch m {
	case Characters:
		return "characters"
	case Words:
		return "words"
	default:
		return "unknown"
	}
}

// New returns the Counter for the given method, defaulting to Characters.
func New(method Method) Counter {
	switch method {
	case Words:
		return wordCounter{}
	default:
		return charCounter{}
	}
}
