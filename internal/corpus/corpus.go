// Package corpus loads the question/answer dataset that backs retrieval.
//
// The dataset is tabular with at least the columns Question_ID, Questions,
// and Answers. Entries with an ID above 100 are labeled crisis material and
// are kept out of the retrieval index entirely; crisis turns are handled by
// a dedicated detector, never by similarity lookup.
package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
)

// crisisIDThreshold partitions the dataset: IDs above it are crisis-labeled.
const crisisIDThreshold = 100

// Category labels a dataset entry.
type Category int

const (
	// General entries participate in the retrieval index.
	General Category = iota
	// Crisis entries are excluded from the index and vocabulary.
	Crisis
)

// String returns the category label.
func (c Category) String() string {
	switch c {
	case General:
		return "general"
	case Crisis:
		return "crisis"
	default:
		return "unknown"
	}
}

// Entry is one question/answer pair. Entries are immutable after load except
// for Normalized, which the index build caches exactly once.
type Entry struct {
	ID         int
	Category   Category
	Question   string
	Answer     string
	Normalized string // cached canonical form of Question, set at index build
}

// Load reads the dataset from a CSV file on disk.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	entries, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	return entries, nil
}

// Read parses CSV dataset content. The header row must name the
// Question_ID, Questions, and Answers columns; column order is free.
func Read(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{"Question_ID", "Questions", "Answers"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("dataset is missing required column %q", required)
		}
	}

	var entries []Entry
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row, err)
		}

		id, err := strconv.Atoi(record[cols["Question_ID"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid Question_ID %q", row, record[cols["Question_ID"]])
		}

		category := General
		if id > crisisIDThreshold {
			category = Crisis
		}

		entries = append(entries, Entry{
			ID:       id,
			Category: category,
			Question: record[cols["Questions"]],
			Answer:   record[cols["Answers"]],
		})
	}

	slog.Debug("Dataset loaded", "entries", len(entries))
	return entries, nil
}

// Partition splits entries into the general subset (indexed for retrieval)
// and the crisis subset (never indexed).
func Partition(entries []Entry) (general, crisis []Entry) {
	for _, e := range entries {
		if e.Category == Crisis {
			crisis = append(crisis, e)
		} else {
			general = append(general, e)
		}
	}
	return general, crisis
}
