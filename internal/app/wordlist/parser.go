// Package wordlist loads the word-list and reference-definition CSV inputs.
// Pure functions: file path in, in-memory tables out.
package wordlist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/danuarta/kamusgen/internal/domain"
)

const (
	wordColumn       = "word"
	definitionColumn = "definition"
)

// ReferenceTable maps words to their reference definitions.
// First occurrence wins when a word appears on multiple rows.
type ReferenceTable struct {
	defs map[string]string
}

// NewReferenceTable builds a table directly from a word→definition map.
func NewReferenceTable(defs map[string]string) *ReferenceTable {
	if defs == nil {
		defs = map[string]string{}
	}
	return &ReferenceTable{defs: defs}
}

// Lookup returns the reference definition for word, exact match only.
func (t *ReferenceTable) Lookup(word string) (string, bool) {
	def, ok := t.defs[word]
	return def, ok
}

// Len returns the number of distinct words in the table.
func (t *ReferenceTable) Len() int {
	return len(t.defs)
}

// LoadWords reads the word-list CSV and returns the word column in file
// order, duplicates preserved. Blank cells are skipped.
// A missing file maps to domain.ErrMissingFile, everything else to domain.ErrLoad.
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapOpenErr(path, err)
	}
	defer f.Close()

	header, rows, err := readAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrLoad, path, err)
	}

	wordIdx, ok := columnIndex(header, wordColumn)
	if !ok {
		return nil, fmt.Errorf("%w: %s: missing %q column", domain.ErrLoad, path, wordColumn)
	}

	var words []string
	for _, row := range rows {
		if wordIdx >= len(row) {
			continue
		}
		word := strings.TrimSpace(row[wordIdx])
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words, nil
}

// LoadReference reads the reference CSV into a lookup table keyed by word.
func LoadReference(path string) (*ReferenceTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapOpenErr(path, err)
	}
	defer f.Close()

	header, rows, err := readAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrLoad, path, err)
	}

	wordIdx, ok := columnIndex(header, wordColumn)
	if !ok {
		return nil, fmt.Errorf("%w: %s: missing %q column", domain.ErrLoad, path, wordColumn)
	}
	defIdx, ok := columnIndex(header, definitionColumn)
	if !ok {
		return nil, fmt.Errorf("%w: %s: missing %q column", domain.ErrLoad, path, definitionColumn)
	}

	defs := make(map[string]string, len(rows))
	for _, row := range rows {
		if wordIdx >= len(row) || defIdx >= len(row) {
			continue
		}
		word := strings.TrimSpace(row[wordIdx])
		if word == "" {
			continue
		}
		// First occurrence wins.
		if _, exists := defs[word]; exists {
			continue
		}
		defs[word] = row[defIdx]
	}

	return &ReferenceTable{defs: defs}, nil
}

// readAll parses a CSV stream into a header row and data rows.
func readAll(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil, fmt.Errorf("empty file")
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, record)
	}
	return header, rows, nil
}

// columnIndex finds a header column by name, case-insensitive, position-independent.
func columnIndex(header []string, name string) (int, bool) {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, true
		}
	}
	return 0, false
}

func wrapOpenErr(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", domain.ErrMissingFile, path)
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrLoad, path, err)
}
