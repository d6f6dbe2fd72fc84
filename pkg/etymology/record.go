package etymology

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Tuple is one normalized descent relation: Word in Language derives from
// OriginWord in OriginLanguage.
type Tuple struct {
	Word           string
	Language       string
	OriginWord     string
	OriginLanguage string
}

// Column 0 is "<lang><sep><word>", e.g. "eng: dog"
const (
	languageCodeLen = 3
	wordOffset      = 5
)

// ParseRecord parses one tab-separated etymology line.
// Format: "eng: dog<TAB>rel:etymology<TAB>enm: dogge"
// Returns false for malformed records and for bound forms.
func ParseRecord(line string) (Tuple, bool) {
	parts := strings.Split(strings.ToLower(line), "\t")
	if len(parts) < 3 {
		return Tuple{}, false
	}

	source := parts[0]
	if len(source) <= wordOffset {
		return Tuple{}, false
	}

	// "<originLang><marker> <originWord>"
	originParts := strings.Fields(parts[2])
	if len(originParts) < 2 || len(originParts[0]) < 2 {
		return Tuple{}, false
	}

	t := Tuple{
		Word:           source[wordOffset:],
		Language:       source[:languageCodeLen],
		OriginWord:     originParts[1],
		OriginLanguage: originParts[0][:len(originParts[0])-1],
	}

	if !t.Valid() {
		return Tuple{}, false
	}
	return t, true
}

// Valid reports whether both sides are standalone words rather than
// prefixes, suffixes or elided fragments.
func (t Tuple) Valid() bool {
	if t.Word == "" || t.OriginWord == "" {
		return false
	}
	if isBoundForm(t.Word) || isBoundForm(t.OriginWord) {
		return false
	}
	return !strings.HasPrefix(t.Word, "'")
}

func isBoundForm(word string) bool {
	return strings.HasPrefix(word, BoundaryMarker) || strings.HasSuffix(word, BoundaryMarker)
}

// ReadTuples parses every line of r, silently skipping malformed records
func ReadTuples(r io.Reader) ([]Tuple, error) {
	var tuples []Tuple
	skipped := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		t, ok := ParseRecord(line)
		if !ok {
			skipped++
			continue
		}
		tuples = append(tuples, t)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading etymology records: %w", err)
	}

	log().Debug("Parsed etymology records", "tuples", len(tuples), "skipped", skipped)
	return tuples, nil
}

// LoadTuples reads etymology records from a TSV file
func LoadTuples(path string) ([]Tuple, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	tuples, err := ReadTuples(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tuples, nil
}
