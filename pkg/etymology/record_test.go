package etymology

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Tuple
		ok       bool
	}{
		{
			name:     "simple relation",
			line:     "eng: dog\trel:etymology\tenm: dogge",
			expected: Tuple{Word: "dog", Language: "eng", OriginWord: "dogge", OriginLanguage: "enm"},
			ok:       true,
		},
		{
			name:     "lowercases every part",
			line:     "ENG: Effigy\trel:etymology\tLAT: Effigies",
			expected: Tuple{Word: "effigy", Language: "eng", OriginWord: "effigies", OriginLanguage: "lat"},
			ok:       true,
		},
		{
			name:     "extra whitespace in origin",
			line:     "fra: chien\trel:etymology\t  lat:   canis  ",
			expected: Tuple{Word: "chien", Language: "fra", OriginWord: "canis", OriginLanguage: "lat"},
			ok:       true,
		},
		{name: "missing origin word", line: "eng: dog\trel:etymology\tenm:", ok: false},
		{name: "too few columns", line: "eng: dog\trel:etymology", ok: false},
		{name: "source too short", line: "eng:\trel:etymology\tenm: dogge", ok: false},
		{name: "suffix word", line: "eng: -ness\trel:etymology\tenm: -nesse", ok: false},
		{name: "prefix origin", line: "eng: undo\trel:etymology\tenm: un-", ok: false},
		{name: "prefix word", line: "eng: re-\trel:etymology\tlat: re", ok: false},
		{name: "suffix origin", line: "eng: kingdom\trel:etymology\tang: -dom", ok: false},
		{name: "elided word", line: "eng: 'tis\trel:etymology\teng: it", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRecord(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestReadTuples(t *testing.T) {
	input := strings.Join([]string{
		"eng: dog\trel:etymology\tenm: dogge",
		"",
		"eng: -ward\trel:etymology\tang: -weard",
		"garbage",
		"enm: dogge\trel:etymology\tang: docga",
	}, "\n")

	tuples, err := ReadTuples(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, tuples, 2)

	assert.Equal(t, "dog", tuples[0].Word)
	assert.Equal(t, "docga", tuples[1].OriginWord)
	assert.Equal(t, "ang", tuples[1].OriginLanguage)
}

func TestLoadTuples_MissingFile(t *testing.T) {
	_, err := LoadTuples("does-not-exist.tsv")
	assert.Error(t, err)
}
