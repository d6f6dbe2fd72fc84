package analysis

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/ritzau/cousin-words/pkg/config"
	"github.com/ritzau/cousin-words/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
	logging.SetOutput(io.Discard, slog.LevelInfo)
}

const etymologiesTSV = "eng: canine\trel:etymology\tlat: canis\n" +
	"lat: canis\trel:etymology\tine: kwon\n" +
	"ang: hund\trel:etymology\tine: kwon\n" +
	"eng: hound\trel:etymology\tang: hund\n" +
	"eng: kennel\trel:etymology\tanm: kenel\n" +
	"anm: kenel\trel:etymology\tlat: canis\n" +
	"eng: -ward\trel:etymology\tang: -weard\n"

func writeInputs(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"words.txt":   "hound\ncanine\nreturn\n",
		"etym.tsv":    etymologiesTSV,
		"vectors.txt": "hound 0 0\ncanine 3 4\nkennel 3 0\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return &config.Config{
		WordsPath:       filepath.Join(dir, "words.txt"),
		EtymologiesPath: filepath.Join(dir, "etym.tsv"),
		VectorsPath:     filepath.Join(dir, "vectors.txt"),
		Language:        "eng",
		MaxDepth:        20,
		SubwordLength:   4,
	}
}

func TestRunner_Ranking(t *testing.T) {
	cfg := writeInputs(t)

	var out bytes.Buffer
	require.NoError(t, NewRunner(cfg, &out).Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"hound <-> canine - 5",
		"canine <-> hound - 5",
		"canine <-> kennel - 4",
		"hound <-> kennel - 3",
	}, lines)
}

func TestRunner_WordInfo(t *testing.T) {
	cfg := writeInputs(t)
	cfg.Word = "kennel"

	var out bytes.Buffer
	require.NoError(t, NewRunner(cfg, &out).Run(context.Background()))

	assert.Contains(t, out.String(), "tree for ine: kwon\n")
	assert.Contains(t, out.String(), "eng: kennel\n  anm: kenel\n    lat: canis\n      ine: kwon\n")
}

func TestRunner_UnknownWord(t *testing.T) {
	cfg := writeInputs(t)
	cfg.Word = "zzz"

	var out bytes.Buffer
	require.NoError(t, NewRunner(cfg, &out).Run(context.Background()))
	assert.Equal(t, "Unknown word/language\n", out.String())
}

func TestRunner_CycleReport(t *testing.T) {
	cfg := writeInputs(t)
	cfg.Word = "hound"
	cfg.ReportCycles = true

	var out bytes.Buffer
	require.NoError(t, NewRunner(cfg, &out).Run(context.Background()))
	assert.Contains(t, out.String(), "No origin cycles")
}

func TestRunner_MissingInput(t *testing.T) {
	cfg := writeInputs(t)
	cfg.VectorsPath = filepath.Join(t.TempDir(), "missing.txt")

	err := NewRunner(cfg, io.Discard).Run(context.Background())
	assert.Error(t, err)
}
