package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// FileName is the optional config file looked up in the working directory
const FileName = "cousin-words.toml"

const envPrefix = "COUSIN_WORDS_"

// DefaultUnknownWords are never used as queries or suggestions
var DefaultUnknownWords = []string{
	"gree", "leed", "copyboy", "midcap", "een", "poisonwood",
	"localhost", "morningtide", "seel", "mesic", "idée", "olivia",
}

// Config holds all configuration for the application
type Config struct {
	WordsPath       string `koanf:"words"`
	EtymologiesPath string `koanf:"etymologies"`
	VectorsPath     string `koanf:"vectors"`

	Language            string   `koanf:"language"`
	MaxDepth            int      `koanf:"max-depth"`
	ExcludeCommonStarts bool     `koanf:"exclude-common-starts"`
	SubwordLength       int      `koanf:"subword-length"`
	UnknownWords        []string `koanf:"unknown-words"`
	Limit               int      `koanf:"limit"`

	Word         string `koanf:"word"`
	ShowCounts   bool   `koanf:"counts"`
	ReportCycles bool   `koanf:"cycles"`

	Verbosity  string `koanf:"verbosity"`
	VerboseCnt int    `koanf:"verbose"`
	JSONLogs   bool   `koanf:"json-logs"`
}

// Defaults returns the built-in configuration values keyed like the flags
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"words":                 "100_000-english.txt",
		"etymologies":           "etymwn.tsv",
		"vectors":               "glove.6B.50d.txt",
		"language":              "eng",
		"max-depth":             20,
		"exclude-common-starts": false,
		"subword-length":        4,
		"unknown-words":         DefaultUnknownWords,
		"limit":                 0,
		"word":                  "",
		"counts":                false,
		"cycles":                false,
		"verbosity":             "",
		"verbose":               0,
		"json-logs":             false,
	}
}

// RegisterFlags declares the command-line flags understood by Load
func RegisterFlags(f *pflag.FlagSet) {
	f.String("words", "100_000-english.txt", "Newline-separated list of query words")
	f.String("etymologies", "etymwn.tsv", "Tab-separated etymology relations")
	f.String("vectors", "glove.6B.50d.txt", "Whitespace-separated word vectors")
	f.String("language", "eng", "Language code of query words and suggestions")
	f.Int("max-depth", 20, "Depth bound for etymology graph walks")
	f.Bool("exclude-common-starts", false, "Drop suggestions starting with the query's first letter")
	f.Int("subword-length", 4, "Drop suggestions sharing a substring of this length with the query (0 disables)")
	f.StringSlice("unknown-words", DefaultUnknownWords, "Words never used as queries or suggestions")
	f.Int("limit", 0, "Print at most this many suggestions (0 prints all)")
	f.String("word", "", "Print the etymology tree of a single word instead of ranking")
	f.Bool("counts", false, "Show descendant counts in trees")
	f.Bool("cycles", false, "Report origin cycles found in the etymology data")
	f.String("verbosity", "", "Log level: trace, debug, info, warn, error")
	f.CountP("verbose", "v", "Increase log verbosity (-v debug, -vv trace)")
	f.Bool("json-logs", false, "Emit logs as JSON")
}

// Load loads configuration from defaults, config file, environment variables, and flags.
// Priority: Flags > Env > Config File > Defaults
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(makeMapProvider(Defaults()), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config File (optional) - the file might not exist
	_ = k.Load(file.Provider(FileName), toml.Parser())

	// 3. Environment Variables
	// Prefix: COUSIN_WORDS_ (e.g., COUSIN_WORDS_MAX_DEPTH=30)
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the pipeline cannot work with
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max-depth must not be negative, got %d", c.MaxDepth)
	}
	if c.SubwordLength < 0 {
		return fmt.Errorf("subword-length must not be negative, got %d", c.SubwordLength)
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", c.Limit)
	}
	if c.Language == "" {
		return fmt.Errorf("language must be set")
	}
	return nil
}

// envKey maps COUSIN_WORDS_MAX_DEPTH to max-depth
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", "-")
}

// Helper to use map as a provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
