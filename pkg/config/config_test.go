package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "eng", cfg.Language)
	assert.Equal(t, 20, cfg.MaxDepth)
	assert.Equal(t, 4, cfg.SubwordLength)
	assert.False(t, cfg.ExcludeCommonStarts)
	assert.Equal(t, DefaultUnknownWords, cfg.UnknownWords)
	assert.Equal(t, "etymwn.tsv", cfg.EtymologiesPath)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("COUSIN_WORDS_MAX_DEPTH", "7")
	t.Setenv("COUSIN_WORDS_LANGUAGE", "fra")

	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(f)
	require.NoError(t, f.Parse([]string{"--language", "deu", "--exclude-common-starts", "-vv"}))

	cfg, err := Load(f)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.MaxDepth, "env should apply when the flag is unset")
	assert.Equal(t, "deu", cfg.Language, "flag should win over env")
	assert.True(t, cfg.ExcludeCommonStarts)
	assert.Equal(t, 2, cfg.VerboseCnt)
}

func TestLoad_RejectsNegativeDepth(t *testing.T) {
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(f)
	require.NoError(t, f.Parse([]string{"--max-depth=-1"}))

	_, err := Load(f)
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "max-depth", envKey("COUSIN_WORDS_MAX_DEPTH"))
	assert.Equal(t, "words", envKey("COUSIN_WORDS_WORDS"))
}
