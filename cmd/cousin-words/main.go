package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/ritzau/cousin-words/pkg/analysis"
	"github.com/ritzau/cousin-words/pkg/config"
	"github.com/ritzau/cousin-words/pkg/logging"
	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("cousin-words", pflag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cousin-words [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Suggests words that share a distant etymological root, ranked by embedding distance.\n")
		fmt.Fprintf(os.Stderr, "Settings are also read from %s and COUSIN_WORDS_* environment variables.\n\n", config.FileName)
		flags.PrintDefaults()
	}
	config.RegisterFlags(flags)
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	level := logging.ParseLevel(cfg.Verbosity, cfg.VerboseCnt)
	if cfg.JSONLogs {
		logging.SetJSONOutput(level)
	} else {
		logging.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := analysis.NewRunner(cfg, os.Stdout)
	if err := runner.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logging.Warn("Interrupted")
			os.Exit(130)
		}
		logging.Fatal("Run failed", "error", err)
	}
}
