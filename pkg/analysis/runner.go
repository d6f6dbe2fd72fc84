package analysis

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ritzau/cousin-words/pkg/config"
	"github.com/ritzau/cousin-words/pkg/cycles"
	"github.com/ritzau/cousin-words/pkg/embedding"
	"github.com/ritzau/cousin-words/pkg/etymology"
	"github.com/ritzau/cousin-words/pkg/logging"
	"github.com/ritzau/cousin-words/pkg/output"
	"github.com/ritzau/cousin-words/pkg/ranking"
	"github.com/ritzau/cousin-words/pkg/wordlist"
)

// Runner orchestrates loading the inputs, building the graph and printing
// either ranked suggestions or a single word's etymology.
type Runner struct {
	cfg *config.Config
	out io.Writer
}

// NewRunner creates a runner writing results to out
func NewRunner(cfg *config.Config, out io.Writer) *Runner {
	return &Runner{
		cfg: cfg,
		out: out,
	}
}

// Run executes the configured mode
func (r *Runner) Run(ctx context.Context) error {
	if r.cfg.Word != "" {
		return r.runWordInfo(ctx)
	}
	return r.runRanking(ctx)
}

func (r *Runner) runRanking(ctx context.Context) error {
	logger := logging.New("analysis")
	start := time.Now()

	logger.Info("[1/4] Loading word list...", "path", r.cfg.WordsPath)
	words, err := wordlist.Load(r.cfg.WordsPath)
	if err != nil {
		return fmt.Errorf("loading word list: %w", err)
	}
	logger.Info("[1/4] Complete", "words", len(words))

	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Info("[2/4] Loading word vectors...", "path", r.cfg.VectorsPath)
	vectors, err := embedding.LoadVectors(r.cfg.VectorsPath)
	if err != nil {
		return fmt.Errorf("loading word vectors: %w", err)
	}
	logger.Info("[2/4] Complete", "words", vectors.Len(), "dimension", vectors.Dimension())

	if err := ctx.Err(); err != nil {
		return err
	}

	g, err := r.buildGraph("[3/4]")
	if err != nil {
		return err
	}

	logger.Info("[4/4] Ranking related words...")
	ranker := ranking.NewRanker(g, vectors, ranking.Options{
		Language:            r.cfg.Language,
		MaxDepth:            r.cfg.MaxDepth,
		ExcludeCommonStarts: r.cfg.ExcludeCommonStarts,
		SubwordLength:       r.cfg.SubwordLength,
		UnknownWords:        r.cfg.UnknownWords,
	})
	suggestions, err := ranker.Rank(ctx, words)
	if err != nil {
		return fmt.Errorf("ranking: %w", err)
	}

	output.PrintSuggestions(r.out, suggestions, r.cfg.Limit)
	logger.Info("[4/4] Complete", "suggestions", len(suggestions), "durationMs", time.Since(start).Milliseconds())
	return nil
}

func (r *Runner) runWordInfo(ctx context.Context) error {
	g, err := r.buildGraph("[1/2]")
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// A missing word is reported to the user, not treated as a failure
	node, ok := g.Lookup(r.cfg.Word, r.cfg.Language)
	if !ok {
		logging.New("analysis").Debug("[2/2] Word not in graph", "word", r.cfg.Word, "language", r.cfg.Language)
	}
	output.PrintWordInfo(r.out, g, node, r.cfg.MaxDepth, r.cfg.ShowCounts)
	return nil
}

func (r *Runner) buildGraph(step string) (*etymology.Graph, error) {
	logger := logging.New("analysis")

	logger.Info(step+" Parsing etymologies...", "path", r.cfg.EtymologiesPath)
	tuples, err := etymology.LoadTuples(r.cfg.EtymologiesPath)
	if err != nil {
		return nil, fmt.Errorf("loading etymologies: %w", err)
	}

	g := etymology.Build(tuples)
	logger.Info(step+" Complete", "tuples", len(tuples), "nodes", g.Len())

	if r.cfg.ReportCycles {
		report := cycles.FindOriginCycles(g)
		logger.Info(step+" Origin cycles", "cycles", len(report.Cycles), "selfReferences", len(report.SelfReferences))
		output.PrintCycleReport(r.out, report)
	}

	return g, nil
}
