// Package ranking suggests words that share a distant etymological root with
// a query word and orders them by embedding distance.
package ranking

import (
	"context"
	"sort"

	"github.com/ritzau/cousin-words/pkg/embedding"
	"github.com/ritzau/cousin-words/pkg/etymology"
	"github.com/ritzau/cousin-words/pkg/logging"
)

// VectorLookup returns the embedding for a word
type VectorLookup interface {
	Get(word string) ([]float64, bool)
}

// Options tune candidate selection
type Options struct {
	Language            string
	MaxDepth            int
	ExcludeCommonStarts bool
	SubwordLength       int // 0 disables the substring filter
	UnknownWords        []string
}

// Suggestion pairs a query word with a related word
type Suggestion struct {
	Word     string
	Related  string
	Distance float64
}

// Ranker finds related words through an etymology graph
type Ranker struct {
	graph   *etymology.Graph
	vectors VectorLookup
	opts    Options
	unknown map[string]bool
}

// NewRanker creates a ranker over a built graph and a vector table
func NewRanker(g *etymology.Graph, vectors VectorLookup, opts Options) *Ranker {
	unknown := make(map[string]bool, len(opts.UnknownWords))
	for _, w := range opts.UnknownWords {
		unknown[w] = true
	}
	return &Ranker{
		graph:   g,
		vectors: vectors,
		opts:    opts,
		unknown: unknown,
	}
}

// Related returns the leaf words under word's root origin, minus the word's
// own descendants and ancestors, with trivially related forms removed.
// An unknown word has no related words.
func (r *Ranker) Related(word string) []string {
	node, ok := r.graph.Lookup(word, r.opts.Language)
	if !ok {
		return nil
	}
	root := r.graph.RootOrigin(node, r.opts.MaxDepth)

	excluded := make(map[string]bool)
	for _, w := range r.graph.LeafDescendants(node, r.opts.Language, r.opts.MaxDepth) {
		excluded[w] = true
	}
	for _, w := range r.graph.LeafAncestors(node, r.opts.Language, r.opts.MaxDepth) {
		excluded[w] = true
	}

	var related []string
	for _, candidate := range r.graph.LeafDescendants(root, r.opts.Language, r.opts.MaxDepth) {
		if excluded[candidate] || r.unknown[candidate] {
			continue
		}
		// Root descendants can repeat through duplicate tuples
		excluded[candidate] = true

		if r.trivial(word, candidate) {
			continue
		}
		related = append(related, candidate)
	}
	return related
}

func (r *Ranker) trivial(word, candidate string) bool {
	if HasCommonPrefix(word) && HasCommonPrefix(candidate) {
		return true
	}
	if SharesPrefix(word, candidate) || HasCommonPrefix(candidate) {
		return true
	}
	if r.opts.ExcludeCommonStarts && SharesStart(word, candidate) {
		return true
	}
	return SharesSubword(word, candidate, r.opts.SubwordLength)
}

// Rank scores the related words of every query word and returns them
// ordered from most to least distant.
func (r *Ranker) Rank(ctx context.Context, words []string) ([]Suggestion, error) {
	logger := logging.New("ranking")
	var suggestions []Suggestion
	queried := 0

	for _, word := range words {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if r.unknown[word] || HasCommonPrefix(word) {
			continue
		}
		wordVec, ok := r.vectors.Get(word)
		if !ok {
			continue
		}
		queried++

		for _, related := range r.Related(word) {
			relatedVec, ok := r.vectors.Get(related)
			if !ok {
				continue
			}
			distance, err := embedding.Distance(wordVec, relatedVec)
			if err != nil {
				logger.Debug("Skipping pair", "word", word, "related", related, "error", err)
				continue
			}
			suggestions = append(suggestions, Suggestion{Word: word, Related: related, Distance: distance})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Distance > suggestions[j].Distance
	})

	logger.Info("Ranked suggestions", "queries", queried, "suggestions", len(suggestions))
	return suggestions, nil
}
