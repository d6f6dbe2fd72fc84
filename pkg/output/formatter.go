package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/ritzau/cousin-words/pkg/cycles"
	"github.com/ritzau/cousin-words/pkg/etymology"
	"github.com/ritzau/cousin-words/pkg/ranking"
)

// UnknownWord is printed when a word/language pair is not in the graph
const UnknownWord = "Unknown word/language"

// PrintSuggestions prints "word <-> related - distance" lines, most distant first.
// A positive limit keeps only the first limit lines.
func PrintSuggestions(w io.Writer, suggestions []ranking.Suggestion, limit int) {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	for _, s := range suggestions {
		bold.Fprint(w, s.Word)
		fmt.Fprint(w, " <-> ")
		cyan.Fprint(w, s.Related)
		fmt.Fprintf(w, " - %v\n", s.Distance)
	}
}

// PrintWordInfo prints the origin chain of node and the descendant tree of
// its root origin. A nil node prints UnknownWord.
func PrintWordInfo(w io.Writer, g *etymology.Graph, node *etymology.Node, maxDepth int, showCounts bool) {
	bold := color.New(color.Bold)
	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)

	if node == nil {
		yellow.Fprintln(w, UnknownWord)
		return
	}

	bold.Fprintf(w, "origin of %s\n", etymology.Describe(node, false))
	for i, ancestor := range g.OriginChain(node, maxDepth) {
		fmt.Fprintf(w, "%*s%s\n", 2*i, "", etymology.Describe(ancestor, showCounts))
	}
	fmt.Fprintln(w)

	// The queried word is highlighted inside its root's tree
	highlight := etymology.Describe(node, showCounts)
	root := g.RootOrigin(node, maxDepth)
	bold.Fprintf(w, "tree for %s\n", etymology.Describe(root, false))
	for _, line := range g.RenderTree(root, maxDepth, 0, showCounts) {
		if strings.TrimLeft(line, " ") == highlight {
			green.Fprintln(w, line)
			continue
		}
		fmt.Fprintln(w, line)
	}
}

// PrintCycleReport lists origin cycles found in the etymology data
func PrintCycleReport(w io.Writer, report cycles.Report) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)

	bold.Fprintln(w, "Origin Cycles")
	bold.Fprintln(w, "=============")

	if len(report.Cycles) == 0 && len(report.SelfReferences) == 0 {
		green.Fprintln(w, "✓ No origin cycles")
		return
	}

	red.Fprintf(w, "%d cycle(s), %d self reference(s)\n", len(report.Cycles), len(report.SelfReferences))
	for _, cycle := range report.Cycles {
		for i, word := range cycle.Words() {
			if i > 0 {
				fmt.Fprint(w, " -> ")
			} else {
				fmt.Fprint(w, "  ")
			}
			fmt.Fprint(w, word)
		}
		fmt.Fprintln(w)
	}
	for _, n := range report.SelfReferences {
		fmt.Fprintf(w, "  %s (self)\n", etymology.Describe(n, false))
	}
}
