package etymology

import (
	"fmt"
	"strings"
)

// Lookup finds the node for a word in a language
func (g *Graph) Lookup(word, language string) (*Node, bool) {
	node, ok := g.nodes[Key{Word: word, Language: language}]
	return node, ok
}

// RootOrigin follows origin links upwards and returns the oldest real word.
// It stops when the depth budget runs out, when there is no origin, or when
// the origin is a bound form such as "ab-".
func (g *Graph) RootOrigin(n *Node, maxDepth int) *Node {
	current := n
	for depth := maxDepth; depth > 0 && current != nil; depth-- {
		origin, ok := g.Origin(current)
		if !ok || strings.HasSuffix(origin.Word, BoundaryMarker) {
			return current
		}
		current = origin
	}
	return current
}

// frame is a pending node in an iterative walk
type frame struct {
	node  *Node
	depth int
}

// LeafDescendants collects, pre-order, the words of n and everything below
// it that are leaves in the given language. Walks stop maxDepth levels down.
func (g *Graph) LeafDescendants(n *Node, language string, maxDepth int) []string {
	var words []string
	if n == nil {
		return words
	}

	stack := []frame{{node: n, depth: maxDepth}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.depth <= 0 {
			continue
		}
		if top.node.Language == language && top.node.IsLeaf() {
			words = append(words, top.node.Word)
		}

		// Push in reverse so the first descendant is visited first
		descendants := g.Descendants(top.node)
		for i := len(descendants) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: descendants[i], depth: top.depth - 1})
		}
	}

	return words
}

// LeafAncestors walks the single origin chain upwards from n and collects
// the words that are leaves in the given language.
func (g *Graph) LeafAncestors(n *Node, language string, maxDepth int) []string {
	var words []string
	for _, node := range g.OriginChain(n, maxDepth) {
		if node.Language == language && node.IsLeaf() {
			words = append(words, node.Word)
		}
	}
	return words
}

// OriginChain returns n followed by its ancestors, at most maxDepth nodes
func (g *Graph) OriginChain(n *Node, maxDepth int) []*Node {
	var chain []*Node
	current := n
	for depth := maxDepth; depth > 0 && current != nil; depth-- {
		chain = append(chain, current)
		next, ok := g.Origin(current)
		if !ok {
			break
		}
		current = next
	}
	return chain
}

// RenderTree renders n and its descendants one line per node, two spaces of
// indentation per level, starting at the given indent level.
func (g *Graph) RenderTree(n *Node, maxDepth, indent int, showCounts bool) []string {
	var lines []string
	if n == nil {
		return lines
	}

	type renderFrame struct {
		frame
		level int
	}

	stack := []renderFrame{{frame: frame{node: n, depth: maxDepth}, level: indent}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.depth <= 0 {
			continue
		}
		lines = append(lines, strings.Repeat("  ", top.level)+Describe(top.node, showCounts))

		descendants := g.Descendants(top.node)
		for i := len(descendants) - 1; i >= 0; i-- {
			stack = append(stack, renderFrame{
				frame: frame{node: descendants[i], depth: top.depth - 1},
				level: top.level + 1,
			})
		}
	}

	return lines
}

// Describe formats a node as "lang: word", optionally with its descendant count
func Describe(n *Node, showCounts bool) string {
	if n == nil {
		return ""
	}
	s := fmt.Sprintf("%s: %s", n.Language, n.Word)
	if showCounts {
		s += fmt.Sprintf(", %d descendant(s)", n.DescendantCount())
	}
	return s
}
