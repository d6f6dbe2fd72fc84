package etymology

import (
	"log/slog"

	"github.com/ritzau/cousin-words/pkg/logging"
)

// BoundaryMarker marks bound morphemes such as "un-" or "-ness"
const BoundaryMarker = "-"

// DefaultMaxDepth bounds every walk over the graph. Origin chains in the
// data can loop, and the bound is the only thing that stops them.
const DefaultMaxDepth = 20

// Key identifies a node: the same spelling in two languages is two nodes
type Key struct {
	Word     string
	Language string
}

// Node is one word in one language. Links to other nodes are stored as keys
// and resolved through the owning Graph.
type Node struct {
	Word     string
	Language string

	id          int64
	origin      Key
	hasOrigin   bool
	descendants []Key
}

// Key returns the node's identity in the graph
func (n *Node) Key() Key {
	return Key{Word: n.Word, Language: n.Language}
}

// ID is the node's position in build order
func (n *Node) ID() int64 {
	return n.id
}

// IsLeaf reports whether nothing is recorded as descending from this word
func (n *Node) IsLeaf() bool {
	return len(n.descendants) == 0
}

// OriginKey returns the key of the word this one derives from, if any
func (n *Node) OriginKey() (Key, bool) {
	return n.origin, n.hasOrigin
}

// DescendantCount counts recorded descendants, repeats included
func (n *Node) DescendantCount() int {
	return len(n.descendants)
}

func (n *Node) removeDescendant(key Key) {
	kept := n.descendants[:0]
	for _, d := range n.descendants {
		if d != key {
			kept = append(kept, d)
		}
	}
	n.descendants = kept
}

// Graph owns every node, keyed by (word, language)
type Graph struct {
	nodes map[Key]*Node
	order []*Node
}

// NewGraph creates an empty etymology graph
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[Key]*Node),
		order: make([]*Node, 0),
	}
}

// Build creates a graph from tuples in input order
func Build(tuples []Tuple) *Graph {
	logger := log()
	g := NewGraph()

	step := len(tuples) / 10
	for i, t := range tuples {
		if step > 0 && i%step == 0 {
			logger.Info("Building graph...", "percent", i*100/len(tuples))
		}
		g.Add(t)
	}

	logger.Info("Graph built", "nodes", g.Len(), "tuples", len(tuples))
	return g
}

// Add records that t.Word derives from t.OriginWord. A later tuple for the
// same word and language replaces the earlier origin, and the word is moved
// out of the previous origin's descendants.
func (g *Graph) Add(t Tuple) {
	node := g.getOrCreate(Key{Word: t.Word, Language: t.Language})
	origin := g.getOrCreate(Key{Word: t.OriginWord, Language: t.OriginLanguage})

	if node.hasOrigin && node.origin != origin.Key() {
		if previous, ok := g.nodes[node.origin]; ok {
			previous.removeDescendant(node.Key())
		}
	}

	// Repeated tuples repeat the descendant entry
	origin.descendants = append(origin.descendants, node.Key())
	node.origin = origin.Key()
	node.hasOrigin = true
}

func (g *Graph) getOrCreate(key Key) *Node {
	if node, exists := g.nodes[key]; exists {
		return node
	}

	node := &Node{
		Word:     key.Word,
		Language: key.Language,
		id:       int64(len(g.order)),
	}
	g.nodes[key] = node
	g.order = append(g.order, node)
	return node
}

// Len returns the number of nodes
func (g *Graph) Len() int {
	return len(g.order)
}

// Nodes returns all nodes in the order they were first seen
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.order))
	copy(nodes, g.order)
	return nodes
}

// NodeByID returns the node with the given build-order ID
func (g *Graph) NodeByID(id int64) *Node {
	if id < 0 || id >= int64(len(g.order)) {
		return nil
	}
	return g.order[id]
}

// Origin resolves the node's origin link
func (g *Graph) Origin(n *Node) (*Node, bool) {
	if n == nil || !n.hasOrigin {
		return nil, false
	}
	origin, ok := g.nodes[n.origin]
	return origin, ok
}

// Descendants resolves the node's descendants in insertion order
func (g *Graph) Descendants(n *Node) []*Node {
	if n == nil {
		return nil
	}
	descendants := make([]*Node, 0, len(n.descendants))
	for _, key := range n.descendants {
		if d, ok := g.nodes[key]; ok {
			descendants = append(descendants, d)
		}
	}
	return descendants
}

func log() *slog.Logger {
	return logging.New("etymology")
}
