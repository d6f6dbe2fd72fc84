package cycles

import (
	"sort"

	"github.com/ritzau/cousin-words/pkg/etymology"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// OriginCycle is a set of words whose origin links lead back to each other
type OriginCycle struct {
	Nodes []*etymology.Node // ordered by node ID
}

// Report summarises loops in the origin links of an etymology graph
type Report struct {
	Cycles         []OriginCycle
	SelfReferences []*etymology.Node // words recorded as their own origin
}

// FindOriginCycles projects origin links onto a directed graph (word ->
// origin) and returns its strongly connected components. Every node has at
// most one outgoing edge, so each component is a single loop.
func FindOriginCycles(g *etymology.Graph) Report {
	var report Report

	dg := simple.NewDirectedGraph()
	nodes := g.Nodes()
	for _, n := range nodes {
		dg.AddNode(simple.Node(n.ID()))
	}

	for _, n := range nodes {
		origin, ok := g.Origin(n)
		if !ok {
			continue
		}
		// gonum's simple graphs do not allow self edges
		if origin.ID() == n.ID() {
			report.SelfReferences = append(report.SelfReferences, n)
			continue
		}
		if !dg.HasEdgeFromTo(n.ID(), origin.ID()) {
			dg.SetEdge(dg.NewEdge(dg.Node(n.ID()), dg.Node(origin.ID())))
		}
	}

	for _, scc := range topo.TarjanSCC(dg) {
		if len(scc) < 2 {
			continue
		}

		cycle := OriginCycle{Nodes: make([]*etymology.Node, 0, len(scc))}
		for _, member := range scc {
			if node := g.NodeByID(member.ID()); node != nil {
				cycle.Nodes = append(cycle.Nodes, node)
			}
		}
		sort.Slice(cycle.Nodes, func(i, j int) bool {
			return cycle.Nodes[i].ID() < cycle.Nodes[j].ID()
		})
		report.Cycles = append(report.Cycles, cycle)
	}

	// TarjanSCC order depends on map iteration
	sort.Slice(report.Cycles, func(i, j int) bool {
		return report.Cycles[i].Nodes[0].ID() < report.Cycles[j].Nodes[0].ID()
	})

	return report
}

// Words returns the "lang: word" descriptions of the cycle's members
func (c OriginCycle) Words() []string {
	words := make([]string, 0, len(c.Nodes))
	for _, n := range c.Nodes {
		words = append(words, etymology.Describe(n, false))
	}
	return words
}
