package setops

import (
	"errors"
	"fmt"

	"github.com/kirbs-btw/graph-py/core"
)

// ErrNilGraph is returned if either operand is nil.
var ErrNilGraph = errors.New("setops: graph is nil")

// Union returns a new graph containing every node and edge from both
// operands, de-duplicated by id (first occurrence wins, a before b).
// Edges are kept only when both endpoints survived node collection.
func Union(a, b *core.Graph) (*core.Graph, error) {
	if a == nil || b == nil {
		return nil, ErrNilGraph
	}

	out := newResult(a, b, "union", "Union")

	seenNodes := make(map[string]bool, a.NodeCount()+b.NodeCount())
	for _, n := range append(a.Nodes(), b.Nodes()...) {
		if seenNodes[n.ID] {
			continue
		}
		seenNodes[n.ID] = true
		if err := out.AddNode(n.Clone()); err != nil {
			return nil, err
		}
	}

	seenEdges := make(map[string]bool, a.EdgeCount()+b.EdgeCount())
	for _, e := range append(a.Edges(), b.Edges()...) {
		if seenEdges[e.ID] {
			continue
		}
		seenEdges[e.ID] = true
		if err := addEdge(out, e); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Intersection returns a new graph with the nodes whose ids appear in
// both operands and the edges whose ids appear in both, restricted to the
// shared node set. Clones are taken from operand a, in a's insertion
// order.
func Intersection(a, b *core.Graph) (*core.Graph, error) {
	if a == nil || b == nil {
		return nil, ErrNilGraph
	}

	out := newResult(a, b, "intersection", "Intersection")

	for _, n := range a.Nodes() {
		if !b.HasNode(n.ID) {
			continue
		}
		if err := out.AddNode(n.Clone()); err != nil {
			return nil, err
		}
	}

	for _, e := range a.Edges() {
		if b.GetEdge(e.ID) == nil {
			continue
		}
		if err := addEdge(out, e); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// newResult constructs the empty result graph with merged kind and
// synthesized identity.
func newResult(a, b *core.Graph, op, label string) *core.Graph {
	id := fmt.Sprintf("%s_%s_%s", a.ID, op, b.ID)
	name := fmt.Sprintf("%s(%s, %s)", label, displayName(a), displayName(b))

	return core.NewGraph(id,
		core.WithKind(core.MergeKinds(a.Kind(), b.Kind())),
		core.WithGraphName(name),
	)
}

// addEdge clones e into out, dropping edges with missing endpoints and
// undirected pair duplicates silently; all other refusals propagate.
func addEdge(out *core.Graph, e *core.Edge) error {
	if !out.HasNode(e.Source) || !out.HasNode(e.Target) {
		return nil
	}
	if err := out.AddEdge(e.Clone()); err != nil {
		if errors.Is(err, core.ErrEdgeExists) {
			return nil
		}

		return err
	}

	return nil
}

// displayName prefers the graph's name over its id for synthesized labels.
func displayName(g *core.Graph) string {
	if g.Name != "" {
		return g.Name
	}

	return g.ID
}
