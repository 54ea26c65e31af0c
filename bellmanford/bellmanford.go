package bellmanford

import (
	"fmt"
	"math"

	"github.com/kirbs-btw/graph-py/core"
)

// ShortestPath runs Bellman-Ford from src to trg and returns the
// minimum-cost path as nodes, source to target inclusive. Negative edge
// weights are allowed; a negative-weight cycle fails with
// ErrNegativeCycle.
//
// Returns (nil, nil) when trg is unreachable; see the package
// documentation for the full contract.
func ShortestPath(g *core.Graph, src, trg *core.Node) ([]*core.Node, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if src == nil || trg == nil {
		return nil, ErrNilNode
	}
	if !g.ContainsNode(src) {
		return nil, fmt.Errorf("%w: source %q", ErrNotMember, src.ID)
	}
	if !g.ContainsNode(trg) {
		return nil, fmt.Errorf("%w: target %q", ErrNotMember, trg.ID)
	}
	if src.ID == trg.ID {
		return []*core.Node{src}, nil
	}

	index := nodeIndex(g)
	edges := expandEdges(g)

	dist := make(map[string]float64, len(index))
	for id := range index {
		dist[id] = math.Inf(1)
	}
	dist[src.ID] = 0
	prev := make(map[string]string, len(index))

	// Up to |V|-1 relaxation passes, stopping early once a pass settles.
	for pass := 0; pass < g.NodeCount()-1; pass++ {
		updated := false
		for _, e := range edges {
			if math.IsInf(dist[e.source], 1) {
				continue
			}
			candidate := dist[e.source] + e.weight
			if candidate < dist[e.target] {
				dist[e.target] = candidate
				prev[e.target] = e.source
				updated = true
			}
		}
		if !updated {
			break
		}
	}

	// Verification pass: any remaining improvement proves a negative cycle.
	for _, e := range edges {
		if math.IsInf(dist[e.source], 1) {
			continue
		}
		if dist[e.source]+e.weight < dist[e.target] {
			return nil, fmt.Errorf("%w: via %s→%s", ErrNegativeCycle, e.source, e.target)
		}
	}

	if math.IsInf(dist[trg.ID], 1) {
		return nil, nil
	}

	return toNodes(index, walkPredecessors(prev, trg.ID)), nil
}

// expandEdges flattens the adjacency view into relaxation triples with
// resolved weights, iterating nodes in insertion order for determinism.
func expandEdges(g *core.Graph) []relaxEdge {
	adj := g.Adjacency()
	weights := core.NewWeightMap(g)

	var out []relaxEdge
	for _, n := range g.Nodes() {
		for _, t := range adj[n.ID] {
			out = append(out, relaxEdge{
				source: n.ID,
				target: t,
				weight: weights.Resolve(n.ID, t),
			})
		}
	}

	return out
}

// walkPredecessors reconstructs the id path by walking prev from trg back
// to the source and reversing.
func walkPredecessors(prev map[string]string, trg string) []string {
	path := []string{trg}
	for cur := trg; ; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeIndex builds the id → node lookup used for path reconstruction.
func nodeIndex(g *core.Graph) map[string]*core.Node {
	nodes := g.Nodes()
	index := make(map[string]*core.Node, len(nodes))
	for _, n := range nodes {
		index[n.ID] = n
	}

	return index
}

// toNodes materializes an id path into node references.
func toNodes(index map[string]*core.Node, ids []string) []*core.Node {
	out := make([]*core.Node, len(ids))
	for i, id := range ids {
		out[i] = index[id]
	}

	return out
}
