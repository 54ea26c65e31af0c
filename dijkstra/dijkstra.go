package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/kirbs-btw/graph-py/core"
)

// ShortestPath runs Dijkstra's algorithm from src to trg and returns the
// minimum-cost path as nodes, source to target inclusive.
//
// Returns (nil, nil) when trg is unreachable and ErrNegativeWeight when a
// negative weight is encountered; see the package documentation for the
// full contract.
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

	// Snapshot the derived views once per call.
	adj := g.Adjacency()
	weights := core.NewWeightMap(g)
	index := nodeIndex(g)

	dist := make(map[string]float64, len(index))
	for id := range index {
		dist[id] = math.Inf(1)
	}
	dist[src.ID] = 0
	prev := make(map[string]string, len(index))

	pq := &frontier{{id: src.ID, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(frontierItem)

		// Stale entry from lazy decrease-key: a better distance was
		// already finalized.
		if item.dist > dist[item.id] {
			continue
		}
		if item.id == trg.ID {
			break
		}

		for _, nbr := range adj[item.id] {
			w := weights.Resolve(item.id, nbr)
			if w < 0 {
				return nil, fmt.Errorf("%w: %s→%s weight=%g", ErrNegativeWeight, item.id, nbr, w)
			}
			candidate := item.dist + w
			if candidate < dist[nbr] {
				dist[nbr] = candidate
				prev[nbr] = item.id
				heap.Push(pq, frontierItem{id: nbr, dist: candidate})
			}
		}
	}

	if math.IsInf(dist[trg.ID], 1) {
		return nil, nil
	}

	return toNodes(index, walkPredecessors(prev, trg.ID)), nil
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
