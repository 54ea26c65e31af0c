package bfs

import (
	"fmt"

	"github.com/kirbs-btw/graph-py/core"
)

// queueItem pairs a node id with the path that discovered it.
type queueItem struct {
	id   string
	path []string
}

// ShortestPath runs breadth-first search from src to trg and returns the
// minimum-hop path as nodes, source to target inclusive.
//
// Returns (nil, nil) when trg is unreachable; see the package
// documentation for preconditions and complexity.
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

	// Snapshot the derived views once; they are rebuilt on every access.
	adj := g.Adjacency()
	index := nodeIndex(g)

	visited := map[string]bool{src.ID: true}
	queue := []queueItem{{id: src.ID, path: []string{src.ID}}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if item.id == trg.ID {
			return toNodes(index, item.path), nil
		}

		for _, nbr := range adj[item.id] {
			if visited[nbr] {
				continue
			}
			// visited is marked on enqueue so each node enters the queue
			// at most once.
			visited[nbr] = true
			queue = append(queue, queueItem{id: nbr, path: extend(item.path, nbr)})
		}
	}

	return nil, nil
}

// extend returns a fresh path slice ending in id.
func extend(path []string, id string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = id

	return out
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
