package dfs

import (
	"fmt"

	"github.com/kirbs-btw/graph-py/core"
)

// stackItem pairs a node id with the path that reached it.
type stackItem struct {
	id   string
	path []string
}

// Path runs depth-first search from src to trg and returns the first path
// found, source to target inclusive. The path is not guaranteed to be
// shortest.
//
// Returns (nil, nil) when trg is unreachable; see the package
// documentation for preconditions and complexity.
func Path(g *core.Graph, src, trg *core.Node) ([]*core.Node, error) {
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

	adj := g.Adjacency()
	index := nodeIndex(g)

	visited := make(map[string]bool, g.NodeCount())
	stack := []stackItem{{id: src.ID, path: []string{src.ID}}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Visited is marked on pop; a node may sit on the stack several
		// times but is expanded only once.
		if visited[item.id] {
			continue
		}
		visited[item.id] = true

		if item.id == trg.ID {
			return toNodes(index, item.path), nil
		}

		// Reverse order so the first adjacency entry is popped first,
		// matching a recursive left-to-right DFS.
		nbrs := adj[item.id]
		for i := len(nbrs) - 1; i >= 0; i-- {
			if visited[nbrs[i]] {
				continue
			}
			stack = append(stack, stackItem{id: nbrs[i], path: extend(item.path, nbrs[i])})
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
