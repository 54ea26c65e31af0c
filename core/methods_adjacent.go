// This file implements the derived adjacency views: Graph.Adjacency,
// the directed/undirected query surface (Successors, Predecessors,
// Neighbors), and the per-node Edges/Neighbors accessors.
//
// Every view is rebuilt from the edge sequence on each call; nothing is
// cached, so there are no invalidation rules to get wrong. Callers in hot
// loops should snapshot Adjacency() once per run.

package core

// Adjacency builds a mapping from every node id to the ordered sequence
// of reachable neighbor ids.
//
// Semantics per kind:
//   - KindBase:       every edge contributes both directions.
//   - KindDirected:   only source→target is followed.
//   - KindUndirected: symmetric, as KindBase (the pair invariant makes
//     each connection appear exactly once per direction).
//
// Neighbor order follows edge insertion order, so two consecutive calls
// on an unmodified graph return equal mappings.
// Complexity: O(V+E) per call.
func (g *Graph) Adjacency() map[string][]string {
	adj := make(map[string][]string, len(g.nodes))
	for _, n := range g.nodes {
		adj[n.ID] = nil
	}
	for _, e := range g.edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
		if g.kind != KindDirected {
			adj[e.Target] = append(adj[e.Target], e.Source)
		}
	}

	return adj
}

// Successors returns the nodes reachable from id by outgoing edges
// (edges whose Source is id), de-duplicated, in node insertion order.
// This is the natural query surface for directed graphs.
// Complexity: O(V+E)
func (g *Graph) Successors(id string) []*Node {
	ids := make(map[string]struct{})
	for _, e := range g.edges {
		if e.Source == id {
			ids[e.Target] = struct{}{}
		}
	}

	return g.collectNodes(ids)
}

// Predecessors returns the nodes with edges incoming to id (edges whose
// Target is id), de-duplicated, in node insertion order.
// Complexity: O(V+E)
func (g *Graph) Predecessors(id string) []*Node {
	ids := make(map[string]struct{})
	for _, e := range g.edges {
		if e.Target == id {
			ids[e.Source] = struct{}{}
		}
	}

	return g.collectNodes(ids)
}

// Neighbors returns all nodes connected to id by an edge in either
// orientation, de-duplicated, in node insertion order. This is the
// natural query surface for undirected graphs.
// Complexity: O(V+E)
func (g *Graph) Neighbors(id string) []*Node {
	ids := make(map[string]struct{})
	for _, e := range g.edges {
		switch id {
		case e.Source:
			ids[e.Target] = struct{}{}
		case e.Target:
			ids[e.Source] = struct{}{}
		}
	}

	return g.collectNodes(ids)
}

// collectNodes maps an id set back to nodes, preserving insertion order.
func (g *Graph) collectNodes(ids map[string]struct{}) []*Node {
	out := make([]*Node, 0, len(ids))
	for _, n := range g.nodes {
		if _, ok := ids[n.ID]; ok {
			out = append(out, n)
		}
	}

	return out
}

// Edges returns the edges incident to n (its id appears as Source or
// Target), derived from the owning graph's edge sequence.
// Returns ErrDetachedNode when n does not belong to a graph.
// Complexity: O(E)
func (n *Node) Edges() ([]*Edge, error) {
	if n.graph == nil {
		return nil, ErrDetachedNode
	}
	var out []*Edge
	for _, e := range n.graph.edges {
		if e.Source == n.ID || e.Target == n.ID {
			out = append(out, e)
		}
	}

	return out, nil
}

// Neighbors returns the nodes connected to n by any incident edge,
// derived from the owning graph.
// Returns ErrDetachedNode when n does not belong to a graph.
// Complexity: O(V+E)
func (n *Node) Neighbors() ([]*Node, error) {
	if n.graph == nil {
		return nil, ErrDetachedNode
	}

	return n.graph.Neighbors(n.ID), nil
}
