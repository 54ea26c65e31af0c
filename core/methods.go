// This file implements mutation (AddNode, AddEdge) and lookup
// (GetNode, GetEdge, membership, snapshots) on Graph, plus the
// property accessors on Node.

package core

import (
	"fmt"
	"sort"
)

// AddNode appends n to the graph and assigns its back-reference.
//
// Fails fast with ErrDuplicateNodeID when a node with the same id is
// already present; two distinct nodes are never silently merged.
// Complexity: O(V) for the duplicate check.
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if g.GetNode(n.ID) != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
	}

	n.graph = g
	g.nodes = append(g.nodes, n)

	return nil
}

// AddEdge appends e to the graph.
//
// Both endpoints must already exist (ErrEndpointNotFound); dangling edges
// are refused uniformly rather than filtered later. On an undirected graph
// a second edge over the same unordered pair is refused with ErrEdgeExists,
// checked in both orientations. Base and directed graphs append without
// pair de-duplication: direction makes A→B and B→A distinct, and KindBase
// permits parallel edges.
// Complexity: O(E) for the duplicate and pair checks.
func (g *Graph) AddEdge(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}
	if e.ID == "" {
		return ErrEmptyEdgeID
	}
	if g.GetEdge(e.ID) != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateEdgeID, e.ID)
	}
	if g.GetNode(e.Source) == nil {
		return fmt.Errorf("%w: source %q", ErrEndpointNotFound, e.Source)
	}
	if g.GetNode(e.Target) == nil {
		return fmt.Errorf("%w: target %q", ErrEndpointNotFound, e.Target)
	}
	if g.kind == KindUndirected && g.connectsPair(e.Source, e.Target) {
		return fmt.Errorf("%w: {%q, %q}", ErrEdgeExists, e.Source, e.Target)
	}

	g.edges = append(g.edges, e)

	return nil
}

// connectsPair reports whether any stored edge connects the unordered
// pair {a, b}.
func (g *Graph) connectsPair(a, b string) bool {
	for _, e := range g.edges {
		if (e.Source == a && e.Target == b) || (e.Source == b && e.Target == a) {
			return true
		}
	}

	return false
}

// GetNode returns the first node with the given id in insertion order,
// or nil when absent. A missing node is a valid outcome, not an error.
// Complexity: O(V)
func (g *Graph) GetNode(id string) *Node {
	for _, n := range g.nodes {
		if n.ID == id {
			return n
		}
	}

	return nil
}

// GetEdge returns the first edge with the given id in insertion order,
// or nil when absent.
// Complexity: O(E)
func (g *Graph) GetEdge(id string) *Edge {
	for _, e := range g.edges {
		if e.ID == id {
			return e
		}
	}

	return nil
}

// HasNode reports whether a node with the given id exists.
func (g *Graph) HasNode(id string) bool { return g.GetNode(id) != nil }

// ContainsNode reports whether n itself (pointer identity, not id
// equality) is stored in the graph. Algorithms use this to verify that
// source and target nodes are members of the graph they traverse.
// Complexity: O(V)
func (g *Graph) ContainsNode(n *Node) bool {
	for _, m := range g.nodes {
		if m == n {
			return true
		}
	}

	return false
}

// Nodes returns a copy of the node sequence in insertion order.
// The slice is the caller's; the *Node values are live.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of the edge sequence in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Graph returns the node's non-owning back-reference: the graph it was
// most recently added to, or nil for a detached node.
func (n *Node) Graph() *Graph { return n.graph }

// Property returns the value stored under key, or def when the key is
// absent (or the node carries no properties at all).
func (n *Node) Property(key string, def any) any {
	if v, ok := n.properties[key]; ok {
		return v
	}

	return def
}

// LookupProperty returns the value stored under key and whether it exists.
func (n *Node) LookupProperty(key string) (any, bool) {
	v, ok := n.properties[key]

	return v, ok
}

// SetProperty stores value under key, allocating the property bag on a
// plain node if needed.
func (n *Node) SetProperty(key string, value any) {
	if n.properties == nil {
		n.properties = make(map[string]any, 1)
	}
	n.properties[key] = value
}

// PropertyKeys returns the node's property keys sorted lexicographically,
// or nil for a node without properties.
func (n *Node) PropertyKeys() []string {
	if len(n.properties) == 0 {
		return nil
	}
	keys := make([]string, 0, len(n.properties))
	for k := range n.properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Properties returns a copy of the node's property mapping (nil for a
// plain node).
func (n *Node) Properties() map[string]any {
	if n.properties == nil {
		return nil
	}
	out := make(map[string]any, len(n.properties))
	for k, v := range n.properties {
		out[k] = v
	}

	return out
}
