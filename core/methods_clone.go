// This file implements value cloning for Node and Edge, used by the
// set-operation combinators to populate freshly constructed graphs.

package core

// Clone returns a deep value copy of the node with its back-reference
// cleared. The property bag is copied key by key; property values are
// shared (they are opaque to the library). The clone is detached until
// added to a graph.
func (n *Node) Clone() *Node {
	out := &Node{ID: n.ID, Name: n.Name}
	if n.properties != nil {
		out.properties = make(map[string]any, len(n.properties))
		for k, v := range n.properties {
			out.properties[k] = v
		}
	}

	return out
}

// Clone returns a copy of the edge. Edges are plain value objects, so a
// struct copy suffices.
func (e *Edge) Clone() *Edge {
	out := *e

	return &out
}
