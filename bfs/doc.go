// Package bfs provides breadth-first search over a core.Graph, returning
// the minimum-hop path between two member nodes.
//
// What
//
//   - Explore the adjacency view level by level with a FIFO queue of
//     (node id, path-so-far) items.
//   - Nodes are marked visited on enqueue, not on dequeue, so each node is
//     enqueued at most once.
//   - The first path discovered to the target is returned; because
//     exploration is level order, it is shortest in edge count. BFS
//     ignores weights entirely.
//
// Preconditions
//
//	Source and target must be members of the same graph instance,
//	checked by pointer identity (core.Graph.ContainsNode), not just id
//	equality. When source and target are the same node the single-node
//	path is returned without traversing.
//
// No path
//
//	An unreachable target is a valid absent result: ShortestPath returns
//	(nil, nil), never an error.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E) queue work, plus O(V) per enqueue for path copies.
//   - Memory: O(V²) worst case for the stored paths.
//
// Errors
//
//   - ErrNilGraph   if the graph pointer is nil.
//   - ErrNilNode    if the source or target node is nil.
//   - ErrNotMember  if either node is not a member of the graph.
package bfs
