// Package dfs provides depth-first search over a core.Graph, returning
// some path between two member nodes.
//
// What
//
//   - Explore the adjacency view with a LIFO stack of (node id,
//     path-so-far) items.
//   - Nodes are marked visited on pop, not on push; neighbors are pushed
//     in reverse adjacency order so the traversal matches a recursive
//     left-to-right DFS.
//   - The first path found to the target is returned. DFS does not
//     guarantee a shortest path, only *some* path — use bfs for
//     minimum-hop paths.
//
// Preconditions
//
//	Source and target must be members of the same graph instance, checked
//	by pointer identity. When source and target are the same node the
//	single-node path is returned without traversing.
//
// No path
//
//	An unreachable target is a valid absent result: Path returns
//	(nil, nil), never an error.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E) stack work, plus O(V) per push for path copies.
//   - Memory: O(V²) worst case for the stored paths.
//
// Errors
//
//   - ErrNilGraph   if the graph pointer is nil.
//   - ErrNilNode    if the source or target node is nil.
//   - ErrNotMember  if either node is not a member of the graph.
package dfs
