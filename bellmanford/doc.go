// Package bellmanford implements the Bellman-Ford shortest-path algorithm
// between two member nodes of a core.Graph. Unlike dijkstra it tolerates
// negative edge weights and detects negative-weight cycles.
//
// What
//
//   - Expand the adjacency view into (source, target, weight) triples,
//     resolving each weight through core.WeightMap ((u,v) first, then
//     (v,u) as the undirected fallback, defaulting to 1.0).
//   - Perform up to |V|−1 relaxation passes over every expanded edge,
//     stopping early when a pass makes no update.
//   - One additional verification pass follows: if any edge still offers
//     a strictly shorter distance, the graph contains a negative-weight
//     cycle and the call fails with ErrNegativeCycle. This is a
//     correctness signal distinct from "no path" — the two are never
//     conflated.
//   - Path reconstruction walks the predecessor map from target to source
//     and reverses, exactly as in dijkstra.
//
// Preconditions
//
//	Source and target must be members of the same graph instance, checked
//	by pointer identity. When source and target are the same node the
//	single-node path is returned without traversing.
//
// No path
//
//	An unreachable target is a valid absent result: ShortestPath returns
//	(nil, nil), never an error.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V·E) relaxation work.
//   - Memory: O(V + E) for the maps and the expanded edge list.
//
// Errors
//
//   - ErrNilGraph       if the graph pointer is nil.
//   - ErrNilNode        if the source or target node is nil.
//   - ErrNotMember      if either node is not a member of the graph.
//   - ErrNegativeCycle  if a negative-weight cycle is detected.
package bellmanford
