// Package dijkstra implements Dijkstra's shortest-path algorithm between
// two member nodes of a core.Graph with non-negative edge weights.
//
// What
//
//   - Maintain a min-heap frontier keyed by tentative distance, a distance
//     map initialized to +Inf except the source (0), and a predecessor map
//     for path reconstruction.
//   - Lazy decrease-key: duplicates are pushed and stale entries skipped
//     on pop. Heap ties are broken by heap order and are not semantically
//     significant.
//   - Edge weights are resolved through core.WeightMap: the ordered pair
//     (u, v) first, then (v, u) as the undirected fallback, defaulting to
//     1.0 — so the algorithm runs correctly over both directed and
//     undirected adjacency views built from a single edge list.
//   - A negative weight encountered during relaxation aborts immediately
//     with ErrNegativeWeight; the algorithm never produces a
//     wrong-but-plausible answer. Use bellmanford for negative weights.
//   - The search stops early once the target is popped.
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
//	(nil, nil), never an error — distinct from the failure conditions.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O((V + E) log V) with the binary-heap frontier.
//   - Memory: O(V + E) for the maps and the lazily grown heap.
//
// Errors
//
//   - ErrNilGraph        if the graph pointer is nil.
//   - ErrNilNode         if the source or target node is nil.
//   - ErrNotMember       if either node is not a member of the graph.
//   - ErrNegativeWeight  if a negative edge weight is encountered.
package dijkstra
