// Package graphpy is a small in-memory graph library: a node/edge data
// model with directed and undirected variants, a pluggable node-search
// subsystem, classical traversals and shortest paths, and graph-level
// set operations.
//
// What you get:
//
//   - Core primitives: Graph, Node, Edge with insertion-ordered storage,
//     derived adjacency views, and a tagged Base/Directed/Undirected kind
//   - Node search: a Graph-owned strategy registry with a regexp-based
//     pattern strategy and reserved extension points
//   - Traversals: BFS (minimum-hop paths), DFS (some path)
//   - Shortest paths: Dijkstra (non-negative weights), Bellman-Ford
//     (negative weights, negative-cycle detection)
//   - Set operations: Union and Intersection producing fresh graphs
//
// Everything is organized under focused subpackages:
//
//	core/        — Graph, Node, Edge types, adjacency views, search registry
//	search/      — concrete node-search strategies
//	bfs/         — breadth-first shortest (hop-count) paths
//	dfs/         — depth-first path discovery
//	dijkstra/    — weighted shortest paths, non-negative weights
//	bellmanford/ — weighted shortest paths with negative-weight support
//	setops/      — graph union and intersection
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    5     1
//	    │     │
//	    └─────C
//
//	g := core.NewGraph("g")
//	for _, id := range []string{"A", "B", "C"} {
//	    _ = g.AddNode(core.NewNode(id))
//	}
//	_ = g.AddEdge(core.NewEdge("ab", "A", "B"))
//	_ = g.AddEdge(core.NewEdge("bc", "B", "C"))
//	_ = g.AddEdge(core.NewEdge("ac", "A", "C", core.WithWeight(5)))
//
//	path, _ := dijkstra.ShortestPath(g, g.GetNode("A"), g.GetNode("C"))
//	// path: [A B C], total cost 2
//
// The library is single-threaded, in-memory, and synchronous: a Graph
// assumes exclusive sequential access by one caller at a time.
//
//	go get github.com/kirbs-btw/graph-py
package graphpy
