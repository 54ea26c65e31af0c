// Package core defines the central Graph, Node, and Edge types, derived
// adjacency views, the weight-resolution rule shared by the weighted
// shortest-path algorithms, and the Graph-owned node-search registry.
//
// What
//
//   - Node: identity, optional display name, optional property bag, and a
//     non-owning back-reference to the graph it currently belongs to.
//   - Edge: a value object connecting two node ids with a numeric weight
//     (1.0 unless set explicitly).
//   - Graph: insertion-ordered node and edge sequences plus a GraphKind tag
//     over the closed set {Base, Directed, Undirected} that decides
//     adjacency and edge-insertion semantics.
//   - Derived views: Adjacency, Successors, Predecessors, Neighbors, and the
//     per-node Edges/Neighbors accessors are recomputed from the edge
//     sequence on every access — O(V+E) per call, never cached. Callers in
//     hot loops should snapshot the result once.
//   - WeightMap: the (source,target) → weight lookup with undirected
//     fallback used by dijkstra and bellmanford.
//   - Search registry: named SearchStrategy implementations with one
//     designated default, resolved by SearchNodes.
//
// Invariants
//
//   - Node and edge ids are unique within a graph; AddNode/AddEdge fail fast
//     on duplicates.
//   - AddEdge requires both endpoints to exist (no dangling edges).
//   - An undirected graph stores at most one edge per unordered node pair;
//     AddEdge refuses the second with ErrEdgeExists.
//   - AddNode assigns the node's back-reference to the receiving graph; the
//     node reports that graph until it is re-added elsewhere. Clones are
//     detached (nil back-reference) until inserted into a graph.
//
// Concurrency
//
//	None. A Graph assumes exclusive, sequential access by one caller at a
//	time; concurrent mutation is undefined behavior and must be synchronized
//	externally by the host application.
//
// Errors
//
//	ErrNilNode, ErrEmptyNodeID, ErrDuplicateNodeID   — node insertion
//	ErrNilEdge, ErrEmptyEdgeID, ErrDuplicateEdgeID   — edge insertion
//	ErrEndpointNotFound                              — dangling edge refused
//	ErrEdgeExists                                    — undirected pair duplicate
//	ErrDetachedNode                                  — node view without a graph
//	ErrNilStrategy, ErrEmptyStrategyKey              — registry insertion
//	ErrUnknownStrategy, ErrNoStrategies              — strategy resolution
//
// Absent results are not errors: GetNode/GetEdge return nil for a missing
// id, and a search with no matching nodes returns an empty result slice.
package core
