package bellmanford

import "errors"

// Sentinel errors for Bellman-Ford execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrNilNode is returned if the source or target node is nil.
	ErrNilNode = errors.New("bellmanford: source or target node is nil")

	// ErrNotMember is returned when the source or target node is not a
	// member of the graph (membership is pointer identity, not id equality).
	ErrNotMember = errors.New("bellmanford: node is not a member of the graph")

	// ErrNegativeCycle is returned when a negative-weight cycle is
	// detected; no finite shortest path exists. Distinct from the
	// (nil, nil) no-path outcome by contract.
	ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle detected")
)

// relaxEdge is one adjacency-expanded edge with its resolved weight.
type relaxEdge struct {
	source string
	target string
	weight float64
}
