package dfs

import "errors"

// Sentinel errors for DFS preconditions.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("dfs: graph is nil")

	// ErrNilNode is returned if the source or target node is nil.
	ErrNilNode = errors.New("dfs: source or target node is nil")

	// ErrNotMember is returned when the source or target node is not a
	// member of the graph (membership is pointer identity, not id equality).
	ErrNotMember = errors.New("dfs: node is not a member of the graph")
)
