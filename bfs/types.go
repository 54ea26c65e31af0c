package bfs

import "errors"

// Sentinel errors for BFS preconditions.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrNilNode is returned if the source or target node is nil.
	ErrNilNode = errors.New("bfs: source or target node is nil")

	// ErrNotMember is returned when the source or target node is not a
	// member of the graph (membership is pointer identity, not id equality).
	ErrNotMember = errors.New("bfs: node is not a member of the graph")
)
