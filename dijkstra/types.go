package dijkstra

import "errors"

// Sentinel errors for Dijkstra execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilNode is returned if the source or target node is nil.
	ErrNilNode = errors.New("dijkstra: source or target node is nil")

	// ErrNotMember is returned when the source or target node is not a
	// member of the graph (membership is pointer identity, not id equality).
	ErrNotMember = errors.New("dijkstra: node is not a member of the graph")

	// ErrNegativeWeight is returned when a negative edge weight is
	// encountered during relaxation; Dijkstra requires non-negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// frontierItem is one heap entry: a node id with its tentative distance.
type frontierItem struct {
	id   string
	dist float64
}

// frontier is a min-heap over tentative distances implementing
// container/heap. Ties keep heap order, which is not semantically
// significant.
type frontier []frontierItem

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
