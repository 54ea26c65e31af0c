// This file implements the weight-resolution rule shared by the weighted
// shortest-path algorithms (dijkstra, bellmanford).

package core

// weightKey identifies an edge by its ordered (source, target) pair.
type weightKey struct {
	source string
	target string
}

// WeightMap resolves the weight of an adjacency-implied connection
// (u, v): the ordered pair (u, v) is checked first, then (v, u) as the
// undirected fallback, and DefaultWeight applies when neither is stored.
// This lets the weighted algorithms run correctly over both directed and
// undirected adjacency views built from a single edge list.
type WeightMap map[weightKey]float64

// NewWeightMap builds the (source, target) → weight lookup from the
// graph's edge sequence. Later edges over the same ordered pair win,
// which only matters for parallel edges on a KindBase graph.
// Complexity: O(E)
func NewWeightMap(g *Graph) WeightMap {
	m := make(WeightMap, len(g.edges))
	for _, e := range g.edges {
		m[weightKey{e.Source, e.Target}] = e.Weight
	}

	return m
}

// Resolve returns the weight for traversing u→v under the resolution
// rule described on WeightMap.
func (m WeightMap) Resolve(u, v string) float64 {
	if w, ok := m[weightKey{u, v}]; ok {
		return w
	}
	if w, ok := m[weightKey{v, u}]; ok {
		return w
	}

	return DefaultWeight
}
