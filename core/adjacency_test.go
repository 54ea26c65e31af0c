package core_test

import (
	"testing"

	"github.com/kirbs-btw/graph-py/core"
	"github.com/stretchr/testify/require"
)

// triangle builds a graph of the requested kind with nodes a,b,c and
// edges a→b, b→c.
func triangle(t *testing.T, g *core.Graph) *core.Graph {
	t.Helper()
	buildGraph(t, g, []string{"a", "b", "c"}, []*core.Edge{
		core.NewEdge("ab", "a", "b"),
		core.NewEdge("bc", "b", "c"),
	})

	return g
}

func TestAdjacency_Base_Bidirectional(t *testing.T) {
	g := triangle(t, core.NewGraph("g"))

	adj := g.Adjacency()
	require.Equal(t, []string{"b"}, adj["a"])
	require.Equal(t, []string{"a", "c"}, adj["b"])
	require.Equal(t, []string{"b"}, adj["c"])
}

func TestAdjacency_Directed_FollowsDirection(t *testing.T) {
	g := triangle(t, core.NewDirectedGraph("g"))

	adj := g.Adjacency()
	require.Equal(t, []string{"b"}, adj["a"])
	require.Equal(t, []string{"c"}, adj["b"])
	require.Empty(t, adj["c"])
}

func TestAdjacency_Undirected_Symmetric(t *testing.T) {
	g := triangle(t, core.NewUndirectedGraph("g"))

	adj := g.Adjacency()
	require.Equal(t, []string{"b"}, adj["a"])
	require.Equal(t, []string{"a", "c"}, adj["b"])
	require.Equal(t, []string{"b"}, adj["c"])
}

func TestAdjacency_EveryNodeHasAnEntry(t *testing.T) {
	g := core.NewGraph("g")
	buildGraph(t, g, []string{"a", "isolated"}, nil)

	adj := g.Adjacency()
	require.Contains(t, adj, "a")
	require.Contains(t, adj, "isolated")
}

func TestAdjacency_IdempotentOnUnmodifiedGraph(t *testing.T) {
	g := triangle(t, core.NewDirectedGraph("g"))

	require.Equal(t, g.Adjacency(), g.Adjacency())
}

func TestSuccessorsPredecessors(t *testing.T) {
	g := core.NewDirectedGraph("g")
	buildGraph(t, g, []string{"a", "b", "c"}, []*core.Edge{
		core.NewEdge("ab", "a", "b"),
		core.NewEdge("ac", "a", "c"),
		core.NewEdge("cb", "c", "b"),
	})

	succ := g.Successors("a")
	require.Len(t, succ, 2)
	require.Equal(t, "b", succ[0].ID)
	require.Equal(t, "c", succ[1].ID)

	pred := g.Predecessors("b")
	require.Len(t, pred, 2)
	require.Equal(t, "a", pred[0].ID)
	require.Equal(t, "c", pred[1].ID)

	require.Empty(t, g.Predecessors("a"))
}

func TestNeighbors_BothOrientations(t *testing.T) {
	g := core.NewUndirectedGraph("g")
	buildGraph(t, g, []string{"a", "b", "c"}, []*core.Edge{
		core.NewEdge("ab", "a", "b"),
		core.NewEdge("ca", "c", "a"),
	})

	nbrs := g.Neighbors("a")
	require.Len(t, nbrs, 2)
	require.Equal(t, "b", nbrs[0].ID)
	require.Equal(t, "c", nbrs[1].ID)
}

func TestNodeEdges_DerivedView(t *testing.T) {
	g := triangle(t, core.NewGraph("g"))

	edges, err := g.GetNode("b").Edges()
	require.NoError(t, err)
	require.Len(t, edges, 2)
	require.Equal(t, "ab", edges[0].ID)
	require.Equal(t, "bc", edges[1].ID)
}

func TestNodeNeighbors_DerivedView(t *testing.T) {
	g := triangle(t, core.NewGraph("g"))

	nbrs, err := g.GetNode("b").Neighbors()
	require.NoError(t, err)
	require.Len(t, nbrs, 2)
}

func TestNodeViews_DetachedNode(t *testing.T) {
	n := core.NewNode("a")

	_, err := n.Edges()
	require.ErrorIs(t, err, core.ErrDetachedNode)

	_, err = n.Neighbors()
	require.ErrorIs(t, err, core.ErrDetachedNode)
}

func TestWeightMap_Resolution(t *testing.T) {
	g := core.NewDirectedGraph("g")
	buildGraph(t, g, []string{"a", "b", "c"}, []*core.Edge{
		core.NewEdge("ab", "a", "b", core.WithWeight(2)),
		core.NewEdge("bc", "b", "c"),
	})

	m := core.NewWeightMap(g)

	// Ordered pair first.
	require.Equal(t, 2.0, m.Resolve("a", "b"))
	// Undirected fallback: (b, a) is absent, (a, b) is used.
	require.Equal(t, 2.0, m.Resolve("b", "a"))
	// Stored default weight.
	require.Equal(t, core.DefaultWeight, m.Resolve("b", "c"))
	// Neither orientation stored.
	require.Equal(t, core.DefaultWeight, m.Resolve("a", "c"))
}
