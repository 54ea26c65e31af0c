package core_test

import (
	"testing"

	"github.com/kirbs-btw/graph-py/core"
	"github.com/stretchr/testify/require"
)

// buildGraph populates g with the given node ids and edges.
func buildGraph(t *testing.T, g *core.Graph, nodes []string, edges []*core.Edge) {
	t.Helper()
	for _, id := range nodes {
		require.NoError(t, g.AddNode(core.NewNode(id)))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e))
	}
}

func TestAddNode_SetsBackReference(t *testing.T) {
	g := core.NewGraph("g")
	n := core.NewNode("a")

	require.NoError(t, g.AddNode(n))
	require.Same(t, g, n.Graph())
	require.Equal(t, 1, g.NodeCount())
}

func TestAddNode_ReAddingElsewhereRepointsBackReference(t *testing.T) {
	g1 := core.NewGraph("g1")
	g2 := core.NewGraph("g2")
	n := core.NewNode("a")

	require.NoError(t, g1.AddNode(n))
	require.NoError(t, g2.AddNode(n))

	require.Same(t, g2, n.Graph())
}

func TestAddNode_Validation(t *testing.T) {
	g := core.NewGraph("g")

	require.ErrorIs(t, g.AddNode(nil), core.ErrNilNode)
	require.ErrorIs(t, g.AddNode(&core.Node{}), core.ErrEmptyNodeID)

	require.NoError(t, g.AddNode(core.NewNode("a")))
	err := g.AddNode(core.NewNode("a"))
	require.ErrorIs(t, err, core.ErrDuplicateNodeID)
	require.Equal(t, 1, g.NodeCount(), "duplicate must not be appended")
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph("g")
	buildGraph(t, g, []string{"a", "b"}, nil)

	require.ErrorIs(t, g.AddEdge(nil), core.ErrNilEdge)
	require.ErrorIs(t, g.AddEdge(&core.Edge{Source: "a", Target: "b"}), core.ErrEmptyEdgeID)

	require.ErrorIs(t, g.AddEdge(core.NewEdge("ax", "a", "x")), core.ErrEndpointNotFound)
	require.ErrorIs(t, g.AddEdge(core.NewEdge("xb", "x", "b")), core.ErrEndpointNotFound)

	require.NoError(t, g.AddEdge(core.NewEdge("ab", "a", "b")))
	require.ErrorIs(t, g.AddEdge(core.NewEdge("ab", "b", "a")), core.ErrDuplicateEdgeID)
}

func TestAddEdge_BaseAllowsParallelEdges(t *testing.T) {
	g := core.NewGraph("g")
	buildGraph(t, g, []string{"a", "b"}, nil)

	require.NoError(t, g.AddEdge(core.NewEdge("e1", "a", "b")))
	require.NoError(t, g.AddEdge(core.NewEdge("e2", "a", "b")))
	require.NoError(t, g.AddEdge(core.NewEdge("e3", "b", "a")))
	require.Equal(t, 3, g.EdgeCount())
}

func TestAddEdge_DirectedKeepsBothOrientations(t *testing.T) {
	g := core.NewDirectedGraph("g")
	buildGraph(t, g, []string{"a", "b"}, nil)

	require.NoError(t, g.AddEdge(core.NewEdge("ab", "a", "b")))
	require.NoError(t, g.AddEdge(core.NewEdge("ba", "b", "a")))
	require.Equal(t, 2, g.EdgeCount())
}

func TestAddEdge_UndirectedRefusesSymmetricDuplicate(t *testing.T) {
	g := core.NewUndirectedGraph("g")
	buildGraph(t, g, []string{"a", "b"}, nil)

	require.NoError(t, g.AddEdge(core.NewEdge("ab", "a", "b")))

	// Same orientation and the reverse orientation are both refused.
	require.ErrorIs(t, g.AddEdge(core.NewEdge("ab2", "a", "b")), core.ErrEdgeExists)
	require.ErrorIs(t, g.AddEdge(core.NewEdge("ba", "b", "a")), core.ErrEdgeExists)
	require.Equal(t, 1, g.EdgeCount(), "exactly one edge per unordered pair")
}

func TestGetNode_GetEdge_AbsentIsNil(t *testing.T) {
	g := core.NewGraph("g")
	buildGraph(t, g, []string{"a"}, nil)

	require.NotNil(t, g.GetNode("a"))
	require.Nil(t, g.GetNode("missing"))
	require.Nil(t, g.GetEdge("missing"))
}

func TestContainsNode_IdentityNotIDEquality(t *testing.T) {
	g := core.NewGraph("g")
	member := core.NewNode("a")
	require.NoError(t, g.AddNode(member))

	impostor := core.NewNode("a")

	require.True(t, g.ContainsNode(member))
	require.False(t, g.ContainsNode(impostor), "same id, different node")
	require.False(t, g.ContainsNode(nil))
}

func TestNodesEdges_ReturnCopies(t *testing.T) {
	g := core.NewGraph("g")
	buildGraph(t, g, []string{"a", "b"}, []*core.Edge{core.NewEdge("ab", "a", "b")})

	nodes := g.Nodes()
	nodes[0] = nil
	require.NotNil(t, g.GetNode("a"))

	edges := g.Edges()
	edges[0] = nil
	require.NotNil(t, g.GetEdge("ab"))
}
