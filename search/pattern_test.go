package search_test

import (
	"testing"

	"github.com/kirbs-btw/graph-py/core"
	"github.com/kirbs-btw/graph-py/search"
	"github.com/stretchr/testify/require"
)

// catalog builds a graph with a few nodes and the pattern strategy
// registered as default.
func catalog(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph("catalog")
	require.NoError(t, g.AddNode(core.NewNode("apple", core.WithNodeName("Apple"))))
	require.NoError(t, g.AddNode(core.NewNode("banana", core.WithNodeName("Banana"))))
	require.NoError(t, g.AddNode(core.NewPropertyNode("p1", map[string]any{"color": "red"})))
	require.NoError(t, g.RegisterSearchStrategy(search.NewPatternStrategy()))

	return g
}

func TestPatternStrategy_PropertyHit(t *testing.T) {
	g := catalog(t)

	// Case-insensitive by default.
	results, err := g.Search("RED")
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	require.Equal(t, "p1", r.NodeID)
	require.Equal(t, 1.0, r.Score)
	require.Equal(t, map[string]string{"color": "red"}, r.Highlights)
	require.Same(t, g.GetNode("p1"), r.Node)
}

func TestPatternStrategy_ScoreCountsHitFields(t *testing.T) {
	g := catalog(t)

	// "apple" hits both the id and the name of the apple node.
	results, err := g.Search("apple")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 2.0, results[0].Score)
	require.Equal(t, "apple", results[0].Highlights["id"])
	require.Equal(t, "Apple", results[0].Highlights["name"])
}

func TestPatternStrategy_CaseSensitive(t *testing.T) {
	g := catalog(t)

	results, err := g.SearchNodes(core.SearchQuery{Pattern: "RED", CaseSensitive: true})
	require.NoError(t, err)
	require.Empty(t, results)

	results, err = g.SearchNodes(core.SearchQuery{Pattern: "red", CaseSensitive: true})
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestPatternStrategy_FieldRestriction(t *testing.T) {
	g := catalog(t)

	// Restricting to "name" must ignore the id hit.
	results, err := g.SearchNodes(core.SearchQuery{Pattern: "apple", Fields: []string{"name"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 1.0, results[0].Score)
	require.Equal(t, map[string]string{"name": "Apple"}, results[0].Highlights)

	// A field the node does not carry is skipped, not an error.
	results, err = g.SearchNodes(core.SearchQuery{Pattern: "red", Fields: []string{"shape"}})
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestPatternStrategy_Limit(t *testing.T) {
	g := catalog(t)

	// "an|pp" matches both apple and banana; the limit keeps the first.
	results, err := g.SearchNodes(core.SearchQuery{Pattern: "an|pp", Limit: 1})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "apple", results[0].NodeID, "first node in insertion order wins")
}

func TestPatternStrategy_StringifiesNonStringProperties(t *testing.T) {
	g := core.NewGraph("g")
	require.NoError(t, g.AddNode(core.NewPropertyNode("n", map[string]any{"size": 42})))
	require.NoError(t, g.RegisterSearchStrategy(search.NewPatternStrategy()))

	results, err := g.Search("42")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "42", results[0].Highlights["size"])
}

func TestPatternStrategy_BadPattern(t *testing.T) {
	g := catalog(t)

	_, err := g.Search("[unclosed")
	require.ErrorIs(t, err, search.ErrBadPattern)
	require.Contains(t, err.Error(), "[unclosed", "error names the offending pattern")
}

func TestPlaceholders_RegisterableButNotImplemented(t *testing.T) {
	g := core.NewGraph("g")
	require.NoError(t, g.AddNode(core.NewNode("a")))
	require.NoError(t, g.RegisterSearchStrategy(search.NewFuzzyStrategy()))
	require.NoError(t, g.RegisterSearchStrategy(search.NewEmbeddingStrategy()))

	require.Equal(t, []string{"embedding", "fuzzy"}, g.ListSearchStrategies())

	for _, key := range []string{search.StrategyFuzzy, search.StrategyEmbedding} {
		_, err := g.SearchNodes(core.SearchQuery{Pattern: "a"}, core.UsingStrategyKey(key))
		require.ErrorIs(t, err, search.ErrNotImplemented, "strategy %q", key)
	}
}
