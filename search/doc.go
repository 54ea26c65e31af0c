// Package search provides concrete node-search strategies for the
// registry owned by core.Graph.
//
// What
//
//   - PatternStrategy ("pattern"): compiles the query pattern as a regular
//     expression (case-insensitive unless the query says otherwise) and
//     scores each node by the number of fields the pattern hits.
//     Candidate fields default to "id" and "name" plus, for
//     property-bearing nodes, every property key; an explicit
//     SearchQuery.Fields restricts the set.
//   - FuzzyStrategy ("fuzzy") and EmbeddingStrategy ("embedding"):
//     reserved extension points. They register like any strategy but fail
//     with ErrNotImplemented when invoked — never a silent empty result.
//
// Usage
//
//	g := core.NewGraph("catalog")
//	_ = g.RegisterSearchStrategy(search.NewPatternStrategy())
//
//	results, err := g.Search("red")
//	if err != nil {
//	    // ErrBadPattern for an invalid expression; registry errors from core
//	}
//	for _, r := range results {
//	    fmt.Println(r.NodeID, r.Score, r.Highlights)
//	}
//
// Errors
//
//   - ErrBadPattern      if the query pattern does not compile.
//   - ErrNotImplemented  if a reserved placeholder strategy is invoked.
package search
