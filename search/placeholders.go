package search

import (
	"errors"
	"fmt"

	"github.com/kirbs-btw/graph-py/core"
)

// ErrNotImplemented indicates a reserved placeholder strategy was invoked.
var ErrNotImplemented = errors.New("search: strategy not implemented")

// FuzzyStrategy is a reserved extension point for edit-distance matching.
// It can be registered like any strategy, but invoking it fails with
// ErrNotImplemented rather than returning a silent empty result.
type FuzzyStrategy struct{}

// NewFuzzyStrategy returns the reserved fuzzy-matching strategy.
func NewFuzzyStrategy() FuzzyStrategy { return FuzzyStrategy{} }

// Name returns the registry key "fuzzy".
func (FuzzyStrategy) Name() string { return StrategyFuzzy }

// Search always fails with ErrNotImplemented.
func (FuzzyStrategy) Search([]*core.Node, core.SearchQuery) ([]core.SearchResult, error) {
	return nil, fmt.Errorf("%w: %s", ErrNotImplemented, StrategyFuzzy)
}

// EmbeddingStrategy is a reserved extension point for embedding-based
// semantic matching.
type EmbeddingStrategy struct{}

// NewEmbeddingStrategy returns the reserved embedding strategy.
func NewEmbeddingStrategy() EmbeddingStrategy { return EmbeddingStrategy{} }

// Name returns the registry key "embedding".
func (EmbeddingStrategy) Name() string { return StrategyEmbedding }

// Search always fails with ErrNotImplemented.
func (EmbeddingStrategy) Search([]*core.Node, core.SearchQuery) ([]core.SearchResult, error) {
	return nil, fmt.Errorf("%w: %s", ErrNotImplemented, StrategyEmbedding)
}
