// This file implements the node-search subsystem owned by Graph: the
// query/result types, the SearchStrategy capability, and the keyed
// registry with one designated default strategy.
//
// The registry is the library's only extensibility seam: matching and
// ranking logic can evolve behind SearchStrategy without touching the
// structural contract of Graph.

package core

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for the search registry.
var (
	// ErrNilStrategy indicates a nil SearchStrategy was registered.
	ErrNilStrategy = errors.New("core: search strategy is nil")

	// ErrEmptyStrategyKey indicates a strategy resolves to an empty key.
	ErrEmptyStrategyKey = errors.New("core: search strategy key is empty")

	// ErrUnknownStrategy indicates the requested key is not registered.
	ErrUnknownStrategy = errors.New("core: unknown search strategy")

	// ErrNoStrategies indicates no search strategy is registered at all.
	// Distinct from ErrUnknownStrategy by contract.
	ErrNoStrategies = errors.New("core: no search strategies registered")
)

// SearchQuery describes a node-search request.
type SearchQuery struct {
	// Pattern is the text pattern to match.
	Pattern string

	// Fields optionally restricts matching to the named fields
	// ("id", "name", or a property key). Empty means all candidate fields.
	Fields []string

	// Limit caps the number of results when > 0.
	Limit int

	// CaseSensitive disables the default case-insensitive matching.
	CaseSensitive bool

	// Params carries strategy-specific tuning values.
	Params map[string]any
}

// SearchResult is one ranked match produced by a strategy.
type SearchResult struct {
	// NodeID identifies the matched node.
	NodeID string

	// Score ranks the match; the pattern strategy counts hit fields.
	Score float64

	// Highlights maps each hit field name to the matched text.
	Highlights map[string]string

	// Node is a non-owning reference to the matched node. It may be
	// re-resolved against a graph via NodeID when absent or stale.
	Node *Node
}

// SearchStrategy is the capability of matching a node sequence against a
// query and returning ranked results.
type SearchStrategy interface {
	// Name returns the default registry key for this strategy.
	Name() string

	// Search scans nodes in order and returns ranked results.
	Search(nodes []*Node, q SearchQuery) ([]SearchResult, error)
}

// RegisterOption configures RegisterSearchStrategy.
type RegisterOption func(*registerConfig)

type registerConfig struct {
	alias       string
	makeDefault bool
}

// WithStrategyAlias registers the strategy under the given key instead of
// its own Name().
func WithStrategyAlias(alias string) RegisterOption {
	return func(c *registerConfig) { c.alias = alias }
}

// AsDefaultSearchStrategy makes the registered strategy the default.
func AsDefaultSearchStrategy() RegisterOption {
	return func(c *registerConfig) { c.makeDefault = true }
}

// RegisterSearchStrategy stores s under its alias (or its own name).
// The strategy becomes the default when explicitly requested or when no
// default currently exists. Re-registering a key replaces the strategy.
func (g *Graph) RegisterSearchStrategy(s SearchStrategy, opts ...RegisterOption) error {
	if s == nil {
		return ErrNilStrategy
	}
	var cfg registerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	key := cfg.alias
	if key == "" {
		key = s.Name()
	}
	if key == "" {
		return ErrEmptyStrategyKey
	}

	if g.strategies == nil {
		g.strategies = make(map[string]SearchStrategy, 1)
	}
	g.strategies[key] = s
	if cfg.makeDefault || g.defaultStrategy == "" {
		g.defaultStrategy = key
	}

	return nil
}

// UnregisterSearchStrategy removes the strategy stored under key.
// When the default is removed, a new default is elected from the
// remaining keys (lexicographically smallest, for determinism), or none.
func (g *Graph) UnregisterSearchStrategy(key string) error {
	if _, ok := g.strategies[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, key)
	}
	delete(g.strategies, key)
	if g.defaultStrategy == key {
		g.defaultStrategy = ""
		if keys := g.ListSearchStrategies(); len(keys) > 0 {
			g.defaultStrategy = keys[0]
		}
	}

	return nil
}

// ListSearchStrategies returns the registered keys sorted
// lexicographically.
func (g *Graph) ListSearchStrategies() []string {
	if len(g.strategies) == 0 {
		return nil
	}
	keys := make([]string, 0, len(g.strategies))
	for k := range g.strategies {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// DefaultSearchStrategy returns the current default key, or "" when no
// strategy is registered.
func (g *Graph) DefaultSearchStrategy() string { return g.defaultStrategy }

// SetDefaultSearchStrategy designates a registered key as the default.
func (g *Graph) SetDefaultSearchStrategy(key string) error {
	if _, ok := g.strategies[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, key)
	}
	g.defaultStrategy = key

	return nil
}

// SearchOption selects the strategy for a single SearchNodes call.
type SearchOption func(*searchConfig)

type searchConfig struct {
	strategy SearchStrategy
	key      string
}

// UsingStrategy runs the query with an explicit strategy instance,
// bypassing the registry entirely.
func UsingStrategy(s SearchStrategy) SearchOption {
	return func(c *searchConfig) { c.strategy = s }
}

// UsingStrategyKey runs the query with the registered strategy stored
// under key.
func UsingStrategyKey(key string) SearchOption {
	return func(c *searchConfig) { c.key = key }
}

// SearchNodes resolves a strategy and runs q over the graph's node
// sequence, returning ranked results.
//
// Resolution order: explicit instance (UsingStrategy) > explicit key
// (UsingStrategyKey) > registered default > first available key.
// A missing key fails with ErrUnknownStrategy; an empty registry fails
// with ErrNoStrategies. The two are never conflated.
func (g *Graph) SearchNodes(q SearchQuery, opts ...SearchOption) ([]SearchResult, error) {
	var cfg searchConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	strat, err := g.resolveStrategy(cfg)
	if err != nil {
		return nil, err
	}

	return strat.Search(g.Nodes(), q)
}

// Search treats a bare string as a pattern with default query settings.
func (g *Graph) Search(pattern string) ([]SearchResult, error) {
	return g.SearchNodes(SearchQuery{Pattern: pattern})
}

// resolveStrategy applies the documented resolution order.
func (g *Graph) resolveStrategy(cfg searchConfig) (SearchStrategy, error) {
	if cfg.strategy != nil {
		return cfg.strategy, nil
	}
	if cfg.key != "" {
		s, ok := g.strategies[cfg.key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.key)
		}

		return s, nil
	}
	if len(g.strategies) == 0 {
		return nil, ErrNoStrategies
	}
	if s, ok := g.strategies[g.defaultStrategy]; ok {
		return s, nil
	}

	// No usable default; fall back to the first available key.
	return g.strategies[g.ListSearchStrategies()[0]], nil
}
