package search

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/kirbs-btw/graph-py/core"
)

// Registry keys for the strategies shipped with this package.
const (
	// StrategyPattern is the registry key of PatternStrategy.
	StrategyPattern = "pattern"

	// StrategyFuzzy is the registry key reserved for fuzzy matching.
	StrategyFuzzy = "fuzzy"

	// StrategyEmbedding is the registry key reserved for embedding-based
	// semantic matching.
	StrategyEmbedding = "embedding"
)

// ErrBadPattern indicates the query pattern failed to compile as a
// regular expression.
var ErrBadPattern = errors.New("search: invalid search pattern")

// Built-in field names always considered by PatternStrategy.
const (
	fieldID   = "id"
	fieldName = "name"
)

// PatternStrategy matches nodes by compiling SearchQuery.Pattern as a
// regular expression. Matching is case-insensitive unless
// SearchQuery.CaseSensitive is set. A node with at least one hit field
// becomes a result; Score is the hit-field count and Highlights maps each
// hit field to the matched text. Accumulation stops once
// SearchQuery.Limit results exist (when set).
type PatternStrategy struct{}

// NewPatternStrategy returns the regexp-backed pattern strategy.
func NewPatternStrategy() PatternStrategy { return PatternStrategy{} }

// Name returns the registry key "pattern".
func (PatternStrategy) Name() string { return StrategyPattern }

// Search scans nodes in order and returns every node the pattern hits.
// Complexity: O(V·F) pattern applications, F = candidate fields per node.
func (PatternStrategy) Search(nodes []*core.Node, q core.SearchQuery) ([]core.SearchResult, error) {
	expr := q.Pattern
	if !q.CaseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadPattern, q.Pattern, err)
	}

	var results []core.SearchResult
	for _, n := range nodes {
		highlights := matchFields(re, n, q.Fields)
		if len(highlights) == 0 {
			continue
		}
		results = append(results, core.SearchResult{
			NodeID:     n.ID,
			Score:      float64(len(highlights)),
			Highlights: highlights,
			Node:       n,
		})
		if q.Limit > 0 && len(results) >= q.Limit {
			break
		}
	}

	return results, nil
}

// matchFields applies re to each candidate field of n and returns the
// field → matched-text mapping for every hit.
func matchFields(re *regexp.Regexp, n *core.Node, fields []string) map[string]string {
	var hits map[string]string
	record := func(field, value string) {
		if loc := re.FindStringIndex(value); loc != nil {
			if hits == nil {
				hits = make(map[string]string, 1)
			}
			hits[field] = value[loc[0]:loc[1]]
		}
	}

	if len(fields) > 0 {
		// Explicit restriction: only the named fields, skipping those the
		// node does not carry.
		for _, field := range fields {
			if value, ok := fieldValue(n, field); ok {
				record(field, value)
			}
		}

		return hits
	}

	record(fieldID, n.ID)
	record(fieldName, n.Name)
	for _, key := range n.PropertyKeys() {
		v, _ := n.LookupProperty(key)
		record(key, stringify(v))
	}

	return hits
}

// fieldValue resolves a named field to its stringified value.
func fieldValue(n *core.Node, field string) (string, bool) {
	switch field {
	case fieldID:
		return n.ID, true
	case fieldName:
		return n.Name, true
	default:
		if v, ok := n.LookupProperty(field); ok {
			return stringify(v), true
		}

		return "", false
	}
}

// stringify renders an arbitrary property value as matchable text.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprintf("%v", v)
}
