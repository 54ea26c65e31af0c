// This file declares Node, Edge, Graph, GraphKind, their functional
// options, sentinel errors, and the constructors.

package core

import (
	"errors"

	"github.com/google/uuid"
)

// DefaultWeight is the edge weight assumed when none is provided.
const DefaultWeight = 1.0

// Sentinel errors for core graph operations.
var (
	// ErrNilNode indicates that a nil *Node was passed to AddNode.
	ErrNilNode = errors.New("core: node is nil")

	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNodeID indicates a node with the same ID already exists.
	ErrDuplicateNodeID = errors.New("core: duplicate node ID")

	// ErrNilEdge indicates that a nil *Edge was passed to AddEdge.
	ErrNilEdge = errors.New("core: edge is nil")

	// ErrEmptyEdgeID indicates that the provided Edge has an empty ID.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")

	// ErrDuplicateEdgeID indicates an edge with the same ID already exists.
	ErrDuplicateEdgeID = errors.New("core: duplicate edge ID")

	// ErrEndpointNotFound indicates an edge references a node ID that is
	// not present in the graph.
	ErrEndpointNotFound = errors.New("core: edge endpoint not found")

	// ErrEdgeExists indicates an undirected graph already connects the
	// same unordered node pair.
	ErrEdgeExists = errors.New("core: edge already connects this pair")

	// ErrDetachedNode indicates a node-level view (Edges, Neighbors) was
	// requested on a node that does not belong to any graph.
	ErrDetachedNode = errors.New("core: node is not attached to a graph")
)

// GraphKind tags a Graph with its adjacency semantics. The set is closed:
// set operations merge kinds through MergeKinds rather than any open-ended
// type introspection.
type GraphKind uint8

const (
	// KindBase treats every edge as bidirectional for adjacency and
	// applies no pair de-duplication (parallel edges allowed).
	KindBase GraphKind = iota

	// KindDirected follows edges source→target only; A→B and B→A are
	// distinct edges.
	KindDirected

	// KindUndirected has symmetric adjacency and stores at most one edge
	// per unordered node pair.
	KindUndirected
)

// String returns a human-readable kind name.
func (k GraphKind) String() string {
	switch k {
	case KindDirected:
		return "directed"
	case KindUndirected:
		return "undirected"
	default:
		return "base"
	}
}

// MergeKinds resolves the kind of a graph combined from two operands:
// identical kinds keep that kind, KindBase yields to the more specific
// operand, and Directed combined with Undirected falls back to KindBase.
func MergeKinds(a, b GraphKind) GraphKind {
	if a == b {
		return a
	}
	if a == KindBase {
		return b
	}
	if b == KindBase {
		return a
	}

	return KindBase
}

// Node represents a node in a graph.
//
// ID uniquely identifies the node within its owning graph. The property
// bag is nil for plain nodes and allocated by NewPropertyNode (or lazily
// by SetProperty). The graph back-reference is non-owning: it is assigned
// by Graph.AddNode, cleared by Clone, and used only for the derived
// Edges/Neighbors views.
type Node struct {
	// ID is the unique identifier for this node.
	ID string

	// Name is an optional display name.
	Name string

	// properties holds arbitrary key-value data; nil for plain nodes.
	properties map[string]any

	// graph is the non-owning back-reference to the owning graph.
	graph *Graph
}

// NodeOption configures a Node at construction time.
type NodeOption func(*Node)

// WithNodeName sets the node's display name.
func WithNodeName(name string) NodeOption {
	return func(n *Node) { n.Name = name }
}

// NewNode creates a plain Node. An empty id is replaced with a fresh UUID.
func NewNode(id string, opts ...NodeOption) *Node {
	if id == "" {
		id = uuid.NewString()
	}
	n := &Node{ID: id}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// NewPropertyNode creates a property-bearing Node carrying a copy of the
// given key-value mapping. An empty id is replaced with a fresh UUID.
func NewPropertyNode(id string, props map[string]any, opts ...NodeOption) *Node {
	n := NewNode(id, opts...)
	n.properties = make(map[string]any, len(props))
	for k, v := range props {
		n.properties[k] = v
	}

	return n
}

// Edge represents a connection between two nodes, identified by their ids.
//
// Edges are value objects: they reference nodes by id and do not own them.
// Weight defaults to DefaultWeight (1.0) when constructed via NewEdge.
type Edge struct {
	// ID uniquely identifies this edge within its graph.
	ID string

	// Name is an optional display name.
	Name string

	// Source is the source node ID.
	Source string

	// Target is the target node ID.
	Target string

	// Weight is the cost of traversing this edge.
	Weight float64
}

// EdgeOption configures an Edge at construction time.
type EdgeOption func(*Edge)

// WithEdgeName sets the edge's display name.
func WithEdgeName(name string) EdgeOption {
	return func(e *Edge) { e.Name = name }
}

// WithWeight sets the edge's weight, overriding DefaultWeight.
func WithWeight(w float64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// NewEdge creates an Edge from source to target with Weight set to
// DefaultWeight unless overridden. An empty id is replaced with a fresh UUID.
func NewEdge(id, source, target string, opts ...EdgeOption) *Edge {
	if id == "" {
		id = uuid.NewString()
	}
	e := &Edge{ID: id, Source: source, Target: target, Weight: DefaultWeight}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Graph is the in-memory graph data structure.
//
// Nodes and edges are kept in insertion order so that iteration, adjacency
// construction, and search are deterministic. The kind tag selects the
// adjacency and edge-insertion semantics; see GraphKind.
type Graph struct {
	// ID uniquely identifies this graph.
	ID string

	// Name is an optional display name.
	Name string

	// kind selects adjacency and edge-insertion semantics.
	kind GraphKind

	// Storage, insertion-ordered.
	nodes []*Node
	edges []*Edge

	// Search strategy registry; see search.go.
	strategies      map[string]SearchStrategy
	defaultStrategy string
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithGraphName sets the graph's display name.
func WithGraphName(name string) GraphOption {
	return func(g *Graph) { g.Name = name }
}

// WithKind sets the graph's kind. Prefer NewDirectedGraph and
// NewUndirectedGraph; WithKind exists for kind-parameterized construction
// such as the set-operation combinators.
func WithKind(k GraphKind) GraphOption {
	return func(g *Graph) { g.kind = k }
}

// NewGraph creates an empty graph of KindBase. An empty id is replaced
// with a fresh UUID.
// Complexity: O(1)
func NewGraph(id string, opts ...GraphOption) *Graph {
	if id == "" {
		id = uuid.NewString()
	}
	g := &Graph{ID: id}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewDirectedGraph creates an empty graph whose adjacency follows edge
// direction only.
func NewDirectedGraph(id string, opts ...GraphOption) *Graph {
	return NewGraph(id, append([]GraphOption{WithKind(KindDirected)}, opts...)...)
}

// NewUndirectedGraph creates an empty graph with symmetric adjacency and
// unordered-pair edge de-duplication.
func NewUndirectedGraph(id string, opts ...GraphOption) *Graph {
	return NewGraph(id, append([]GraphOption{WithKind(KindUndirected)}, opts...)...)
}

// Kind reports the graph's kind tag.
func (g *Graph) Kind() GraphKind { return g.kind }
