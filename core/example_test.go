package core_test

import (
	"fmt"

	"github.com/kirbs-btw/graph-py/core"
)

// ExampleGraph_Adjacency builds a small directed graph and prints its
// derived adjacency view.
func ExampleGraph_Adjacency() {
	g := core.NewDirectedGraph("routes")
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddNode(core.NewNode(id))
	}
	_ = g.AddEdge(core.NewEdge("ab", "A", "B"))
	_ = g.AddEdge(core.NewEdge("bc", "B", "C"))

	adj := g.Adjacency()
	fmt.Println("A:", adj["A"])
	fmt.Println("B:", adj["B"])
	fmt.Println("C:", adj["C"])
	// Output:
	// A: [B]
	// B: [C]
	// C: []
}

// ExampleNode_Property shows the property bag with a caller-supplied
// default for absent keys.
func ExampleNode_Property() {
	n := core.NewPropertyNode("p1", map[string]any{"color": "red"})

	fmt.Println(n.Property("color", "unknown"))
	fmt.Println(n.Property("shape", "unknown"))
	// Output:
	// red
	// unknown
}
