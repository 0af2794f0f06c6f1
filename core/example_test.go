// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/campusnet/core"
)

// ExampleGraph demonstrates creation, mirrored edges and ordered queries.
func ExampleGraph() {
	g := core.NewGraph()

	// An undirected relation is two mirrored directed edges.
	_, _ = g.AddEdge("Alice", "Bob", 7)
	_, _ = g.AddEdge("Bob", "Alice", 7)
	_, _ = g.AddEdge("Alice", "Charlie", 0)

	fmt.Println("Vertices:", g.Vertices())
	ids, _ := g.NeighborIDs("Alice")
	fmt.Println("Alice ->", ids)
	back, _ := g.NeighborIDs("Charlie")
	fmt.Println("Charlie ->", back)

	// Output:
	// Vertices: [Alice Bob Charlie]
	// Alice -> [Bob Charlie]
	// Charlie -> []
}
