package gen_test

import (
	"fmt"

	"github.com/spantree/dcmst/gen"
)

// ExampleInstance draws a small dense instance. At probability 1 the shape
// is fully determined: every pair of the five vertices is joined.
func ExampleInstance() {
	g, bounds, err := gen.Instance(
		gen.WithVertices(5),
		gen.WithEdgeProbability(1),
	)
	if err != nil {
		fmt.Println("generate failed:", err)

		return
	}

	fmt.Printf("edges=%d bounds=%d\n", g.EdgeCount(), len(bounds))
	// Output:
	// edges=10 bounds=5
}
