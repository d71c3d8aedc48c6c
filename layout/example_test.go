package layout_test

import (
	"fmt"

	"github.com/katalvlaran/bstviz/bst"
	"github.com/katalvlaran/bstviz/layout"
)

// ExampleCompute lays out a three-node tree on the default 900px canvas.
func ExampleCompute() {
	t := bst.New(50, 30, 70)
	m, err := layout.Compute(t.Root())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range m.Sorted() {
		fmt.Printf("%d at (%.1f, %.1f)\n", p.Node.Value(), p.X, p.Y)
	}
	// Output:
	// 30 at (225.0, 130.0)
	// 50 at (450.0, 50.0)
	// 70 at (675.0, 130.0)
}
