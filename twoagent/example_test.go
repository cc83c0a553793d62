package twoagent_test

import (
	"fmt"

	"github.com/ravlenko/optsub/twoagent"
)

// ExampleMaxChocolates sends one agent through 2→4→6 and the other
// down the right edge for 2→2→5.
func ExampleMaxChocolates() {
	grid := [][]int{
		{2, 3, 1, 2},
		{3, 4, 2, 2},
		{5, 6, 3, 5},
	}

	total, err := twoagent.MaxChocolates(grid, twoagent.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("total=%d\n", total)
	// Output:
	// total=21
}
