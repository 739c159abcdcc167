// Package search_test provides runnable examples for the search functions.
package search_test

import (
	"fmt"

	"github.com/katalvlaran/strukt/search"
)

// ExampleBinary demonstrates bisection over a sorted slice.
func ExampleBinary() {
	// 1) Input must be sorted ascending.
	s := []int{1, 3, 5, 7, 9}
	// 2) A hit returns the index.
	if i, ok := search.Binary(s, 5); ok {
		fmt.Println("found 5 at index", i)
	}
	// 3) A miss returns ok=false, never an error.
	if _, ok := search.Binary(s, 4); !ok {
		fmt.Println("4 is not present")
	}
	// Output:
	// found 5 at index 2
	// 4 is not present
}
