// Package stack_test provides runnable examples for the Stack container.
package stack_test

import (
	"fmt"

	"github.com/katalvlaran/strukt/stack"
)

// ExampleStack demonstrates basic LIFO usage.
func ExampleStack() {
	// 1) Create an empty stack of ints.
	s := stack.New[int]()
	// 2) Push three values; 3 ends up on top.
	s.Push(1)
	s.Push(2)
	s.Push(3)
	// 3) Peek shows the top without removing it.
	top, _ := s.Peek()
	fmt.Println("top:", top)
	// 4) Drain the stack; values come back newest-first.
	for {
		v, ok := s.Pop()
		if !ok {
			break
		}
		fmt.Println("popped:", v)
	}
	// Output:
	// top: 3
	// popped: 3
	// popped: 2
	// popped: 1
}
