package memo_test

import (
	"fmt"
	"pipekit/memo"
)

func ExampleMemoize() {
	var fib *memo.Memoized[int, int, int]
	fib = memo.Memoize(func(n int) int {
		if n < 2 {
			return n
		}
		return fib.Call(n-1) + fib.Call(n-2)
	})

	fmt.Println(fib.Call(80))
	fmt.Println(fib.Stats().Misses)

	// Output:
	// 23416728348467685
	// 81
}
