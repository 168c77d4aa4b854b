package finite_test

import (
	"fmt"

	"exhaustive-map/finite"
)

func ExampleAll() {
	port, _ := finite.IntRange(8080, 8083)

	for p := range finite.All(port) {
		fmt.Println(p)
	}
	// Output:
	// 8080
	// 8081
	// 8082
}

func ExampleMaybeOf() {
	e := finite.MaybeOf(finite.Bool())

	fmt.Println(e.Inhabitants())
	fmt.Println(e.ToIndex(finite.None[bool]()))
	fmt.Println(e.ToIndex(finite.Some(true)))
	// Output:
	// 3
	// 0
	// 2
}
