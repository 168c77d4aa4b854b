package exhaustive_test

import (
	"fmt"

	"exhaustive-map/exhaustive"
	"exhaustive-map/finite"
)

func ExampleFromFunc() {
	size, _ := finite.OfValues("small", "medium", "large")

	price := exhaustive.FromFunc(size, func(s string) int {
		switch s {
		case "small":
			return 3
		case "medium":
			return 4
		default:
			return 5
		}
	})

	fmt.Println(price.Get("medium"))
	fmt.Println(price)
	// Output:
	// 4
	// map[small:3 medium:4 large:5]
}

func ExampleMap_UpdateValues() {
	stock := exhaustive.NewZero[bool, int](finite.Bool())

	stock.UpdateValues(func(inStock bool, count *int) {
		if inStock {
			*count = 12
		}
	})

	fmt.Println(stock)
	// Output:
	// map[false:0 true:12]
}
