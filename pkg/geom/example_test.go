package geom_test

import (
	"fmt"

	"github.com/fitlab/tubfit/pkg/geom"
)

func ExampleRoundedRect() {
	poly := geom.RoundedRect(0, 0, 60, 60, 4.8, 0, 24)
	fmt.Println(len(poly))

	min, max := poly.Bounds()
	fmt.Printf("%.1f x %.1f\n", max.X-min.X, max.Y-min.Y)
	// Output:
	// 100
	// 60.0 x 60.0
}

func ExampleRect() {
	poly := geom.Rect(0, 0, 17, 40)
	for _, pt := range poly {
		fmt.Printf("(%.1f, %.1f)\n", pt.X, pt.Y)
	}
	// Output:
	// (-8.5, 20.0)
	// (8.5, 20.0)
	// (8.5, -20.0)
	// (-8.5, -20.0)
}
