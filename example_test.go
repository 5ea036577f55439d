package fxkmeans_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/fxkmeans"
	"github.com/hupe1980/fxkmeans/core"
)

// ExampleClusterer_Run clusters five points around three starting centroids.
func ExampleClusterer_Run() {
	c, err := fxkmeans.New(fxkmeans.Config{N: 5, M: 3, MaxCoord: 100})
	if err != nil {
		log.Fatal(err)
	}

	points := []core.Point{core.P(1, 1), core.P(2, 2), core.P(98, 98), core.P(99, 99), core.P(50, 51)}
	centers := []core.Point{core.P(0, 0), core.P(50, 50), core.P(100, 100)}

	res, err := c.Run(context.Background(), points, centers)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("iterations:", res.Iterations)
	fmt.Println("assignment:", res.Assignment)
	for _, p := range res.Centers {
		fmt.Println(p)
	}
	// Output:
	// iterations: 2
	// assignment: [0 0 2 2 1]
	// (1, 1)
	// (50, 51)
	// (98, 98)
}

// ExampleClusterer_Step shows the lowest-index tie-break.
func ExampleClusterer_Step() {
	c, err := fxkmeans.New(fxkmeans.Config{N: 1, M: 2, MaxCoord: 10})
	if err != nil {
		log.Fatal(err)
	}

	centers := []core.Point{core.P(0, 5), core.P(10, 5)}
	assignment, changed, err := c.Step([]core.Point{core.P(5, 5)}, centers)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(assignment, changed, centers)
	// Output: [0] true [(5, 5) (10, 5)]
}
