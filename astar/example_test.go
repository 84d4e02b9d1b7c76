package astar_test

import (
	"fmt"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/astar"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/grid"
)

// ExampleFind smashes through a brick that blocks a corridor.
//
//	B # .      B = bot facing right, # = destroyable brick
func ExampleFind() {
	g, _ := grid.New(3, 1)
	_ = g.Place(grid.Point{X: 1, Y: 0}, grid.NewBrick(true))

	res, err := astar.Find(g, grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 0},
		astar.WithDestroy(true),
		astar.WithFacing(grid.Right),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", res.Path)
	fmt.Println("cost:", res.Cost)
	fmt.Println("rotations:", res.Rotations)

	// Output:
	// path: [{0 0} {0 0} {1 0} {2 0}]
	// cost: 30
	// rotations: [right]
}
