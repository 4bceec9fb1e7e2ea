// File: tile/example_test.go
package tile_test

import (
	"fmt"

	"github.com/katalvlaran/tilemosaic/tile"
)

// ExampleTile_Edges shows the four borders of a tile and how a quarter turn
// moves the right border to the top.
func ExampleTile_Edges() {
	t := tile.MustFromLines(7,
		"#.#.",
		"##..",
		"...#",
		".###",
	)
	for i, e := range t.Edges(false) {
		fmt.Printf("%-6s %s\n", tile.Sides[i], e)
	}

	t.Rotate()
	fmt.Println(t.Grid())

	// Output:
	// top    #.#.
	// bottom .###
	// left   ##..
	// right  ..##
	// ..##
	// #..#
	// .#.#
	// ##..
}
