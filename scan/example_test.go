// File: scan/example_test.go
package scan_test

import (
	"fmt"

	"github.com/katalvlaran/tilemosaic/internal/mosaictest"
	"github.com/katalvlaran/tilemosaic/raster"
	"github.com/katalvlaran/tilemosaic/scan"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Scan
////////////////////////////////////////////////////////////////////////////////

// ExampleScan demonstrates locating sea monsters that only appear after the
// image is turned once.
// Scenario:
//
//   - 24×24 image, two monsters drawn upright, then the image is turned
//     clockwise so the monsters stand on end.
//   - Scan turns the view counter-clockwise and finds both in view 1.
//   - Two stray pixels are not covered: roughness = 32 - 2·15 = 2.
func ExampleScan() {
	img, _ := raster.New(24)
	mosaictest.Stamp(img, 2, 1, scan.SeaMonsterArt...)
	mosaictest.Stamp(img, 10, 3, scan.SeaMonsterArt...)
	img.Set(0, 0, raster.On)
	img.Set(20, 20, raster.On)
	img.Rotate()
	img.Rotate()
	img.Rotate()

	res, _ := scan.Scan(img, scan.SeaMonster)
	fmt.Println("rotation:", res.Rotation)
	fmt.Println("matches:", res.Matches, res.Positions)
	fmt.Println("roughness:", res.Roughness)

	// Output:
	// rotation: 1
	// matches: 2 [{2 1} {10 3}]
	// roughness: 2
}
