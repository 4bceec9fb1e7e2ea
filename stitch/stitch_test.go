package stitch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilemosaic/adjacency"
	"github.com/katalvlaran/tilemosaic/assemble"
	"github.com/katalvlaran/tilemosaic/internal/mosaictest"
	"github.com/katalvlaran/tilemosaic/stitch"
	"github.com/katalvlaran/tilemosaic/tile"
)

// TestStitch_Known lays out four 4×4 tiles by hand and checks the 4×4
// composite byte for byte.
func TestStitch_Known(t *testing.T) {
	tl := func(id int, lines ...string) *tile.Tile { return tile.MustFromLines(id, lines...) }
	p, err := assemble.NewPlacement(2,
		&assemble.Placed{At: assemble.Coord{Row: 0, Col: 0}, Tile: tl(1, "####", "##.#", "#..#", "####")},
		&assemble.Placed{At: assemble.Coord{Row: 0, Col: 1}, Tile: tl(2, "....", ".##.", "....", "....")},
		&assemble.Placed{At: assemble.Coord{Row: 1, Col: 0}, Tile: tl(3, "....", "....", ".#..", "....")},
		&assemble.Placed{At: assemble.Coord{Row: 1, Col: 1}, Tile: tl(4, "####", "#..#", "#.##", "####")},
	)
	require.NoError(t, err)

	img, err := stitch.Stitch(p)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"#.##",
		"....",
		"....",
		"#..#",
	}, img.Lines())
}

// TestStitch_GeneratedMatchesTruth checks the composite of an assembled
// mosaic is an orientation of the image it was cut from.
func TestStitch_GeneratedMatchesTruth(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		cfg := mosaictest.DefaultConfig()
		cfg.Seed = seed
		m := mosaictest.MustGenerate(cfg)
		adj, err := adjacency.Resolve(m.Tiles)
		require.NoError(t, err)
		p, err := assemble.Assemble(m.Tiles, adj)
		require.NoError(t, err)

		img, err := stitch.Stitch(p)
		require.NoError(t, err)
		require.Equal(t, m.Side*(m.TileSize-2), img.Size())
		_, ok := mosaictest.OrientationOf(img, m.Image)
		assert.True(t, ok, "seed %d: composite is not an orientation of the source image", seed)
		assert.Equal(t, m.Image.CountOn(), img.CountOn())
	}
}

func TestStitch_Errors(t *testing.T) {
	_, err := stitch.Stitch(nil)
	assert.ErrorIs(t, err, stitch.ErrNilPlacement)

	p, err := assemble.NewPlacement(2,
		&assemble.Placed{At: assemble.Coord{}, Tile: tile.MustFromLines(1, "...", "...", "...")},
	)
	require.NoError(t, err)
	_, err = stitch.Stitch(p)
	assert.ErrorIs(t, err, stitch.ErrIncompletePlacement)

	three := tile.MustFromLines(1, "...", "...", "...")
	four := func(id int) *tile.Tile { return tile.MustFromLines(id, "....", "....", "....", "....") }
	p, err = assemble.NewPlacement(2,
		&assemble.Placed{At: assemble.Coord{Row: 0, Col: 0}, Tile: three},
		&assemble.Placed{At: assemble.Coord{Row: 0, Col: 1}, Tile: four(2)},
		&assemble.Placed{At: assemble.Coord{Row: 1, Col: 0}, Tile: four(3)},
		&assemble.Placed{At: assemble.Coord{Row: 1, Col: 1}, Tile: four(4)},
	)
	require.NoError(t, err)
	_, err = stitch.Stitch(p)
	assert.ErrorIs(t, err, stitch.ErrTileSize)
}

func TestNewPlacement_Conflicts(t *testing.T) {
	a := tile.MustFromLines(1, "...", "...", "...")
	b := tile.MustFromLines(2, "...", "...", "...")
	_, err := assemble.NewPlacement(1, &assemble.Placed{At: assemble.Coord{Row: 1}, Tile: a})
	assert.ErrorIs(t, err, assemble.ErrPlacementConflict)
	_, err = assemble.NewPlacement(2,
		&assemble.Placed{At: assemble.Coord{}, Tile: a},
		&assemble.Placed{At: assemble.Coord{}, Tile: b},
	)
	assert.ErrorIs(t, err, assemble.ErrPlacementConflict)
	_, err = assemble.NewPlacement(2,
		&assemble.Placed{At: assemble.Coord{}, Tile: a},
		&assemble.Placed{At: assemble.Coord{Col: 1}, Tile: a},
	)
	assert.ErrorIs(t, err, assemble.ErrPlacementConflict)
}
