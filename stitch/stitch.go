// Package stitch joins the interiors of placed tiles into one composite image.
//
// Every tile loses its outermost ring of pixels; the remaining
// (D-2)×(D-2) interiors are laid out by grid coordinate, so a Size×Size
// placement of D×D tiles yields a Size·(D-2) square raster.
package stitch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilemosaic/assemble"
	"github.com/katalvlaran/tilemosaic/raster"
)

var (
	// ErrNilPlacement indicates a nil placement.
	ErrNilPlacement = errors.New("stitch: placement is nil")
	// ErrIncompletePlacement indicates a placement with empty cells.
	ErrIncompletePlacement = errors.New("stitch: placement does not cover the grid")
	// ErrTileSize indicates tiles of differing or too small dimensions.
	ErrTileSize = errors.New("stitch: tiles must share one size of at least 3")
)

// Stitch builds the composite image of a completed placement.
// Complexity: O(Size²·D²) time and memory.
func Stitch(p *assemble.Placement) (*raster.Raster, error) {
	if p == nil {
		return nil, ErrNilPlacement
	}
	if !p.Complete() {
		return nil, fmt.Errorf("%w: %d of %d cells", ErrIncompletePlacement, len(p.Cells), p.Size*p.Size)
	}
	d := p.At(assemble.Coord{}).Tile.Size()
	if d < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTileSize, d)
	}
	inner := d - 2
	out, err := raster.New(p.Size * inner)
	if err != nil {
		return nil, err
	}

	for at, pl := range p.Cells {
		if pl.Tile.Size() != d {
			return nil, fmt.Errorf("%w: tile %d is %d, expected %d", ErrTileSize, pl.Tile.ID, pl.Tile.Size(), d)
		}
		g := pl.Tile.Grid()
		top, left := at.Row*inner, at.Col*inner
		for y := 0; y < inner; y++ {
			for x := 0; x < inner; x++ {
				out.Set(top+y, left+x, g.At(y+1, x+1))
			}
		}
	}
	return out, nil
}
