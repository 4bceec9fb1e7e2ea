// Package assemble provides tunable options, error definitions and result
// types for placing oriented tiles on a square grid.
package assemble

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/tilemosaic/tile"
)

// Sentinel errors for assembly.
var (
	// ErrNilAdjacency is returned if no adjacency relation is supplied.
	ErrNilAdjacency = errors.New("assemble: adjacency is nil")

	// ErrNotSquare is returned when the tile count is not a perfect square > 1.
	ErrNotSquare = errors.New("assemble: tile count is not a square greater than one")

	// ErrTileSet is returned when the tiles and the adjacency relation disagree.
	ErrTileSet = errors.New("assemble: tiles do not match adjacency relation")

	// ErrAnchorOrientation is returned when the anchor corner cannot be turned
	// so that its two unmatched edges face top and left.
	ErrAnchorOrientation = errors.New("assemble: cannot orient anchor corner")

	// ErrOrientation is returned when no orientation of a tile matches its parent.
	ErrOrientation = errors.New("assemble: no orientation matches parent tile")

	// ErrPlacementConflict is returned when a tile lands outside the grid or
	// on an occupied cell.
	ErrPlacementConflict = errors.New("assemble: placement conflict")

	// ErrIncomplete is returned when the work queue drains before all tiles are placed.
	ErrIncomplete = errors.New("assemble: not every tile could be placed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("assemble: invalid option supplied")
)

// Coord is a grid coordinate; (0,0) is the top-left cell.
type Coord struct {
	Row, Col int
}

// Step returns the coordinate one cell away on side s.
func (c Coord) Step(s tile.Side) Coord {
	dr, dc := s.Offset()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Option configures assembly via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when Assemble is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize assembly.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per placed tile.
	Ctx context.Context

	// OnEnqueue is called when a tile joins the work queue, with the id of
	// the placed tile it will be matched against.
	OnEnqueue func(id, parent int)

	// OnPlace is called after a tile is fixed at a coordinate. Returning an
	// error aborts assembly and propagates that error.
	OnPlace func(id int, at Coord, o tile.Orientation) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(int, int) {},
		OnPlace:   func(int, Coord, tile.Orientation) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
// A nil context is an option violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnEnqueue registers a callback to run when a tile is queued.
func WithOnEnqueue(fn func(id, parent int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnPlace registers a callback to run when a tile is placed; returning
// an error from it stops assembly.
func WithOnPlace(fn func(id int, at Coord, o tile.Orientation) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPlace = fn
		}
	}
}

// Placed is a tile fixed on the grid.
type Placed struct {
	// Tile is the oriented copy; the caller's tile is never mutated.
	Tile *tile.Tile
	// Orientation transforms the input tile into Tile.
	Orientation tile.Orientation
	At          Coord
	// Parent is the id of the tile it was matched against, 0 for the anchor.
	Parent int
	// Depth is the distance from the anchor in placement steps.
	Depth int
}

// Placement maps every grid coordinate of a Size×Size square to an
// oriented tile. It is immutable once Assemble returns.
type Placement struct {
	Size  int
	Cells map[Coord]*Placed
	// Order lists tile ids in placement order, anchor first.
	Order []int
	byID  map[int]*Placed
}

// NewPlacement builds a placement from already oriented tiles, for callers
// that know the arrangement. Order follows the argument order.
// Returns ErrPlacementConflict for out-of-grid, duplicate-cell or
// duplicate-tile entries.
func NewPlacement(size int, tiles ...*Placed) (*Placement, error) {
	p := &Placement{
		Size:  size,
		Cells: make(map[Coord]*Placed, len(tiles)),
		Order: make([]int, 0, len(tiles)),
		byID:  make(map[int]*Placed, len(tiles)),
	}
	for _, pl := range tiles {
		if pl == nil || pl.Tile == nil {
			return nil, fmt.Errorf("%w: nil tile", ErrPlacementConflict)
		}
		if pl.At.Row < 0 || pl.At.Row >= size || pl.At.Col < 0 || pl.At.Col >= size {
			return nil, fmt.Errorf("%w: tile %d at %v outside %d×%d grid",
				ErrPlacementConflict, pl.Tile.ID, pl.At, size, size)
		}
		if p.Cells[pl.At] != nil || p.byID[pl.Tile.ID] != nil {
			return nil, fmt.Errorf("%w: tile %d at %v", ErrPlacementConflict, pl.Tile.ID, pl.At)
		}
		p.Cells[pl.At] = pl
		p.byID[pl.Tile.ID] = pl
		p.Order = append(p.Order, pl.Tile.ID)
	}
	return p, nil
}

// At returns the tile placed at c, or nil.
func (p *Placement) At(c Coord) *Placed {
	return p.Cells[c]
}

// Of returns the placement of tile id, or nil.
func (p *Placement) Of(id int) *Placed {
	return p.byID[id]
}

// IDGrid returns the placed tile ids by row and column.
func (p *Placement) IDGrid() [][]int {
	out := make([][]int, p.Size)
	for r := range out {
		out[r] = make([]int, p.Size)
		for c := range out[r] {
			if pl := p.Cells[Coord{r, c}]; pl != nil {
				out[r][c] = pl.Tile.ID
			}
		}
	}
	return out
}

// Corners returns the ids at the four grid corners, clockwise from the
// top-left.
func (p *Placement) Corners() []int {
	s := p.Size - 1
	ids := make([]int, 0, 4)
	for _, c := range []Coord{{0, 0}, {0, s}, {s, s}, {s, 0}} {
		if pl := p.Cells[c]; pl != nil {
			ids = append(ids, pl.Tile.ID)
		}
	}
	return ids
}

// Complete reports whether every cell of the square holds exactly one tile
// and no tile appears twice.
func (p *Placement) Complete() bool {
	if len(p.Cells) != p.Size*p.Size || len(p.byID) != len(p.Cells) {
		return false
	}
	for r := 0; r < p.Size; r++ {
		for c := 0; c < p.Size; c++ {
			if p.Cells[Coord{r, c}] == nil {
				return false
			}
		}
	}
	return true
}
