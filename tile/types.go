// Package tile defines square image tiles, their edge fingerprints and the
// eight orientations a tile can be placed in.
package tile

import (
	"errors"
	"fmt"
)

// Sentinel errors for tile construction and parsing.
var (
	// ErrNoTiles indicates the input contained no tile records.
	ErrNoTiles = errors.New("tile: no tiles in input")
	// ErrMalformedHeader indicates a record whose first line is not "Tile <id>:".
	ErrMalformedHeader = errors.New("tile: malformed tile header")
	// ErrUnknownPixel indicates a pixel symbol other than '#' or '.'.
	ErrUnknownPixel = errors.New("tile: unknown pixel symbol")
	// ErrDimension indicates a non-square tile or a size differing from the first tile.
	ErrDimension = errors.New("tile: wrong tile dimensions")
	// ErrTileTooSmall indicates a tile with no interior left after border removal.
	ErrTileTooSmall = errors.New("tile: tile must be at least 3×3")
	// ErrDuplicateID indicates two records share one identifier.
	ErrDuplicateID = errors.New("tile: duplicate tile id")
	// ErrInvalidID indicates a non-positive identifier; 0 marks an empty neighbor slot.
	ErrInvalidID = errors.New("tile: tile id must be positive")
)

// MinSize is the smallest tile dimension that still has an interior.
const MinSize = 3

// Side names one of the four borders of a tile. The numeric order matches
// the order of Edges.
type Side int

// Sides in Edges order.
const (
	Top Side = iota
	Bottom
	Left
	Right
)

// Sides lists all sides in Edges order.
var Sides = [4]Side{Top, Bottom, Left, Right}

// Opposite returns the side facing s across a shared border.
func (s Side) Opposite() Side {
	switch s {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	default:
		return Left
	}
}

// Offset returns the (row, col) step from a tile to the neighbor on side s.
func (s Side) Offset() (dr, dc int) {
	switch s {
	case Top:
		return -1, 0
	case Bottom:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Edge is a boundary fingerprint: the border pixels of one side rendered as
// '#'/'.' symbols. Horizontal edges read left to right, vertical edges top to
// bottom.
type Edge string

// Reverse returns the edge read in the opposite direction.
func (e Edge) Reverse() Edge {
	b := []byte(e)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return Edge(b)
}

// Orientation describes one of the eight placements of a tile: an optional
// mirror about the vertical axis followed by Turns counter-clockwise quarter
// turns.
type Orientation struct {
	Turns   int
	Flipped bool
}

// Identity is the orientation that leaves a tile unchanged.
var Identity = Orientation{}

// Orientations returns all eight orientations: the four rotations first,
// then the four rotations of the mirrored tile.
func Orientations() []Orientation {
	out := make([]Orientation, 0, 8)
	for _, flipped := range []bool{false, true} {
		for turns := 0; turns < 4; turns++ {
			out = append(out, Orientation{Turns: turns, Flipped: flipped})
		}
	}
	return out
}

func (o Orientation) String() string {
	if o.Flipped {
		return fmt.Sprintf("mirror+rot%d", o.Turns*90)
	}
	return fmt.Sprintf("rot%d", o.Turns*90)
}
