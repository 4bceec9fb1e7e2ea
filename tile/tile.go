package tile

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tilemosaic/raster"
)

// Tile is a square pixel grid with a unique positive identifier and up to
// four neighbor slots (0 marks an empty slot). Geometric transforms change
// pixel content only; ID and Neighbors are never touched by them.
type Tile struct {
	ID        int
	Neighbors [4]int
	grid      *raster.Raster
}

// New builds a tile from a pixel grid. The grid is cloned.
// Returns ErrInvalidID for id < 1 and ErrTileTooSmall for grids below MinSize.
func New(id int, grid *raster.Raster) (*Tile, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	if grid == nil || grid.Size() < MinSize {
		return nil, ErrTileTooSmall
	}
	return &Tile{ID: id, grid: grid.Clone()}, nil
}

// FromLines builds a tile from '#'/'.' rows.
func FromLines(id int, lines ...string) (*Tile, error) {
	g, err := raster.Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("tile %d: %w", id, err)
	}
	return New(id, g)
}

// MustFromLines is like FromLines but panics on error. Intended for tests
// and fixed fixtures.
func MustFromLines(id int, lines ...string) *Tile {
	t, err := FromLines(id, lines...)
	if err != nil {
		panic(err)
	}
	return t
}

// Size returns the tile dimension D.
func (t *Tile) Size() int {
	return t.grid.Size()
}

// Grid returns the tile's current pixel grid. Callers must not mutate it.
func (t *Tile) Grid() *raster.Raster {
	return t.grid
}

// Interior returns a copy of the pixel grid without its outermost ring.
func (t *Tile) Interior() *raster.Raster {
	in, _ := t.grid.SubRaster(1, 1, t.grid.Size()-2)
	return in
}

// Edges returns the four borders in Top, Bottom, Left, Right order.
// With flipped set, every edge is returned reversed.
func (t *Tile) Edges(flipped bool) [4]Edge {
	n := t.grid.Size()
	edges := [4]Edge{
		edgeOf(t.grid.Row(0)),
		edgeOf(t.grid.Row(n - 1)),
		edgeOf(t.grid.Column(0)),
		edgeOf(t.grid.Column(n - 1)),
	}
	if flipped {
		for i := range edges {
			edges[i] = edges[i].Reverse()
		}
	}
	return edges
}

// Edge returns the unflipped border on side s.
func (t *Tile) Edge(s Side) Edge {
	return t.Edges(false)[s]
}

// Fingerprints returns all eight edge fingerprints: the four borders
// followed by their reversals.
func (t *Tile) Fingerprints() [8]Edge {
	var out [8]Edge
	fwd, rev := t.Edges(false), t.Edges(true)
	copy(out[:4], fwd[:])
	copy(out[4:], rev[:])
	return out
}

// CanNeighbor reports whether some fingerprint of t equals some fingerprint
// of other. Comparing t's forward and reversed edges against other's forward
// edges covers every relative orientation.
func (t *Tile) CanNeighbor(other *Tile) bool {
	_, _, ok := t.SharedEdge(other)
	return ok
}

// SharedEdge finds the first pair of sides through which t and other can
// touch: mine is t's side, theirs is other's side. Sides of other are
// scanned in Edges order, and for each the unflipped edges of t are tried
// before the flipped ones.
func (t *Tile) SharedEdge(other *Tile) (mine, theirs Side, ok bool) {
	fwd, rev := t.Edges(false), t.Edges(true)
	for j, o := range other.Edges(false) {
		for i := range fwd {
			if fwd[i] == o || rev[i] == o {
				return Side(i), Side(j), true
			}
		}
	}
	return 0, 0, false
}

// Rotate turns the pixel grid 90° counter-clockwise in place.
func (t *Tile) Rotate() {
	t.grid.Rotate()
}

// MirrorHorizontal reflects the pixel grid about its horizontal axis in place.
func (t *Tile) MirrorHorizontal() {
	t.grid.MirrorHorizontal()
}

// MirrorVertical reflects the pixel grid about its vertical axis in place.
func (t *Tile) MirrorVertical() {
	t.grid.MirrorVertical()
}

// Apply transforms the tile in place into orientation o, relative to its
// current content.
func (t *Tile) Apply(o Orientation) {
	if o.Flipped {
		t.grid.MirrorVertical()
	}
	for i := 0; i < ((o.Turns%4)+4)%4; i++ {
		t.grid.Rotate()
	}
}

// Orient returns a transformed copy of t; t itself is unchanged.
func (t *Tile) Orient(o Orientation) *Tile {
	c := t.Clone()
	c.Apply(o)
	return c
}

// Clone returns a deep copy of t, neighbor slots included.
func (t *Tile) Clone() *Tile {
	return &Tile{ID: t.ID, Neighbors: t.Neighbors, grid: t.grid.Clone()}
}

// String renders the tile in its input format.
func (t *Tile) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tile %d:\n", t.ID)
	sb.WriteString(t.grid.String())
	return sb.String()
}

func edgeOf(px []raster.Pixel) Edge {
	b := make([]byte, len(px))
	for i, p := range px {
		b[i] = p.Symbol()
	}
	return Edge(b)
}
