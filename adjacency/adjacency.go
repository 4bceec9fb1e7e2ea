package adjacency

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/tilemosaic/tile"
)

// Sentinel errors for adjacency resolution.
var (
	// ErrNoTiles is returned when Resolve receives no tiles.
	ErrNoTiles = errors.New("adjacency: no tiles")
	// ErrDuplicateID is returned when two tiles share an identifier.
	ErrDuplicateID = errors.New("adjacency: duplicate tile id")
	// ErrTooManyNeighbors is returned when a tile matches more than MaxNeighbors tiles.
	ErrTooManyNeighbors = errors.New("adjacency: tile has more than four candidate neighbors")
	// ErrCornerCount is returned when the tile set does not have exactly four corners.
	ErrCornerCount = errors.New("adjacency: tile set does not form a square mosaic")
	// ErrUnknownTile is returned for lookups of ids that were not resolved.
	ErrUnknownTile = errors.New("adjacency: unknown tile id")
)

// MaxNeighbors is the number of sides of a tile.
const MaxNeighbors = 4

// CornerCount is the number of corners of a rectangular mosaic.
const CornerCount = 4

// Kind classifies a tile by its number of candidate neighbors.
type Kind int

// Tile kinds.
const (
	Isolated Kind = iota
	Corner
	Border
	Interior
	Invalid
)

func (k Kind) String() string {
	switch k {
	case Isolated:
		return "isolated"
	case Corner:
		return "corner"
	case Border:
		return "edge"
	case Interior:
		return "interior"
	}
	return "invalid"
}

// Adjacency is the resolved can-neighbor relation of a tile set.
// It is immutable after Resolve returns.
type Adjacency struct {
	ids       []int
	neighbors map[int][]int
	g         *simple.UndirectedGraph
}

// Resolve builds the can-neighbor relation for tiles. It also fills every
// tile's Neighbors slots, in discovery order.
func Resolve(tiles []*tile.Tile) (*Adjacency, error) {
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}
	a := &Adjacency{
		ids:       make([]int, 0, len(tiles)),
		neighbors: make(map[int][]int, len(tiles)),
		g:         simple.NewUndirectedGraph(),
	}
	for _, t := range tiles {
		if _, dup := a.neighbors[t.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, t.ID)
		}
		a.ids = append(a.ids, t.ID)
		a.neighbors[t.ID] = nil
		a.g.AddNode(simple.Node(t.ID))
	}

	for _, t1 := range tiles {
		for _, t2 := range tiles {
			if t1.ID == t2.ID {
				continue
			}
			if !t1.CanNeighbor(t2) {
				continue
			}
			a.neighbors[t1.ID] = append(a.neighbors[t1.ID], t2.ID)
			a.g.SetEdge(a.g.NewEdge(simple.Node(t1.ID), simple.Node(t2.ID)))
		}
		if n := len(a.neighbors[t1.ID]); n > MaxNeighbors {
			return nil, fmt.Errorf("%w: tile %d matches %d tiles %v",
				ErrTooManyNeighbors, t1.ID, n, a.neighbors[t1.ID])
		}
	}

	for _, t := range tiles {
		t.Neighbors = [MaxNeighbors]int{}
		copy(t.Neighbors[:], a.neighbors[t.ID])
	}
	return a, nil
}

// IDs returns the tile ids in input order.
func (a *Adjacency) IDs() []int {
	out := make([]int, len(a.ids))
	copy(out, a.ids)
	return out
}

// Len returns the number of tiles.
func (a *Adjacency) Len() int {
	return len(a.ids)
}

// Has reports whether id was part of the resolved set.
func (a *Adjacency) Has(id int) bool {
	_, ok := a.neighbors[id]
	return ok
}

// Neighbors returns the candidate neighbors of id in discovery order.
func (a *Adjacency) Neighbors(id int) ([]int, error) {
	nbrs, ok := a.neighbors[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTile, id)
	}
	out := make([]int, len(nbrs))
	copy(out, nbrs)
	return out, nil
}

// AreNeighbors reports whether x and y can share a border.
func (a *Adjacency) AreNeighbors(x, y int) bool {
	return a.g.HasEdgeBetween(int64(x), int64(y))
}

// Degree returns the number of candidate neighbors of id, or -1 if id is unknown.
func (a *Adjacency) Degree(id int) int {
	if !a.Has(id) {
		return -1
	}
	return a.g.From(int64(id)).Len()
}

// Classify returns the kind of tile id.
func (a *Adjacency) Classify(id int) Kind {
	switch a.Degree(id) {
	case 0:
		return Isolated
	case 1:
		// a 1-wide strip end; never part of a square mosaic
		return Invalid
	case 2:
		return Corner
	case 3:
		return Border
	case 4:
		return Interior
	}
	return Invalid
}

// Corners returns the ids of tiles with exactly two candidate neighbors, in
// input order. Returns ErrCornerCount unless there are exactly four.
func (a *Adjacency) Corners() ([]int, error) {
	var corners []int
	for _, id := range a.ids {
		if len(a.neighbors[id]) == 2 {
			corners = append(corners, id)
		}
	}
	if len(corners) != CornerCount {
		return corners, fmt.Errorf("%w: found %d corner tiles, want %d",
			ErrCornerCount, len(corners), CornerCount)
	}
	return corners, nil
}

// CornerProduct returns the product of the four corner tile ids.
func (a *Adjacency) CornerProduct() (int, error) {
	corners, err := a.Corners()
	if err != nil {
		return 0, err
	}
	product := 1
	for _, id := range corners {
		product *= id
	}
	return product, nil
}

// Components returns the connected components of the relation. Each
// component is sorted ascending; components are ordered by their smallest id.
func (a *Adjacency) Components() [][]int {
	raw := topo.ConnectedComponents(a.g)
	out := make([][]int, 0, len(raw))
	for _, comp := range raw {
		ids := make([]int, len(comp))
		for i, n := range comp {
			ids[i] = int(n.ID())
		}
		sort.Ints(ids)
		out = append(out, ids)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// IsConnected reports whether every tile is reachable from every other.
func (a *Adjacency) IsConnected() bool {
	return len(topo.ConnectedComponents(a.g)) == 1
}

// Graph exposes the relation as a read-only undirected graph whose node ids
// are tile ids.
func (a *Adjacency) Graph() graph.Undirected {
	return a.g
}
