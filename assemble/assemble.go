package assemble

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tilemosaic/adjacency"
	"github.com/katalvlaran/tilemosaic/tile"
)

// state tracks a tile through Unplaced → Queued → Placed. Transitions only
// move forward.
type state int

const (
	unplaced state = iota
	queued
	placed
)

// task pairs a queued tile with the placed tile it must match.
type task struct {
	id     int
	parent int
	depth  int
}

// walker encapsulates mutable assembly state.
type walker struct {
	adj    *adjacency.Adjacency
	opts   Options
	tiles  map[int]*tile.Tile
	status map[int]state
	queue  []task
	res    *Placement
}

// Assemble places every tile on a square grid so that all shared borders
// match, applying any number of functional Options. tiles are not mutated;
// the placement holds oriented copies.
//
// The first corner reported by adj is the anchor. It is turned until its two
// unmatched edges face top and left and is placed at (0,0). Its neighbors are
// queued; each dequeued tile is tried in all eight orientations until one of
// its edges lines up with the opposite side of its parent, which fixes its
// coordinate. Newly reachable tiles are queued in discovery order.
//
// Returns ErrNilAdjacency, ErrOptionViolation, ErrTileSet, ErrNotSquare,
// adjacency.ErrCornerCount, ErrAnchorOrientation, ErrOrientation,
// ErrPlacementConflict, ErrIncomplete, a context error, or a wrapped
// OnPlace hook error.
func Assemble(tiles []*tile.Tile, adj *adjacency.Adjacency, opts ...Option) (*Placement, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	byID := make(map[int]*tile.Tile, len(tiles))
	for _, t := range tiles {
		if !adj.Has(t.ID) {
			return nil, fmt.Errorf("%w: tile %d was not resolved", ErrTileSet, t.ID)
		}
		if _, dup := byID[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate tile %d", ErrTileSet, t.ID)
		}
		byID[t.ID] = t
	}
	if len(byID) != adj.Len() {
		return nil, fmt.Errorf("%w: %d tiles, %d resolved", ErrTileSet, len(byID), adj.Len())
	}

	side, ok := squareSide(len(tiles))
	if !ok {
		return nil, fmt.Errorf("%w: %d tiles", ErrNotSquare, len(tiles))
	}
	corners, err := adj.Corners()
	if err != nil {
		return nil, err
	}
	if !adj.IsConnected() {
		return nil, fmt.Errorf("%w: tile set splits into %d groups",
			ErrIncomplete, len(adj.Components()))
	}

	w := &walker{
		adj:    adj,
		opts:   o,
		tiles:  byID,
		status: make(map[int]state, len(tiles)),
		queue:  make([]task, 0, len(tiles)),
		res: &Placement{
			Size:  side,
			Cells: make(map[Coord]*Placed, len(tiles)),
			Order: make([]int, 0, len(tiles)),
			byID:  make(map[int]*Placed, len(tiles)),
		},
	}

	anchor, orient, err := w.orientAnchor(corners[0])
	if err != nil {
		return nil, err
	}
	if err := w.place(&Placed{Tile: anchor, Orientation: orient}); err != nil {
		return nil, err
	}
	if err := w.enqueueNeighbors(anchor.ID, 0); err != nil {
		return nil, err
	}
	if err := w.loop(); err != nil {
		return nil, err
	}

	if !w.res.Complete() {
		var missing []int
		for _, id := range adj.IDs() {
			if w.status[id] != placed {
				missing = append(missing, id)
			}
		}
		return nil, fmt.Errorf("%w: placed %d of %d, missing %v",
			ErrIncomplete, len(w.res.Order), len(tiles), missing)
	}
	return w.res, nil
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		pl, err := w.match(item)
		if err != nil {
			return err
		}
		if err := w.place(pl); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item.id, item.depth); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() task {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// enqueueNeighbors queues every neighbor of id that is neither placed nor
// already queued.
func (w *walker) enqueueNeighbors(id, depth int) error {
	nbrs, err := w.adj.Neighbors(id)
	if err != nil {
		return err
	}
	for _, nbr := range nbrs {
		if w.status[nbr] != unplaced {
			continue
		}
		w.status[nbr] = queued
		w.opts.OnEnqueue(nbr, id)
		w.queue = append(w.queue, task{id: nbr, parent: id, depth: depth + 1})
	}
	return nil
}

// place records pl on the grid and calls OnPlace.
func (w *walker) place(pl *Placed) error {
	if pl.At.Row < 0 || pl.At.Row >= w.res.Size || pl.At.Col < 0 || pl.At.Col >= w.res.Size {
		return fmt.Errorf("%w: tile %d at %v outside %d×%d grid",
			ErrPlacementConflict, pl.Tile.ID, pl.At, w.res.Size, w.res.Size)
	}
	if prev := w.res.Cells[pl.At]; prev != nil {
		return fmt.Errorf("%w: tile %d at %v already holds tile %d",
			ErrPlacementConflict, pl.Tile.ID, pl.At, prev.Tile.ID)
	}
	w.res.Cells[pl.At] = pl
	w.res.byID[pl.Tile.ID] = pl
	w.res.Order = append(w.res.Order, pl.Tile.ID)
	w.status[pl.Tile.ID] = placed

	if err := w.opts.OnPlace(pl.Tile.ID, pl.At, pl.Orientation); err != nil {
		return fmt.Errorf("assemble: OnPlace error at tile %d: %w", pl.Tile.ID, err)
	}
	return nil
}

// match tries the eight orientations of the queued tile until one of its
// edges equals the opposite edge of the parent.
func (w *walker) match(item task) (*Placed, error) {
	parent := w.res.byID[item.parent]
	base := w.tiles[item.id]
	for _, o := range tile.Orientations() {
		cand := base.Orient(o)
		if s, ok := fits(cand, parent.Tile); ok {
			return &Placed{
				Tile:        cand,
				Orientation: o,
				At:          parent.At.Step(s.Opposite()),
				Parent:      parent.Tile.ID,
				Depth:       item.depth,
			}, nil
		}
	}
	return nil, fmt.Errorf("%w: tile %d against tile %d at %v",
		ErrOrientation, item.id, item.parent, parent.At)
}

// fits reports the side of cand that touches parent when cand's edge on
// that side equals parent's edge on the opposite side.
func fits(cand, parent *tile.Tile) (tile.Side, bool) {
	ce, pe := cand.Edges(false), parent.Edges(false)
	for _, s := range []tile.Side{tile.Left, tile.Right, tile.Top, tile.Bottom} {
		if ce[s] == pe[s.Opposite()] {
			return s, true
		}
	}
	return 0, false
}

// orientAnchor turns corner id until its two unmatched edges are its top
// and left sides.
func (w *walker) orientAnchor(id int) (*tile.Tile, tile.Orientation, error) {
	others := make(map[tile.Edge]bool)
	for oid, t := range w.tiles {
		if oid == id {
			continue
		}
		for _, e := range t.Fingerprints() {
			others[e] = true
		}
	}

	base := w.tiles[id]
	for turns := 0; turns < 4; turns++ {
		o := tile.Orientation{Turns: turns}
		t := base.Orient(o)
		var unique []tile.Side
		for s, e := range t.Edges(false) {
			if !others[e] {
				unique = append(unique, tile.Side(s))
			}
		}
		if len(unique) != 2 {
			return nil, o, fmt.Errorf("%w: tile %d has %d unmatched edges, want 2",
				ErrAnchorOrientation, id, len(unique))
		}
		if unique[0] == tile.Top && unique[1] == tile.Left {
			return t, o, nil
		}
	}
	return nil, tile.Identity, fmt.Errorf("%w: tile %d unmatched edges are not adjacent",
		ErrAnchorOrientation, id)
}

// squareSide returns the integer square root of n when n is a perfect
// square greater than one.
func squareSide(n int) (int, bool) {
	if n < 4 {
		return 0, false
	}
	s := int(math.Sqrt(float64(n)))
	for s*s > n {
		s--
	}
	for (s+1)*(s+1) <= n {
		s++
	}
	return s, s*s == n
}
