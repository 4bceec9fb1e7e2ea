// Package assemble places oriented tiles on a square grid so that every
// shared border matches pixel for pixel.
//
// What
//
//   - Picks the first corner of an adjacency.Adjacency as the anchor and turns
//     it until its two unmatched edges face top and left, then fixes it at (0,0).
//   - Expands a FIFO frontier of (tile, parent) tasks. Each tile is tried in
//     its eight orientations until one edge equals the opposite edge of the
//     already placed parent:
//   - candidate left   ↔ parent right  → one column right
//   - candidate right  ↔ parent left   → one column left
//   - candidate top    ↔ parent bottom → one row down
//   - candidate bottom ↔ parent top    → one row up
//   - Tiles move Unplaced → Queued → Placed and never back.
//   - Returns a Placement: coordinate → oriented copy, orientation, parent and depth.
//
// Chirality
//
//	The anchor fixes which edges face top and left, not which of the two
//	mirror-image solutions is produced. Both are valid reconstructions.
//
// Determinism
//
//	Neighbors are queued in adjacency discovery order and orientations are
//	tried in tile.Orientations order, so a given input always yields the same
//	placement.
//
// Complexity (N = tiles, D = tile size)
//
//   - Time:   O(N·8·D²)   (eight oriented copies per placed tile)
//   - Memory: O(N·D²)     (oriented copies held by the placement)
//
// Usage
//
//	adj, err := adjacency.Resolve(tiles)
//	if err != nil { /* ... */ }
//	p, err := assemble.Assemble(tiles, adj,
//	    assemble.WithContext(ctx),
//	    assemble.WithOnPlace(func(id int, at assemble.Coord, o tile.Orientation) error {
//	        return nil
//	    }),
//	)
//
// Errors
//
//   - ErrNilAdjacency, ErrOptionViolation, ErrTileSet for bad arguments.
//   - ErrNotSquare if the tile count is not a perfect square above one.
//   - adjacency.ErrCornerCount if the relation does not have four corners.
//   - ErrAnchorOrientation, ErrOrientation, ErrPlacementConflict, ErrIncomplete
//     for tile sets that do not form a consistent mosaic.
//   - ctx.Err() on cancellation, or a wrapped OnPlace error.
package assemble
