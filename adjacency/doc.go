// Package adjacency discovers which tiles can share a border.
//
// What:
//
//   - Resolve compares every ordered pair of distinct tiles. B is recorded
//     as a neighbor of A when any of A's eight edge fingerprints equals any
//     of B's. The relation is symmetric by construction.
//   - Tiles are classified by neighbor count: 2 = corner, 3 = edge,
//     4 = interior.
//   - The relation is also held as an undirected gonum graph so callers can
//     ask topology questions (degree, connected components).
//
// Determinism:
//
//	Neighbor lists follow the input order of the tiles, so the same input
//	always yields the same lists and the same corner order.
//
// Complexity (N = number of tiles, D = tile size):
//
//   - Resolve: O(N²·D) time, O(N) memory.
//
// Errors:
//
//   - ErrNoTiles:          empty input.
//   - ErrDuplicateID:      two tiles share an identifier.
//   - ErrTooManyNeighbors: a tile matched more than four others.
//   - ErrCornerCount:      Corners found a count other than four.
package adjacency
