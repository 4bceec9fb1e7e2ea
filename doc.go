// Package tilemosaic reassembles a square image that was cut into square
// tiles, each tile independently rotated and possibly mirrored, and then
// hunts the rebuilt image for a fixed pixel pattern.
//
// 🚀 What is tilemosaic?
//
//	A small pipeline of focused packages:
//		• raster    – square boolean pixel grids with rotate/mirror views
//		• tile      – tiles, edge fingerprints, the eight orientations, parsing
//		• adjacency – which tiles share an edge, corners, connectivity (gonum)
//		• assemble  – BFS placement from an anchor corner with hooks
//		• stitch    – border stripping into one composite image
//		• scan      – stamp search over rotated (and optionally mirrored) views
//		• mosaic    – the end-to-end facade with structured logging
//
// Under the hood every tile border is read in the same direction, so two
// tiles are neighbors when a border of one equals a border of the other,
// read forward or reversed. Nothing more is needed to find the four corner
// tiles; a full assembly is needed for the stamp search.
//
// Quick ASCII example (2×2 grid, A is the anchor):
//
//	    A───B
//	    │   │
//	    C───D
//
// A has exactly two borders no other tile shares; it is turned until those
// face up and left, and every other tile is placed by matching the border
// it shares with an already placed neighbor.
//
//	go get github.com/katalvlaran/tilemosaic
package tilemosaic
