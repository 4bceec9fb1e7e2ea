// Package raster provides a square grid of binary pixels with the geometric
// transforms needed to reorient tiles and composite images.
//
// What:
//
//   - Raster wraps a Size×Size grid of Pixel values (on/off), row-major.
//   - Rotate turns the grid 90° counter-clockwise in place.
//   - MirrorHorizontal reverses row order; MirrorVertical reverses every row.
//   - SubRaster crops a square window; CountOn counts lit pixels.
//
// Invariants:
//
//   - Four Rotate calls, or two calls of the same mirror, restore the grid.
//   - Transforms never change Size or the number of on pixels.
//
// Complexity:
//
//   - Rotate, MirrorHorizontal, MirrorVertical, Clone, CountOn: O(n²).
//   - At, Set, InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonSquare: a row length differs from the row count.
//   - ErrUnknownPixel: a text row contains a symbol other than '#' or '.'.
//   - ErrWindow: SubRaster window lies outside the grid.
package raster
