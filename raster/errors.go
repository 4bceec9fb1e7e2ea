package raster

import "errors"

var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("raster: input grid must have at least one row and one column")
	// ErrNonSquare indicates a row whose length differs from the number of rows.
	ErrNonSquare = errors.New("raster: grid must be square")
	// ErrUnknownPixel indicates a symbol that is neither On nor Off.
	ErrUnknownPixel = errors.New("raster: unknown pixel symbol")
	// ErrWindow indicates a SubRaster window outside the grid.
	ErrWindow = errors.New("raster: window out of bounds")
)
