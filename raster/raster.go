package raster

import (
	"fmt"
	"strings"
)

// Pixel is a single binary cell.
type Pixel bool

// Pixel values.
const (
	Off Pixel = false
	On  Pixel = true
)

// Pixel symbols used by Parse and String.
const (
	OnSymbol  = '#'
	OffSymbol = '.'
)

// Symbol returns the text symbol of p.
func (p Pixel) Symbol() byte {
	if p {
		return OnSymbol
	}
	return OffSymbol
}

// PixelOf maps a text symbol to a Pixel. ok is false for unknown symbols.
func PixelOf(b byte) (p Pixel, ok bool) {
	switch b {
	case OnSymbol:
		return On, true
	case OffSymbol:
		return Off, true
	}
	return Off, false
}

// Raster is a square grid of pixels. Cells are stored row-major and
// addressed as (row, col) with (0,0) at the top-left corner.
type Raster struct {
	size  int
	cells []Pixel
}

// New returns an all-off raster of the given size.
// Returns ErrEmptyGrid if size < 1.
func New(size int) (*Raster, error) {
	if size < 1 {
		return nil, ErrEmptyGrid
	}
	return &Raster{size: size, cells: make([]Pixel, size*size)}, nil
}

// FromPixels constructs a Raster from a non-empty, square 2D slice.
// It deep-copies the input so later changes to values are not observed.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonSquare if any row length differs from the row count.
// Complexity: O(n²) time and memory.
func FromPixels(values [][]Pixel) (*Raster, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(values)
	for _, row := range values {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}
	r := &Raster{size: n, cells: make([]Pixel, n*n)}
	for y := 0; y < n; y++ {
		copy(r.cells[y*n:(y+1)*n], values[y])
	}
	return r, nil
}

// Parse builds a Raster from text rows of '#' (on) and '.' (off).
// Trailing carriage returns are ignored.
func Parse(lines []string) (*Raster, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	values := make([][]Pixel, len(lines))
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make([]Pixel, len(line))
		for x := 0; x < len(line); x++ {
			p, ok := PixelOf(line[x])
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d, col %d", ErrUnknownPixel, line[x], y, x)
			}
			row[x] = p
		}
		values[y] = row
	}
	return FromPixels(values)
}

// MustParse is like Parse but panics on error. Intended for fixed literals.
func MustParse(lines ...string) *Raster {
	r, err := Parse(lines)
	if err != nil {
		panic(err)
	}
	return r
}

// Size returns the side length of the raster.
func (r *Raster) Size() int {
	return r.size
}

// InBounds reports whether (row, col) lies within the raster.
// Complexity: O(1).
func (r *Raster) InBounds(row, col int) bool {
	return row >= 0 && row < r.size && col >= 0 && col < r.size
}

// At returns the pixel at (row, col). The caller must stay in bounds.
func (r *Raster) At(row, col int) Pixel {
	return r.cells[r.index(row, col)]
}

// Set assigns the pixel at (row, col). The caller must stay in bounds.
func (r *Raster) Set(row, col int, p Pixel) {
	r.cells[r.index(row, col)] = p
}

// Row returns a copy of row y, left to right.
func (r *Raster) Row(y int) []Pixel {
	out := make([]Pixel, r.size)
	copy(out, r.cells[y*r.size:(y+1)*r.size])
	return out
}

// Column returns a copy of column x, top to bottom.
func (r *Raster) Column(x int) []Pixel {
	out := make([]Pixel, r.size)
	for y := 0; y < r.size; y++ {
		out[y] = r.cells[r.index(y, x)]
	}
	return out
}

// Rotate turns the raster 90° counter-clockwise in place:
// the right column becomes the top row.
func (r *Raster) Rotate() {
	n := r.size
	out := make([]Pixel, len(r.cells))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = r.cells[j*n+(n-1-i)]
		}
	}
	r.cells = out
}

// MirrorHorizontal reflects the raster about its horizontal axis in place
// (top row becomes bottom row).
func (r *Raster) MirrorHorizontal() {
	n := r.size
	for top, bot := 0, n-1; top < bot; top, bot = top+1, bot-1 {
		for x := 0; x < n; x++ {
			i, j := r.index(top, x), r.index(bot, x)
			r.cells[i], r.cells[j] = r.cells[j], r.cells[i]
		}
	}
}

// MirrorVertical reflects the raster about its vertical axis in place
// (left column becomes right column).
func (r *Raster) MirrorVertical() {
	n := r.size
	for y := 0; y < n; y++ {
		row := r.cells[y*n : (y+1)*n]
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}

// Clone returns a deep copy of r.
func (r *Raster) Clone() *Raster {
	cells := make([]Pixel, len(r.cells))
	copy(cells, r.cells)
	return &Raster{size: r.size, cells: cells}
}

// Equal reports whether r and o have the same size and pixels.
func (r *Raster) Equal(o *Raster) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.size != o.size {
		return false
	}
	for i := range r.cells {
		if r.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// CountOn returns the number of on pixels.
func (r *Raster) CountOn() int {
	n := 0
	for _, p := range r.cells {
		if p {
			n++
		}
	}
	return n
}

// SubRaster copies the size×size window whose top-left corner is (row, col).
// Returns ErrWindow if the window does not fit.
func (r *Raster) SubRaster(row, col, size int) (*Raster, error) {
	if size < 1 || !r.InBounds(row, col) || !r.InBounds(row+size-1, col+size-1) {
		return nil, fmt.Errorf("%w: %d×%d at (%d,%d) in %d×%d",
			ErrWindow, size, size, row, col, r.size, r.size)
	}
	out := &Raster{size: size, cells: make([]Pixel, size*size)}
	for y := 0; y < size; y++ {
		src := r.index(row+y, col)
		copy(out.cells[y*size:(y+1)*size], r.cells[src:src+size])
	}
	return out, nil
}

// Lines renders the raster as text rows of '#' and '.'.
func (r *Raster) Lines() []string {
	lines := make([]string, r.size)
	buf := make([]byte, r.size)
	for y := 0; y < r.size; y++ {
		for x := 0; x < r.size; x++ {
			buf[x] = r.At(y, x).Symbol()
		}
		lines[y] = string(buf)
	}
	return lines
}

// String renders the raster as newline-separated rows.
func (r *Raster) String() string {
	return strings.Join(r.Lines(), "\n")
}

// index maps (row, col) to a row-major index: row*size + col.
func (r *Raster) index(row, col int) int {
	return row*r.size + col
}

// Coordinate converts a row-major index back to (row, col).
func (r *Raster) Coordinate(idx int) (row, col int) {
	return idx / r.size, idx % r.size
}
