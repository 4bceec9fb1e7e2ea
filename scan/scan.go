package scan

import (
	"fmt"

	"github.com/katalvlaran/tilemosaic/raster"
)

// Scan counts stamp occurrences in img, applying any number of functional
// Options. img is not modified; views are rotated copies. Finding nothing is
// not an error: Roughness then equals the image's on-pixel count.
//
// Returns ErrNilImage, ErrEmptyStamp or ErrOptionViolation.
func Scan(img *raster.Raster, st *Stamp, opts ...Option) (*Result, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if st == nil || st.Size() == 0 {
		return nil, ErrEmptyStamp
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	on := img.CountOn()
	res := &Result{OnPixels: on, Roughness: on, View: img.Clone()}

	passes := []bool{false}
	if o.MirrorSearch {
		passes = append(passes, true)
	}
	for _, mirrored := range passes {
		view := img.Clone()
		if mirrored {
			view.MirrorVertical()
		}
		for turn := 0; turn < o.Rotations; turn++ {
			if turn > 0 {
				view.Rotate()
			}
			positions := st.findAll(view)
			if len(positions) == 0 {
				continue
			}
			res.Rotation = turn
			res.Mirrored = mirrored
			res.Matches = len(positions)
			res.Positions = positions
			res.Roughness = on - len(positions)*st.Size()
			res.View = view
			return res, nil
		}
	}
	return res, nil
}

// findAll returns the top-left corner of every placement of st in view.
func (s *Stamp) findAll(view *raster.Raster) []Position {
	n := view.Size()
	var out []Position
	for r := 0; r+s.height <= n; r++ {
		for c := 0; c+s.width <= n; c++ {
			if s.matchAt(view, r, c) {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// Covered returns a copy of the result's view in which only pixels covered
// by some match remain on.
func (r *Result) Covered(st *Stamp) (*raster.Raster, error) {
	if r.View == nil {
		return nil, ErrNilImage
	}
	out, err := raster.New(r.View.Size())
	if err != nil {
		return nil, fmt.Errorf("scan: covered view: %w", err)
	}
	for _, p := range r.Positions {
		for _, o := range st.offsets {
			out.Set(p.Row+o.Row, p.Col+o.Col, raster.On)
		}
	}
	return out, nil
}
