package scan

import (
	"strings"

	"github.com/katalvlaran/tilemosaic/raster"
)

// SeaMonsterArt is the default stamp.
var SeaMonsterArt = []string{
	"                  # ",
	"#    ##    ##    ###",
	" #  #  #  #  #  #   ",
}

// SeaMonster is the default stamp, parsed from SeaMonsterArt.
var SeaMonster = MustParseStamp(SeaMonsterArt...)

// Stamp is an immutable pattern of required on cells.
type Stamp struct {
	offsets       []Offset
	height, width int
}

// ParseStamp builds a stamp from ASCII art: '#' marks a required on cell,
// any other symbol is a wildcard. The bounding box spans all given rows and
// the longest row. Returns ErrEmptyStamp when no '#' is present.
func ParseStamp(lines ...string) (*Stamp, error) {
	st := &Stamp{height: len(lines)}
	for r, line := range lines {
		line = strings.TrimRight(line, "\r")
		if len(line) > st.width {
			st.width = len(line)
		}
		for c := 0; c < len(line); c++ {
			if line[c] == raster.OnSymbol {
				st.offsets = append(st.offsets, Offset{Row: r, Col: c})
			}
		}
	}
	if len(st.offsets) == 0 {
		return nil, ErrEmptyStamp
	}
	return st, nil
}

// MustParseStamp is like ParseStamp but panics on error.
func MustParseStamp(lines ...string) *Stamp {
	st, err := ParseStamp(lines...)
	if err != nil {
		panic(err)
	}
	return st
}

// Offsets returns a copy of the required cells.
func (s *Stamp) Offsets() []Offset {
	out := make([]Offset, len(s.offsets))
	copy(out, s.offsets)
	return out
}

// Size returns the number of required on cells.
func (s *Stamp) Size() int {
	return len(s.offsets)
}

// Bounds returns the bounding box height and width.
func (s *Stamp) Bounds() (h, w int) {
	return s.height, s.width
}

// matchAt reports whether every required cell lands on an on pixel when the
// stamp's top-left corner is at (row, col). The caller keeps the box in bounds.
func (s *Stamp) matchAt(img *raster.Raster, row, col int) bool {
	for _, o := range s.offsets {
		if !img.At(row+o.Row, col+o.Col) {
			return false
		}
	}
	return true
}
