// Package mosaictest generates interlocking tile sets with a known solution.
//
// A generated mosaic is cut from a ground-truth image. Every border between
// two tiles, and every outer border, carries its own code so that no two
// distinct borders match in either direction and no border reads the same
// reversed. Tiles are then scrambled into random orientations and shuffled.
// Generation is deterministic for a fixed seed.
package mosaictest

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tilemosaic/raster"
	"github.com/katalvlaran/tilemosaic/tile"
)

// Sentinel errors for fixture generation.
var (
	// ErrTooFewTiles indicates a side length below 2.
	ErrTooFewTiles = errors.New("mosaictest: side must be at least 2")
	// ErrCodeSpace indicates the tile size cannot encode enough unique borders.
	ErrCodeSpace = errors.New("mosaictest: tile size too small for unique border codes")
	// ErrImageSize indicates an image whose size is not side·(size-2).
	ErrImageSize = errors.New("mosaictest: image size does not match tile layout")
)

// Config controls fixture generation.
type Config struct {
	// Side is the number of tiles per row and column (S).
	Side int
	// TileSize is the tile dimension D, borders included.
	TileSize int
	// Seed drives ids, interior noise, orientations and shuffling.
	Seed int64
	// Density is the probability of an on pixel in generated interiors.
	Density float64
	// Scramble applies a random orientation to every tile.
	Scramble bool
	// Shuffle randomizes the order of the returned tiles.
	Shuffle bool
}

// DefaultConfig returns a 3×3 mosaic of 10×10 tiles, scrambled and shuffled.
func DefaultConfig() Config {
	return Config{Side: 3, TileSize: 10, Seed: 42, Density: 0.5, Scramble: true, Shuffle: true}
}

// Mosaic is a generated tile set and its ground truth.
type Mosaic struct {
	Tiles    []*tile.Tile
	Side     int
	TileSize int
	// Layout holds the ids by (row, col) in the ground-truth arrangement.
	Layout [][]int
	// Image is the border-stripped composite in ground-truth orientation.
	Image *raster.Raster
	// Applied records the orientation each tile was scrambled with.
	Applied map[int]tile.Orientation
}

// Corners returns the four corner ids of the ground truth, clockwise from
// the top-left.
func (m *Mosaic) Corners() []int {
	s := m.Side - 1
	return []int{m.Layout[0][0], m.Layout[0][s], m.Layout[s][s], m.Layout[s][0]}
}

// CornerProduct returns the product of the corner ids.
func (m *Mosaic) CornerProduct() int {
	p := 1
	for _, id := range m.Corners() {
		p *= id
	}
	return p
}

// Generate builds a mosaic over a random interior image.
func Generate(cfg Config) (*Mosaic, error) {
	if cfg.Side < 2 {
		return nil, ErrTooFewTiles
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	n := cfg.Side * (cfg.TileSize - 2)
	if n < 1 {
		return nil, fmt.Errorf("%w: tile size %d", ErrCodeSpace, cfg.TileSize)
	}
	img, _ := raster.New(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			img.Set(y, x, raster.Pixel(rng.Float64() < cfg.Density))
		}
	}
	return cut(img, cfg, rng)
}

// FromImage builds a mosaic whose ground-truth composite is img.
func FromImage(img *raster.Raster, cfg Config) (*Mosaic, error) {
	if cfg.Side < 2 {
		return nil, ErrTooFewTiles
	}
	if img.Size() != cfg.Side*(cfg.TileSize-2) {
		return nil, fmt.Errorf("%w: %d != %d·(%d-2)", ErrImageSize, img.Size(), cfg.Side, cfg.TileSize)
	}
	return cut(img, cfg, rand.New(rand.NewSource(cfg.Seed)))
}

// MustGenerate is like Generate but panics on error.
func MustGenerate(cfg Config) *Mosaic {
	m, err := Generate(cfg)
	if err != nil {
		panic(err)
	}
	return m
}

func cut(img *raster.Raster, cfg Config, rng *rand.Rand) (*Mosaic, error) {
	s, d := cfg.Side, cfg.TileSize
	width := d - 5
	borders := 2 * s * (s + 1)
	if width < 1 || borders > 1<<width {
		return nil, fmt.Errorf("%w: %d borders, size %d", ErrCodeSpace, borders, d)
	}

	// horiz[r][c] is the border above tile row r in column c (r = s is the
	// bottom edge); vert[r][c] is the border left of column c in row r.
	code := 0
	horiz := make([][][]raster.Pixel, s+1)
	for r := range horiz {
		horiz[r] = make([][]raster.Pixel, s)
		for c := range horiz[r] {
			horiz[r][c] = border(code, d)
			code++
		}
	}
	vert := make([][][]raster.Pixel, s)
	for r := range vert {
		vert[r] = make([][]raster.Pixel, s+1)
		for c := range vert[r] {
			vert[r][c] = border(code, d)
			code++
		}
	}

	ids := uniqueIDs(rng, s*s)
	m := &Mosaic{
		Side:     s,
		TileSize: d,
		Layout:   make([][]int, s),
		Image:    img.Clone(),
		Applied:  make(map[int]tile.Orientation, s*s),
	}
	inner := d - 2
	for r := 0; r < s; r++ {
		m.Layout[r] = make([]int, s)
		for c := 0; c < s; c++ {
			px := make([][]raster.Pixel, d)
			for y := range px {
				px[y] = make([]raster.Pixel, d)
			}
			for i := 0; i < d; i++ {
				px[0][i] = horiz[r][c][i]
				px[d-1][i] = horiz[r+1][c][i]
				px[i][0] = vert[r][c][i]
				px[i][d-1] = vert[r][c+1][i]
			}
			for y := 0; y < inner; y++ {
				for x := 0; x < inner; x++ {
					px[y+1][x+1] = img.At(r*inner+y, c*inner+x)
				}
			}
			g, err := raster.FromPixels(px)
			if err != nil {
				return nil, err
			}
			t, err := tile.New(ids[r*s+c], g)
			if err != nil {
				return nil, err
			}
			o := tile.Identity
			if cfg.Scramble {
				o = tile.Orientation{Turns: rng.Intn(4), Flipped: rng.Intn(2) == 1}
				t.Apply(o)
			}
			m.Applied[t.ID] = o
			m.Layout[r][c] = t.ID
			m.Tiles = append(m.Tiles, t)
		}
	}
	if cfg.Shuffle {
		rng.Shuffle(len(m.Tiles), func(i, j int) { m.Tiles[i], m.Tiles[j] = m.Tiles[j], m.Tiles[i] })
	}
	return m, nil
}

// border encodes code into a border of length d: off corners, then 1 1,
// then the code bits, then 0. Forward borders start "011" and reversed
// ones "000", so no border matches another border's reversal.
func border(code, d int) []raster.Pixel {
	b := make([]raster.Pixel, d)
	b[1], b[2] = raster.On, raster.On
	for i := 0; i < d-5; i++ {
		b[3+i] = raster.Pixel(code&(1<<i) != 0)
	}
	return b
}

func uniqueIDs(rng *rand.Rand, n int) []int {
	seen := make(map[int]bool, n)
	ids := make([]int, 0, n)
	for len(ids) < n {
		id := 1000 + rng.Intn(9000)
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// Variants returns the eight orientations of img in tile.Orientations order.
func Variants(img *raster.Raster) []*raster.Raster {
	out := make([]*raster.Raster, 0, 8)
	for _, o := range tile.Orientations() {
		v := img.Clone()
		if o.Flipped {
			v.MirrorVertical()
		}
		for i := 0; i < o.Turns; i++ {
			v.Rotate()
		}
		out = append(out, v)
	}
	return out
}

// OrientationOf returns the orientation o such that applying o to want
// yields got. ok is false if got is not an orientation of want.
func OrientationOf(got, want *raster.Raster) (o tile.Orientation, ok bool) {
	for i, v := range Variants(want) {
		if v.Equal(got) {
			return tile.Orientations()[i], true
		}
	}
	return tile.Identity, false
}

// Stamp switches on the pixels of a '#'/'.' pattern with its top-left
// corner at (row, col). Pixels outside img are ignored.
func Stamp(img *raster.Raster, row, col int, lines ...string) {
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			if line[x] == raster.OnSymbol && img.InBounds(row+y, col+x) {
				img.Set(row+y, col+x, raster.On)
			}
		}
	}
}
