// Package mosaic runs the full reconstruction pipeline: resolve adjacency,
// assemble the grid, stitch the composite and scan it for a stamp.
package mosaic

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tilemosaic/adjacency"
	"github.com/katalvlaran/tilemosaic/assemble"
	"github.com/katalvlaran/tilemosaic/raster"
	"github.com/katalvlaran/tilemosaic/scan"
	"github.com/katalvlaran/tilemosaic/stitch"
	"github.com/katalvlaran/tilemosaic/tile"
)

// Report is the outcome of Solve.
type Report struct {
	CornerProduct int
	Roughness     int
	Adjacency     *adjacency.Adjacency
	Placement     *assemble.Placement
	Composite     *raster.Raster
	Scan          *scan.Result
}

// CornerProduct returns the product of the four corner tile ids. It needs
// adjacency resolution only, not a full assembly.
func CornerProduct(tiles []*tile.Tile) (int, error) {
	adj, err := adjacency.Resolve(tiles)
	if err != nil {
		return 0, err
	}
	return adj.CornerProduct()
}

// Solve reconstructs the mosaic and scans the composite for st.
// Any stage error aborts the run; no partial report is returned.
func Solve(tiles []*tile.Tile, st *scan.Stamp, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	log := o.Log

	adj, err := adjacency.Resolve(tiles)
	if err != nil {
		return nil, err
	}
	corners, err := adj.Corners()
	if err != nil {
		return nil, err
	}
	product, _ := adj.CornerProduct()
	log.WithFields(logrus.Fields{
		"tiles":   adj.Len(),
		"corners": corners,
	}).Debug("adjacency resolved")

	p, err := assemble.Assemble(tiles, adj, assemble.WithContext(o.Ctx),
		assemble.WithOnPlace(func(id int, at assemble.Coord, or tile.Orientation) error {
			log.WithFields(logrus.Fields{
				"tile":        id,
				"at":          at.String(),
				"orientation": or.String(),
			}).Trace("tile placed")
			return nil
		}))
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"size":   p.Size,
		"anchor": p.Order[0],
	}).Debug("grid assembled")

	img, err := stitch.Stitch(p)
	if err != nil {
		return nil, err
	}

	res, err := scan.Scan(img, st, scan.WithMirrorSearch(o.MirrorSearch))
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"image":     img.Size(),
		"on":        res.OnPixels,
		"matches":   res.Matches,
		"rotation":  res.Rotation,
		"mirrored":  res.Mirrored,
		"roughness": res.Roughness,
	}).Debug("composite scanned")

	return &Report{
		CornerProduct: product,
		Roughness:     res.Roughness,
		Adjacency:     adj,
		Placement:     p,
		Composite:     img,
		Scan:          res,
	}, nil
}

// SolveReader parses tiles from r and runs Solve.
func SolveReader(r io.Reader, st *scan.Stamp, opts ...Option) (*Report, error) {
	tiles, err := tile.ParseTiles(r)
	if err != nil {
		return nil, err
	}
	return Solve(tiles, st, opts...)
}
