// Package scan counts occurrences of a fixed stamp pattern in a square image.
//
// What:
//
//   - A Stamp is a set of (row, col) offsets that must all be on, with its
//     bounding box. It is parsed from '#' art; every other symbol is ignored.
//   - Scan slides the stamp over every top-left position of the image in up
//     to four rotations (0°, 90°, 180°, 270°, counter-clockwise). It stops at
//     the first rotation with at least one match and never adds counts from
//     different rotations. Overlapping matches count independently.
//   - Roughness is the number of on pixels minus matches × stamp size.
//
// Mirrored views are not searched unless WithMirrorSearch(true) is given;
// the image's chirality is left as assembled.
//
// Complexity (n = image size, k = stamp on-cells):
//
//   - Scan: O(4·n²·k) time, O(n²) memory for the rotated copy.
package scan

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilemosaic/raster"
)

// Sentinel errors for scanning.
var (
	// ErrNilImage indicates a nil image.
	ErrNilImage = errors.New("scan: image is nil")
	// ErrEmptyStamp indicates a stamp without on cells.
	ErrEmptyStamp = errors.New("scan: stamp has no on cells")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("scan: invalid option supplied")
)

// Offset is a stamp cell relative to the stamp's top-left corner.
type Offset struct {
	Row, Col int
}

// Position is the top-left corner of a match in the scanned view.
type Position struct {
	Row, Col int
}

// Option configures Scan via functional arguments.
type Option func(*Options)

// Options holds scan parameters.
type Options struct {
	// Rotations is how many quarter turns are tried, 1 to 4.
	Rotations int
	// MirrorSearch also tries the rotations of the mirrored image once the
	// unmirrored ones found nothing.
	MirrorSearch bool

	err error
}

// DefaultOptions returns four rotations and no mirror search.
func DefaultOptions() Options {
	return Options{Rotations: 4}
}

// WithMirrorSearch enables the mirrored pass.
func WithMirrorSearch(enabled bool) Option {
	return func(o *Options) {
		o.MirrorSearch = enabled
	}
}

// WithRotations limits the number of quarter turns tried.
//
//	1 ≤ n ≤ 4: try n views
//	otherwise: invalid option → ErrOptionViolation
func WithRotations(n int) Option {
	return func(o *Options) {
		if n < 1 || n > 4 {
			o.err = fmt.Errorf("%w: rotations must be in [1,4], got %d", ErrOptionViolation, n)
			return
		}
		o.Rotations = n
	}
}

// Result holds the outcome of a scan.
type Result struct {
	// Rotation is the number of counter-clockwise quarter turns of the view
	// in which matches were found; 0 when nothing matched.
	Rotation int
	// Mirrored is true when the matches came from the mirrored pass.
	Mirrored bool
	// Matches counts stamp placements in that view.
	Matches int
	// Positions lists the top-left corner of every match, row-major.
	Positions []Position
	// OnPixels is the number of on pixels in the image.
	OnPixels int
	// Roughness is OnPixels minus Matches times the stamp's on-cell count.
	Roughness int
	// View is the rotated (and possibly mirrored) image the matches refer to.
	View *raster.Raster
}

// Found reports whether any stamp was located.
func (r *Result) Found() bool {
	return r.Matches > 0
}
