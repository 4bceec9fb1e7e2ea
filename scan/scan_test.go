package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilemosaic/internal/mosaictest"
	"github.com/katalvlaran/tilemosaic/raster"
	"github.com/katalvlaran/tilemosaic/scan"
)

// monsterImage returns a 24×24 image holding two sea monsters at (2,1) and
// (10,3) plus two stray on pixels: 32 on pixels in total.
func monsterImage(t *testing.T) *raster.Raster {
	t.Helper()
	img, err := raster.New(24)
	require.NoError(t, err)
	mosaictest.Stamp(img, 2, 1, scan.SeaMonsterArt...)
	mosaictest.Stamp(img, 10, 3, scan.SeaMonsterArt...)
	img.Set(0, 0, raster.On)
	img.Set(20, 20, raster.On)
	require.Equal(t, 32, img.CountOn())
	return img
}

func TestSeaMonster(t *testing.T) {
	assert.Equal(t, 15, scan.SeaMonster.Size())
	h, w := scan.SeaMonster.Bounds()
	assert.Equal(t, 3, h)
	assert.Equal(t, 20, w)
	assert.Contains(t, scan.SeaMonster.Offsets(), scan.Offset{Row: 0, Col: 18})
}

func TestParseStamp(t *testing.T) {
	st, err := scan.ParseStamp("#.", " #\r", "")
	require.NoError(t, err)
	h, w := st.Bounds()
	assert.Equal(t, 3, h)
	assert.Equal(t, 2, w)
	assert.Equal(t, []scan.Offset{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, st.Offsets())

	_, err = scan.ParseStamp("...", "   ")
	assert.ErrorIs(t, err, scan.ErrEmptyStamp)
	_, err = scan.ParseStamp()
	assert.ErrorIs(t, err, scan.ErrEmptyStamp)
}

// TestScan_NoMatch checks that an image without stamps reports its raw on
// pixel count as roughness.
func TestScan_NoMatch(t *testing.T) {
	m := mosaictest.MustGenerate(mosaictest.Config{Side: 3, TileSize: 10, Seed: 9, Density: 0.2})
	res, err := scan.Scan(m.Image, scan.SeaMonster)
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Zero(t, res.Matches)
	assert.Zero(t, res.Rotation)
	assert.Equal(t, m.Image.CountOn(), res.OnPixels)
	assert.Equal(t, res.OnPixels, res.Roughness)
}

// TestScan_FoundInRotatedView builds an image whose stamps only line up
// after one counter-clockwise turn.
func TestScan_FoundInRotatedView(t *testing.T) {
	truth := monsterImage(t)
	img := truth.Clone()
	for i := 0; i < 3; i++ {
		img.Rotate()
	}

	res, err := scan.Scan(img, scan.SeaMonster)
	require.NoError(t, err)
	assert.True(t, res.Found())
	assert.Equal(t, 1, res.Rotation)
	assert.False(t, res.Mirrored)
	assert.Equal(t, 2, res.Matches)
	assert.Equal(t, []scan.Position{{Row: 2, Col: 1}, {Row: 10, Col: 3}}, res.Positions)
	assert.Equal(t, 32, res.OnPixels)
	assert.Equal(t, 32-2*15, res.Roughness)
	assert.True(t, res.View.Equal(truth))

	covered, err := res.Covered(scan.SeaMonster)
	require.NoError(t, err)
	assert.Equal(t, 30, covered.CountOn())
}

func TestScan_DoesNotMutateImage(t *testing.T) {
	img := monsterImage(t)
	img.Rotate()
	before := img.String()
	_, err := scan.Scan(img, scan.SeaMonster)
	require.NoError(t, err)
	assert.Equal(t, before, img.String())
}

// TestScan_StopsAtFirstRotation checks counts from later views are ignored.
// View 0 holds one horizontal "##"; view 1 would hold two.
func TestScan_StopsAtFirstRotation(t *testing.T) {
	img := raster.MustParse(
		"##.",
		"#..",
		"#..",
	)
	st := scan.MustParseStamp("##")
	res, err := scan.Scan(img, st)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Rotation)
	assert.Equal(t, 1, res.Matches)
	assert.Equal(t, 4-2, res.Roughness)
}

// TestScan_OverlapsCountIndependently checks overlapping placements are all
// counted, even if that subtracts a pixel twice.
func TestScan_OverlapsCountIndependently(t *testing.T) {
	img := raster.MustParse(
		"###",
		"...",
		"...",
	)
	res, err := scan.Scan(img, scan.MustParseStamp("##"))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Matches)
	assert.Equal(t, 3-2*2, res.Roughness)
}

// TestScan_MirrorOnlyWhenAsked checks a mirrored stamp is missed by default
// and found by the opt-in mirrored pass.
func TestScan_MirrorOnlyWhenAsked(t *testing.T) {
	img := monsterImage(t)
	img.MirrorVertical()

	res, err := scan.Scan(img, scan.SeaMonster)
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Equal(t, 32, res.Roughness)

	res, err = scan.Scan(img, scan.SeaMonster, scan.WithMirrorSearch(true))
	require.NoError(t, err)
	assert.True(t, res.Mirrored)
	assert.Equal(t, 0, res.Rotation)
	assert.Equal(t, 2, res.Matches)
	assert.Equal(t, 2, res.Roughness)
}

func TestScan_StampLargerThanImage(t *testing.T) {
	img := raster.MustParse("###", "###", "###")
	res, err := scan.Scan(img, scan.SeaMonster)
	require.NoError(t, err)
	assert.Zero(t, res.Matches)
	assert.Equal(t, 9, res.Roughness)
}

func TestScan_Errors(t *testing.T) {
	img := raster.MustParse("#")
	_, err := scan.Scan(nil, scan.SeaMonster)
	assert.ErrorIs(t, err, scan.ErrNilImage)
	_, err = scan.Scan(img, nil)
	assert.ErrorIs(t, err, scan.ErrEmptyStamp)
	_, err = scan.Scan(img, scan.SeaMonster, scan.WithRotations(0))
	assert.ErrorIs(t, err, scan.ErrOptionViolation)
	_, err = scan.Scan(img, scan.SeaMonster, scan.WithRotations(5))
	assert.ErrorIs(t, err, scan.ErrOptionViolation)
}

// TestScan_WithRotations checks a limited search misses later views.
func TestScan_WithRotations(t *testing.T) {
	img := monsterImage(t)
	img.Rotate()
	img.Rotate()
	img.Rotate()
	res, err := scan.Scan(img, scan.SeaMonster, scan.WithRotations(1))
	require.NoError(t, err)
	assert.False(t, res.Found())
}
