package tile_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilemosaic/tile"
)

const twoTiles = `Tile 2311:
#..
.#.
..#

Tile 1951:
###
...
#.#
`

func TestParseTiles(t *testing.T) {
	tiles, err := tile.ParseString(twoTiles)
	require.NoError(t, err)
	require.Len(t, tiles, 2)

	assert.Equal(t, 2311, tiles[0].ID)
	assert.Equal(t, 1951, tiles[1].ID)
	assert.Equal(t, 3, tiles[1].Size())
	assert.Equal(t, "###\n...\n#.#", tiles[1].Grid().String())
	assert.Equal(t, "Tile 2311:\n#..\n.#.\n..#", tiles[0].String())
}

func TestParseTiles_CRLF(t *testing.T) {
	in := strings.ReplaceAll(twoTiles, "\n", "\r\n")
	tiles, err := tile.ParseString(in)
	require.NoError(t, err)
	require.Len(t, tiles, 2)
	assert.Equal(t, tile.Edge("#.#"), tiles[1].Edge(tile.Bottom))
}

func TestParseTiles_ExtraBlankLines(t *testing.T) {
	in := "\n\n" + strings.Replace(twoTiles, "\n\n", "\n\n\n\n", 1) + "\n\n"
	tiles, err := tile.ParseString(in)
	require.NoError(t, err)
	assert.Len(t, tiles, 2)
}

func TestParseTiles_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", tile.ErrNoTiles},
		{"OnlyBlank", "\n\n  \n", tile.ErrNoTiles},
		{"NoColon", "Tile 1\n...\n...\n...\n", tile.ErrMalformedHeader},
		{"NotANumber", "Tile x:\n...\n...\n...\n", tile.ErrMalformedHeader},
		{"WrongWord", "Tyle 1:\n...\n...\n...\n", tile.ErrMalformedHeader},
		{"ZeroID", "Tile 0:\n...\n...\n...\n", tile.ErrInvalidID},
		{"UnknownPixel", "Tile 1:\n...\n.o.\n...\n", tile.ErrUnknownPixel},
		{"ShortRow", "Tile 1:\n...\n..\n...\n", tile.ErrDimension},
		{"NotSquare", "Tile 1:\n...\n...\n", tile.ErrDimension},
		{"HeaderOnly", "Tile 1:\n", tile.ErrDimension},
		{"TooSmall", "Tile 1:\n..\n..\n", tile.ErrTileTooSmall},
		{"SizeMismatch", "Tile 1:\n...\n...\n...\n\nTile 2:\n....\n....\n....\n....\n", tile.ErrDimension},
		{"Duplicate", "Tile 1:\n...\n...\n...\n\nTile 1:\n###\n###\n###\n", tile.ErrDuplicateID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tile.ParseString(tc.input)
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseString(%q) error = %v; want %v", tc.input, err, tc.err)
			}
		})
	}
}
