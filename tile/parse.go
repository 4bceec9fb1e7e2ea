package tile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tilemosaic/raster"
)

const headerPrefix = "Tile "

// ParseTiles reads tile records separated by blank lines. Each record is a
// header "Tile <id>:" followed by D rows of D '#'/'.' symbols. All tiles must
// share the same D. CRLF line endings are accepted.
//
// Errors: ErrNoTiles, ErrMalformedHeader, ErrUnknownPixel, ErrDimension,
// ErrTileTooSmall, ErrDuplicateID, ErrInvalidID, or a read error.
func ParseTiles(r io.Reader) ([]*Tile, error) {
	var (
		tiles  []*Tile
		record []string
		line   int
		start  int
		seen   = make(map[int]bool)
	)
	flush := func() error {
		if len(record) == 0 {
			return nil
		}
		t, err := parseRecord(record, start)
		record = record[:0]
		if err != nil {
			return err
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: %d (line %d)", ErrDuplicateID, t.ID, start)
		}
		if len(tiles) > 0 && t.Size() != tiles[0].Size() {
			return fmt.Errorf("%w: tile %d is %d×%d, expected %d×%d",
				ErrDimension, t.ID, t.Size(), t.Size(), tiles[0].Size(), tiles[0].Size())
		}
		seen[t.ID] = true
		tiles = append(tiles, t)
		return nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if len(record) == 0 {
			start = line
		}
		record = append(record, text)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tile: read input: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}
	return tiles, nil
}

// ParseString is ParseTiles over an in-memory string.
func ParseString(s string) ([]*Tile, error) {
	return ParseTiles(strings.NewReader(s))
}

// parseRecord turns one header+rows block into a Tile. start is the line
// number of the header, used in error messages.
func parseRecord(lines []string, start int) (*Tile, error) {
	id, err := parseHeader(lines[0])
	if err != nil {
		return nil, fmt.Errorf("%w (line %d)", err, start)
	}
	rows := lines[1:]
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: tile %d has no rows", ErrDimension, id)
	}
	values := make([][]raster.Pixel, len(rows))
	for y, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("%w: tile %d row %d has %d pixels, expected %d",
				ErrDimension, id, y, len(row), len(rows))
		}
		values[y] = make([]raster.Pixel, len(row))
		for x := 0; x < len(row); x++ {
			p, ok := raster.PixelOf(row[x])
			if !ok {
				return nil, fmt.Errorf("%w: %q in tile %d at line %d",
					ErrUnknownPixel, row[x], id, start+1+y)
			}
			values[y][x] = p
		}
	}
	g, err := raster.FromPixels(values)
	if err != nil {
		return nil, fmt.Errorf("%w: tile %d: %v", ErrDimension, id, err)
	}
	return New(id, g)
}

func parseHeader(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, headerPrefix) || !strings.HasSuffix(s, ":") {
		return 0, fmt.Errorf("%w: %q", ErrMalformedHeader, s)
	}
	num := strings.TrimSuffix(strings.TrimPrefix(s, headerPrefix), ":")
	id, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedHeader, s)
	}
	if id < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return id, nil
}
