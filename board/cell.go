// Package board holds the grid geometry of the game: cells, headings, bounds
// and the snake body that lives on the grid.
package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedKey is returned when a cell key does not parse as two integers.
var ErrMalformedKey = errors.New("board: malformed cell key")

const keySeparator = "+"

// Cell is a single grid coordinate. Row grows downwards, Col grows to the
// right.
type Cell struct {
	Row int
	Col int
}

// Equal checks if 2 cells are the same row,col coordinate
func (c Cell) Equal(other Cell) bool {
	return c.Row == other.Row && c.Col == other.Col
}

// Move returns the neighbouring cell in the given direction.
func (c Cell) Move(d Direction) Cell {
	switch d {
	case Up:
		return Cell{Row: c.Row - 1, Col: c.Col}
	case Down:
		return Cell{Row: c.Row + 1, Col: c.Col}
	case Left:
		return Cell{Row: c.Row, Col: c.Col - 1}
	case Right:
		return Cell{Row: c.Row, Col: c.Col + 1}
	}
	return c
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// InBounds reports whether the cell lies on a width x height grid. Valid
// coordinates are 0 <= row < height and 0 <= col < width.
func InBounds(c Cell, width, height int) bool {
	return c.Row >= 0 && c.Row < height && c.Col >= 0 && c.Col < width
}

// Adjacent reports whether two cells share an edge.
func Adjacent(a, b Cell) bool {
	_, ok := DirectionBetween(a, b)
	return ok
}

// DirectionBetween returns the heading that moves from one cell to an
// adjacent one.
func DirectionBetween(from, to Cell) (Direction, bool) {
	for _, d := range Directions {
		if from.Move(d) == to {
			return d, true
		}
	}
	return Up, false
}

// EncodeKey renders a cell as "row+col".
func EncodeKey(c Cell) string {
	return strconv.Itoa(c.Row) + keySeparator + strconv.Itoa(c.Col)
}

// DecodeKey parses a key produced by EncodeKey.
func DecodeKey(key string) (Cell, error) {
	parts := strings.Split(key, keySeparator)
	if len(parts) != 2 {
		return Cell{}, errors.Wrapf(ErrMalformedKey, "key %q", key)
	}
	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return Cell{}, errors.Wrapf(ErrMalformedKey, "key %q: row: %v", key, err)
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return Cell{}, errors.Wrapf(ErrMalformedKey, "key %q: col: %v", key, err)
	}
	return Cell{Row: row, Col: col}, nil
}

// MustDecodeKey is DecodeKey for keys generated by EncodeKey. A malformed
// key is a programming error and panics.
func MustDecodeKey(key string) Cell {
	c, err := DecodeKey(key)
	if err != nil {
		panic(err)
	}
	return c
}
