package board

import (
	"strings"

	"github.com/pkg/errors"
)

// Direction is a heading on the grid.
type Direction int

// The four headings a snake can travel in.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every heading in a stable order.
var Directions = []Direction{Up, Down, Left, Right}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// IsOpposite reports whether the two headings form the up/down or
// left/right pair.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// ParseDirection maps "up", "down", "left" and "right" (any case) to a
// Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Up, errors.Errorf("board: unknown direction %q", s)
}
