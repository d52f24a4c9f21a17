package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned for any value outside the four directions.
var ErrInvalidDirection = errors.New("engine: invalid direction")

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota + 1
	DirDown
	DirLeft
	DirRight
)

// Directions lists all valid directions.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts "up", "down", "left" or "right" (any case) to a
// Direction. Anything else is an error; there is no fallback direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// rotations returns how many clockwise turns bring d into the leftward frame,
// and how many restore the original orientation afterwards.
func (d Direction) rotations() (before, after int) {
	switch d {
	case DirUp:
		return 3, 1
	case DirRight:
		return 2, 2
	case DirDown:
		return 1, 3
	default:
		return 0, 0
	}
}
