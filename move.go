package cubelab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis identifies one of the three cardinal rotation axes.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Vec returns the unit basis vector for the axis.
func (a Axis) Vec() mgl64.Vec3 {
	switch a {
	case AxisX:
		return mgl64.Vec3{1, 0, 0}
	case AxisY:
		return mgl64.Vec3{0, 1, 0}
	default:
		return mgl64.Vec3{0, 0, 1}
	}
}

// Move is a single quarter-turn command: rotate the layer-th slab along
// Axis by 90 degrees in the given direction. Layer is a 0-based index in
// [0, size-1]; Dir is +1 or -1 following the right-hand rule around the
// axis vector. Moves are immutable values.
type Move struct {
	Axis  Axis
	Layer int
	Dir   int
}

// Inverse returns the move that exactly undoes m.
func (m Move) Inverse() Move {
	inv := m
	inv.Dir = -m.Dir
	return inv
}

// Notation returns the layer-move notation string for this move.
// Examples: x0+, y2-, z1+
func (m Move) Notation() string {
	sign := "+"
	if m.Dir < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d%s", m.Axis, m.Layer, sign)
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a layer-move notation string into a Move.
// Examples: x0+, y2-, z1+
// Returns an error if the notation is invalid.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return Move{}, ErrInvalidNotation
	}

	var axis Axis
	switch s[0] {
	case 'x', 'X':
		axis = AxisX
	case 'y', 'Y':
		axis = AxisY
	case 'z', 'Z':
		axis = AxisZ
	default:
		return Move{}, ErrInvalidNotation
	}

	dir := 0
	switch s[len(s)-1] {
	case '+':
		dir = 1
	case '-':
		dir = -1
	default:
		return Move{}, ErrInvalidNotation
	}

	layer, err := strconv.Atoi(s[1 : len(s)-1])
	if err != nil || layer < 0 {
		return Move{}, ErrInvalidNotation
	}

	return Move{Axis: axis, Layer: layer, Dir: dir}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "x0+ y2- z1+"
// Invalid tokens are skipped.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			continue
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
