// Package board implements the position-string decoder and the partial move
// generator behind the knightboard GUI. It has no dependency on any GUI code.
package board

import "fmt"

// Coord addresses a square by grid row and column.
// Row 0 is the top of the position string (rank 8), Col 0 is file a.
type Coord struct {
	Row int
	Col int
}

// NoCoord is the sentinel for "no square".
var NoCoord = Coord{Row: -1, Col: -1}

// InBounds returns true if both axes lie within 0..7.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < 8 && c.Col >= 0 && c.Col < 8
}

// Add returns the coordinate shifted by the given deltas.
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// String returns the algebraic notation for the square (e.g., "e4").
func (c Coord) String() string {
	if !c.InBounds() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+c.Col, '8'-c.Row)
}

// IsLight returns true for light squares. a8 (0,0) is light.
func (c Coord) IsLight() bool {
	return (c.Row+c.Col)%2 == 0
}

// ParseCoord parses algebraic notation (e.g., "e4") into a Coord.
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return NoCoord, fmt.Errorf("invalid square: %s", s)
	}

	col := int(s[0] - 'a')
	rank := int(s[1] - '1')

	if col < 0 || col > 7 || rank < 0 || rank > 7 {
		return NoCoord, fmt.Errorf("invalid square: %s", s)
	}

	return Coord{Row: 7 - rank, Col: col}, nil
}
