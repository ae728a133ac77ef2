package board

import "strings"

// Grid is an 8×8 board of optional pieces, indexed [row][col].
// The zero value is an empty board.
type Grid [8][8]Piece

// At returns the piece on c, or NoPiece if c is empty or out of bounds.
func (g *Grid) At(c Coord) Piece {
	if !c.InBounds() {
		return NoPiece
	}
	return g[c.Row][c.Col]
}

// Set places p on c. Out-of-bounds coordinates are ignored.
func (g *Grid) Set(c Coord, p Piece) {
	if !c.InBounds() {
		return
	}
	g[c.Row][c.Col] = p
}

// Count returns the number of occupied squares.
func (g *Grid) Count() int {
	n := 0
	for r := range g {
		for c := range g[r] {
			if g[r][c] != NoPiece {
				n++
			}
		}
	}
	return n
}

// String renders the grid with FEN letters, '.' for empty squares.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if p := g[r][c]; p == NoPiece {
				sb.WriteByte('.')
			} else {
				sb.WriteString(p.String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
