package board

// Reason explains why a selection produced no destinations.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonOutOfBounds
	ReasonEmptySquare
	ReasonNotYourTurn
	ReasonUnsupportedPiece
)

// String returns a short description of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "ok"
	case ReasonOutOfBounds:
		return "square out of bounds"
	case ReasonEmptySquare:
		return "empty square"
	case ReasonNotYourTurn:
		return "not your turn"
	case ReasonUnsupportedPiece:
		return "movement not implemented for piece"
	default:
		return "unknown"
	}
}

// knightOffsets lists the (row, col) deltas in generation order.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {2, -1}, {2, 1},
	{-1, -2}, {-1, 2}, {1, -2}, {1, 2},
}

// Selection is the result of asking for the destinations of one square.
type Selection struct {
	From    Coord
	Piece   Piece
	Targets []Coord
	Reason  Reason
}

// Rejected returns true if the selection was refused outright.
// A knight with no reachable squares is not rejected.
func (s Selection) Rejected() bool {
	return s.Reason != ReasonNone
}

// Contains reports whether c is one of the targets.
func (s Selection) Contains(c Coord) bool {
	for _, t := range s.Targets {
		if t == c {
			return true
		}
	}
	return false
}

// Select computes the destinations for the piece on from with toMove to play.
// Only knight movement is generated; other piece types are reported as
// ReasonUnsupportedPiece with no targets.
func Select(g *Grid, from Coord, toMove Color) Selection {
	sel := Selection{From: from, Piece: NoPiece}

	if !from.InBounds() {
		sel.Reason = ReasonOutOfBounds
		return sel
	}

	piece := g.At(from)
	sel.Piece = piece
	if piece == NoPiece {
		sel.Reason = ReasonEmptySquare
		return sel
	}

	us := piece.Color()
	if us != toMove {
		sel.Reason = ReasonNotYourTurn
		return sel
	}

	switch piece.Type() {
	case Knight:
		sel.Targets = knightTargets(g, from, us)
	default:
		sel.Reason = ReasonUnsupportedPiece
	}

	return sel
}

// Destinations returns the destination squares for the piece on from,
// or nil when the square is empty, belongs to the side not on move, or
// holds a piece whose movement is not generated.
func Destinations(g *Grid, from Coord, toMove Color) []Coord {
	return Select(g, from, toMove).Targets
}

// knightTargets returns in-bounds knight destinations that are empty or
// hold an enemy piece.
func knightTargets(g *Grid, from Coord, us Color) []Coord {
	targets := make([]Coord, 0, len(knightOffsets))
	for _, off := range knightOffsets {
		to := from.Add(off[0], off[1])
		if !to.InBounds() {
			continue
		}
		if occupant := g.At(to); occupant != NoPiece && occupant.Color() == us {
			continue
		}
		targets = append(targets, to)
	}
	return targets
}
