package board

import (
	"strconv"
	"strings"
)

// StartPosition is the board field of the standard starting position.
const StartPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// Decode parses the board field of a FEN string into a Grid.
// Anything after the first space is ignored. Malformed input returns an
// error wrapping ErrMalformedPosition.
func Decode(position string) (*Grid, error) {
	fields := strings.Fields(position)
	if len(fields) == 0 {
		return nil, &PositionError{Reason: "empty position string"}
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, &PositionError{
			Text:   fields[0],
			Reason: "need 8 ranks, got " + strconv.Itoa(len(ranks)),
		}
	}

	g := new(Grid)
	for row, rankStr := range ranks {
		col := 0
		for i := 0; i < len(rankStr); i++ {
			if col > 7 {
				return nil, &PositionError{Rank: row + 1, Text: rankStr, Reason: "too many squares"}
			}

			c := rankStr[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}

			piece := PieceFromChar(c)
			if piece == NoPiece {
				return nil, &PositionError{
					Rank:   row + 1,
					Text:   rankStr,
					Reason: "invalid piece character " + strconv.QuoteRune(rune(c)),
				}
			}
			g[row][col] = piece
			col++
		}

		if col != 8 {
			return nil, &PositionError{
				Rank:   row + 1,
				Text:   rankStr,
				Reason: "describes " + strconv.Itoa(col) + " squares, want 8",
			}
		}
	}

	return g, nil
}

// ParsePosition parses a board field with an optional side-to-move field.
// The side defaults to White when the second field is absent.
func ParsePosition(fen string) (*Grid, Color, error) {
	g, err := Decode(fen)
	if err != nil {
		return nil, NoColor, err
	}

	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return g, White, nil
	}

	switch fields[1] {
	case "w":
		return g, White, nil
	case "b":
		return g, Black, nil
	default:
		return nil, NoColor, &PositionError{Text: fields[1], Reason: "invalid side to move"}
	}
}

// Encode returns the board field for g.
func Encode(g *Grid) string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			piece := g[row][col]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
