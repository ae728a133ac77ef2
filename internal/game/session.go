// Package game holds the click-driven board state behind the GUI.
// It decodes the position string afresh on every query and never touches
// any rendering code.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hailam/knightboard/internal/board"
)

// ErrIllegalMove is returned by Apply for destinations the generator does
// not produce from the given square.
var ErrIllegalMove = errors.New("illegal move")

// ClickKind describes what a click did to the session.
type ClickKind int

const (
	ClickSelected ClickKind = iota // a piece was selected, highlights replaced
	ClickRejected                  // nothing selectable, highlights cleared
	ClickMoved                     // a highlighted destination was played
)

// String returns the click kind name.
func (k ClickKind) String() string {
	switch k {
	case ClickSelected:
		return "selected"
	case ClickRejected:
		return "rejected"
	case ClickMoved:
		return "moved"
	default:
		return "unknown"
	}
}

// ClickResult reports the outcome of one click.
type ClickResult struct {
	Kind      ClickKind
	Selection board.Selection
	Move      Move // set when Kind == ClickMoved
}

// Move is one applied piece displacement.
type Move struct {
	From     board.Coord
	To       board.Coord
	Piece    board.Piece
	Captured board.Piece
}

// String returns the move in from-to form, e.g. "g1f3".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// Session is the mutable state of one board window.
// It is not safe for concurrent use; the GUI loop owns it.
type Session struct {
	log zerolog.Logger

	position string
	toMove   board.Color

	selected   board.Coord
	highlights []board.Coord
	notice     string
}

// NewSession creates a session for fen, which may carry a side-to-move field.
func NewSession(fen string, log zerolog.Logger) (*Session, error) {
	s := &Session{log: log}
	if err := s.Reset(fen); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset loads a new position and clears selection and highlights.
func (s *Session) Reset(fen string) error {
	g, side, err := board.ParsePosition(fen)
	if err != nil {
		return fmt.Errorf("load position: %w", err)
	}

	s.position = board.Encode(g)
	s.toMove = side
	s.clearSelection()
	s.notice = ""

	s.log.Debug().Str("position", s.position).Stringer("to_move", side).Msg("position loaded")
	return nil
}

// Grid decodes the current position string.
func (s *Session) Grid() (*board.Grid, error) {
	return board.Decode(s.position)
}

// Position returns the current position string (board field only).
func (s *Session) Position() string {
	return s.position
}

// ToMove returns the side permitted to move.
func (s *Session) ToMove() board.Color {
	return s.toMove
}

// Selected returns the selected square, or board.NoCoord.
func (s *Session) Selected() board.Coord {
	return s.selected
}

// Highlights returns a copy of the highlighted destination squares.
func (s *Session) Highlights() []board.Coord {
	return append([]board.Coord(nil), s.highlights...)
}

// IsHighlighted reports whether c is a highlighted destination.
func (s *Session) IsHighlighted(c board.Coord) bool {
	for _, h := range s.highlights {
		if h == c {
			return true
		}
	}
	return false
}

// Notice returns the last user-facing message, or "".
func (s *Session) Notice() string {
	return s.notice
}

// ClearSelection drops the selection and highlights.
func (s *Session) ClearSelection() {
	s.clearSelection()
}

func (s *Session) clearSelection() {
	s.selected = board.NoCoord
	s.highlights = nil
}

// Click handles a click on c. Clicking a highlighted destination of the
// current selection plays the move; any other click re-selects and replaces
// the highlights, with an empty set when nothing can move from c.
func (s *Session) Click(c board.Coord) (ClickResult, error) {
	s.log.Debug().Stringer("square", c).Int("row", c.Row).Int("col", c.Col).Msg("click")

	if s.selected != board.NoCoord && s.IsHighlighted(c) {
		m, err := s.Apply(s.selected, c)
		if err != nil {
			return ClickResult{}, err
		}
		return ClickResult{Kind: ClickMoved, Move: m}, nil
	}

	g, err := s.Grid()
	if err != nil {
		return ClickResult{}, err
	}

	sel := board.Select(g, c, s.toMove)
	s.highlights = sel.Targets
	s.notice = ""

	if sel.Rejected() {
		s.selected = board.NoCoord
		if sel.Reason == board.ReasonNotYourTurn {
			s.notice = fmt.Sprintf("%s to move", s.toMove)
			s.log.Info().Stringer("to_move", s.toMove).Stringer("square", c).Msg("not your turn")
		}
		return ClickResult{Kind: ClickRejected, Selection: sel}, nil
	}

	s.selected = c
	return ClickResult{Kind: ClickSelected, Selection: sel}, nil
}

// Apply moves the piece on from to to, then hands the move to the other
// side. The position and side to move change together or not at all.
func (s *Session) Apply(from, to board.Coord) (Move, error) {
	g, err := s.Grid()
	if err != nil {
		return Move{}, err
	}

	sel := board.Select(g, from, s.toMove)
	if sel.Rejected() {
		return Move{}, fmt.Errorf("%w: %s%s: %s", ErrIllegalMove, from, to, sel.Reason)
	}
	if !sel.Contains(to) {
		return Move{}, fmt.Errorf("%w: %s%s: not a destination", ErrIllegalMove, from, to)
	}

	m := Move{From: from, To: to, Piece: g.At(from), Captured: g.At(to)}
	g.Set(to, m.Piece)
	g.Set(from, board.NoPiece)

	s.position = board.Encode(g)
	s.toMove = s.toMove.Other()
	s.clearSelection()
	s.notice = ""

	s.log.Info().Stringer("move", m).Str("position", s.position).Msg("move applied")
	return m, nil
}
