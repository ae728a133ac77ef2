package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeStartPosition(t *testing.T) {
	g, err := Decode(StartPosition)
	if err != nil {
		t.Fatalf("Failed to decode start position: %v", err)
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := g[row][col]
			switch {
			case row <= 1:
				if p.Color() != Black {
					t.Errorf("(%d,%d) = %v, want a black piece", row, col, p)
				}
			case row >= 6:
				if p.Color() != White {
					t.Errorf("(%d,%d) = %v, want a white piece", row, col, p)
				}
			default:
				if p != NoPiece {
					t.Errorf("(%d,%d) = %v, want empty", row, col, p)
				}
			}
		}
	}

	backRank := []Piece{WhiteRook, WhiteKnight, WhiteBishop, WhiteQueen, WhiteKing, WhiteBishop, WhiteKnight, WhiteRook}
	if diff := cmp.Diff(backRank, g[7][:]); diff != "" {
		t.Errorf("white back rank mismatch (-want +got):\n%s", diff)
	}
	if g.Count() != 32 {
		t.Errorf("Count() = %d, want 32", g.Count())
	}
}

func TestDecodeIgnoresTrailingFields(t *testing.T) {
	g, err := Decode(StartPosition + " w KQkq - 0 1")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got := g.At(Coord{Row: 0, Col: 4}); got != BlackKing {
		t.Errorf("e8 = %v, want k", got)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		rank  int
	}{
		{"empty", "", 0},
		{"seven ranks", "8/8/8/8/8/8/8", 0},
		{"nine ranks", "8/8/8/8/8/8/8/8/8", 0},
		{"short rank", "8/8/8/7/8/8/8/8", 4},
		{"long rank", "8/8/8/8/8/8/8/ppppppppp", 8},
		{"digit overflow", "8/8/44p/8/8/8/8/8", 3},
		{"digits overflow", "8/8/8/8/8/8/8/53p", 8},
		{"bad piece", "8/8/8/3X4/8/8/8/8", 4},
		{"zero digit", "08/8/8/8/8/8/8/8", 1},
		{"nine digit", "9/8/8/8/8/8/8/8", 1},
		{"empty rank", "8//8/8/8/8/8/8", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Decode(tc.input)
			if err == nil {
				t.Fatalf("Decode(%q) = %v, want error", tc.input, g)
			}
			if !errors.Is(err, ErrMalformedPosition) {
				t.Errorf("error %v does not wrap ErrMalformedPosition", err)
			}
			var perr *PositionError
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not a *PositionError", err)
			}
			if perr.Rank != tc.rank {
				t.Errorf("Rank = %d, want %d (%v)", perr.Rank, tc.rank, err)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	positions := []string{
		StartPosition,
		"8/8/8/8/8/8/8/8",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
		"4k3/8/8/3N4/8/8/8/4K3",
		"n7/8/8/8/8/8/8/7N",
	}

	for _, fen := range positions {
		g, err := Decode(fen)
		if err != nil {
			t.Fatalf("Decode(%q): %v", fen, err)
		}
		if got := Encode(g); got != fen {
			t.Errorf("Encode(Decode(%q)) = %q", fen, got)
		}
	}
}

func TestEncodeCompressesNonCanonicalRuns(t *testing.T) {
	g, err := Decode("8/8/8/8/8/8/8/44")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got := Encode(g); got != "8/8/8/8/8/8/8/8" {
		t.Errorf("Encode = %q, want empty board", got)
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input   string
		side    Color
		wantErr bool
	}{
		{StartPosition, White, false},
		{StartPosition + " w", White, false},
		{StartPosition + " b KQkq - 0 1", Black, false},
		{StartPosition + " x", NoColor, true},
		{"8/8/8", NoColor, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			g, side, err := ParsePosition(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParsePosition(%q) succeeded, want error", tc.input)
				}
				if !errors.Is(err, ErrMalformedPosition) {
					t.Errorf("error %v does not wrap ErrMalformedPosition", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePosition(%q): %v", tc.input, err)
			}
			if g == nil {
				t.Fatal("nil grid")
			}
			if side != tc.side {
				t.Errorf("side = %v, want %v", side, tc.side)
			}
		})
	}
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in   string
		want Coord
	}{
		{"a8", Coord{0, 0}},
		{"h1", Coord{7, 7}},
		{"e4", Coord{4, 4}},
		{"d5", Coord{3, 3}},
	}
	for _, tc := range tests {
		got, err := ParseCoord(tc.in)
		if err != nil {
			t.Fatalf("ParseCoord(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseCoord(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if got.String() != tc.in {
			t.Errorf("String() = %q, want %q", got.String(), tc.in)
		}
	}

	for _, bad := range []string{"", "e", "i1", "a9", "a0", "e44"} {
		if _, err := ParseCoord(bad); err == nil {
			t.Errorf("ParseCoord(%q) succeeded, want error", bad)
		}
	}
}

func TestPieceGlyphs(t *testing.T) {
	tests := []struct {
		char  byte
		glyph string
		color Color
		pt    PieceType
	}{
		{'P', "♙", White, Pawn},
		{'N', "♘", White, Knight},
		{'K', "♔", White, King},
		{'q', "♛", Black, Queen},
		{'n', "♞", Black, Knight},
		{'r', "♜", Black, Rook},
	}
	for _, tc := range tests {
		p := PieceFromChar(tc.char)
		if p.Glyph() != tc.glyph {
			t.Errorf("%c glyph = %q, want %q", tc.char, p.Glyph(), tc.glyph)
		}
		if p.Color() != tc.color || p.Type() != tc.pt {
			t.Errorf("%c = %v %v, want %v %v", tc.char, p.Color(), p.Type(), tc.color, tc.pt)
		}
		if p.String() != string(tc.char) {
			t.Errorf("String() = %q, want %q", p.String(), string(tc.char))
		}
		if NewPiece(tc.pt, tc.color) != p {
			t.Errorf("NewPiece(%v, %v) = %v, want %v", tc.pt, tc.color, NewPiece(tc.pt, tc.color), p)
		}
	}

	if NoPiece.Glyph() != "" {
		t.Errorf("NoPiece glyph = %q, want empty", NoPiece.Glyph())
	}
	if NoPiece.Color() != NoColor {
		t.Errorf("NoPiece color = %v, want NoColor", NoPiece.Color())
	}
}
