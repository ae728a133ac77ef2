package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/hailam/knightboard/internal/board"
)

var (
	targetStyle  = color.New(color.FgRed, color.Bold)
	captureStyle = color.New(color.BgRed, color.FgBlack)
	labelStyle   = color.New(color.Faint)
)

// renderBoard writes the grid rank 8 first, marking the squares in marks.
func renderBoard(w io.Writer, g *board.Grid, marks map[board.Coord]bool, letters bool) {
	for row := 0; row < 8; row++ {
		fmt.Fprint(w, labelStyle.Sprintf("%d ", 8-row))
		for col := 0; col < 8; col++ {
			c := board.Coord{Row: row, Col: col}
			p := g.At(c)

			cell := "."
			if p != board.NoPiece {
				cell = p.Glyph()
				if letters {
					cell = p.String()
				}
			}

			switch {
			case marks[c] && p != board.NoPiece:
				cell = captureStyle.Sprint(cell)
			case marks[c]:
				cell = targetStyle.Sprint("*")
			}

			if col > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, labelStyle.Sprint("  a b c d e f g h"))
}

// describe summarises a selection in one line.
func describe(sel board.Selection) string {
	if sel.Rejected() {
		return fmt.Sprintf("%s: %s", sel.From, sel.Reason)
	}
	if len(sel.Targets) == 0 {
		return fmt.Sprintf("%s: no moves", sel.From)
	}

	dests := make([]string, len(sel.Targets))
	for i, t := range sel.Targets {
		dests[i] = t.String()
	}
	return fmt.Sprintf("%s: %s", sel.From, strings.Join(dests, " "))
}
