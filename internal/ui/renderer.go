package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/knightboard/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	HighlightColor color.RGBA
	HoverColor     color.RGBA
	PieceColor     color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{238, 238, 210, 255}, // #eeeed2
		DarkSquare:     color.RGBA{118, 150, 86, 255},  // #769656
		SelectedSquare: color.RGBA{242, 242, 138, 255}, // #f2f28a
		HighlightColor: color.RGBA{220, 40, 40, 200},   // Red
		HoverColor:     color.RGBA{186, 202, 68, 110},  // #baca44
		PieceColor:     color.RGBA{0, 0, 0, 255},
		Background:     color.RGBA{40, 44, 52, 255},
		TextColor:      color.RGBA{220, 220, 220, 255},
	}
}

// Renderer handles all drawing operations.
type Renderer struct {
	glyphs     *GlyphSet
	markers    *MarkerSet
	theme      *Theme
	origin     int // board offset from the window edge, logical pixels
	squareSize int
	flipped    bool
	scale      float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(glyphs *GlyphSet, markers *MarkerSet, origin, squareSize int) *Renderer {
	return &Renderer{
		glyphs:     glyphs,
		markers:    markers,
		theme:      DefaultTheme(),
		origin:     origin,
		squareSize: squareSize,
		scale:      1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
}

// SetFlipped shows the board from Black's side when true.
func (r *Renderer) SetFlipped(flipped bool) {
	r.flipped = flipped
}

// Flipped reports whether the board is drawn from Black's side.
func (r *Renderer) Flipped() bool {
	return r.flipped
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawBoard draws the 64 squares, with a hover tint on hover.
func (r *Renderer) DrawBoard(screen *ebiten.Image, hover board.Coord) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			c := board.Coord{Row: row, Col: col}
			sq := r.theme.DarkSquare
			if c.IsLight() {
				sq = r.theme.LightSquare
			}
			r.fillSquare(screen, c, sq)
		}
	}

	if hover.InBounds() {
		r.fillSquare(screen, hover, r.theme.HoverColor)
	}
}

// DrawCoordinates draws file letters and rank numbers in the square corners.
func (r *Renderer) DrawCoordinates(screen *ebiten.Image) {
	face := GetLabelFace(10 * r.scale)
	if face == nil {
		return
	}

	for i := 0; i < 8; i++ {
		// Files along the bottom edge, ranks along the left edge.
		fileSq := board.Coord{Row: 7, Col: i}
		rankSq := board.Coord{Row: i, Col: 0}
		if r.flipped {
			fileSq = board.Coord{Row: 0, Col: 7 - i}
			rankSq = board.Coord{Row: 7 - i, Col: 7}
		}

		fx, fy := r.CoordToScreen(fileSq)
		r.drawLabel(screen, face, fileSq.String()[:1], fileSq,
			float64(r.s(fx+r.squareSize-10)), float64(r.s(fy+r.squareSize-14)))

		rx, ry := r.CoordToScreen(rankSq)
		r.drawLabel(screen, face, rankSq.String()[1:], rankSq,
			float64(r.s(rx+3)), float64(r.s(ry+2)))
	}
}

func (r *Renderer) drawLabel(screen *ebiten.Image, face *text.GoTextFace, s string, on board.Coord, x, y float64) {
	// Label takes the colour of the opposite square for contrast.
	clr := r.theme.LightSquare
	if on.IsLight() {
		clr = r.theme.DarkSquare
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// DrawHighlights draws the selected square and the destination highlights.
// Empty destinations get a dot marker, captures a ring.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, g *board.Grid, selected board.Coord, targets []board.Coord) {
	if selected.InBounds() {
		r.fillSquare(screen, selected, r.theme.SelectedSquare)
	}

	for _, t := range targets {
		r.fillSquare(screen, t, r.theme.HighlightColor)

		x, y := r.CoordToScreen(t)
		marker := MarkerTarget
		if g != nil && g.At(t) != board.NoPiece {
			marker = MarkerCapture
		}
		r.markers.Draw(screen, marker, float64(r.s(x)), float64(r.s(y)), float64(r.s(r.squareSize)))
	}
}

// DrawPieces draws every piece on the grid.
func (r *Renderer) DrawPieces(screen *ebiten.Image, g *board.Grid) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			c := board.Coord{Row: row, Col: col}
			p := g.At(c)
			if p == board.NoPiece {
				continue
			}
			x, y := r.CoordToScreen(c)
			r.glyphs.DrawPiece(screen, p, float64(r.s(x)), float64(r.s(y)), float64(r.s(r.squareSize)), r.theme.PieceColor)
		}
	}
}

// DrawStatus draws a single line of text in the bar under the board.
func (r *Renderer) DrawStatus(screen *ebiten.Image, msg string) {
	face := GetLabelFace(13 * r.scale)
	if face == nil {
		return
	}
	y := r.origin*2 + r.squareSize*8
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.s(r.origin)), float64(r.s(y-r.origin/2)))
	op.ColorScale.ScaleWithColor(r.theme.TextColor)
	text.Draw(screen, msg, face, op)
}

// fillSquare draws a colored overlay on a square.
func (r *Renderer) fillSquare(screen *ebiten.Image, c board.Coord, clr color.RGBA) {
	if !c.InBounds() {
		return
	}
	x, y := r.CoordToScreen(c)
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), clr, false)
}

// CoordToScreen converts a grid coordinate to logical screen coordinates.
func (r *Renderer) CoordToScreen(c board.Coord) (int, int) {
	row, col := c.Row, c.Col
	if r.flipped {
		row, col = 7-row, 7-col
	}
	return r.origin + col*r.squareSize, r.origin + row*r.squareSize
}

// ScreenToCoord converts logical screen coordinates to a grid coordinate,
// or board.NoCoord when the point is off the board.
func (r *Renderer) ScreenToCoord(x, y int) board.Coord {
	x -= r.origin
	y -= r.origin
	size := r.squareSize * 8
	if x < 0 || x >= size || y < 0 || y >= size {
		return board.NoCoord
	}
	row, col := y/r.squareSize, x/r.squareSize
	if r.flipped {
		row, col = 7-row, 7-col
	}
	return board.Coord{Row: row, Col: col}
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
