package ui

import (
	"bytes"
	"image/color"
	"os"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/hailam/knightboard/internal/board"
)

var labelSource *text.GoTextFaceSource

func init() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return
	}
	labelSource = src
}

// GetLabelFace returns the Go regular face at size, or nil if it failed to load.
func GetLabelFace(size float64) *text.GoTextFace {
	if labelSource == nil {
		return nil
	}
	return &text.GoTextFace{Source: labelSource, Size: size}
}

// glyphFontPaths lists fonts known to carry the chess symbols block.
func glyphFontPaths() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
			"/Library/Fonts/Arial Unicode.ttf",
		}
	case "windows":
		return []string{
			`C:\Windows\Fonts\seguisym.ttf`,
			`C:\Windows\Fonts\arialuni.ttf`,
		}
	default:
		return []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/TTF/DejaVuSans.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/dejavu-sans-fonts/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/freefont/FreeSerif.ttf",
			"/usr/share/fonts/noto/NotoSansSymbols2-Regular.ttf",
		}
	}
}

// GlyphSet draws pieces as text. With a symbol font it draws the Unicode
// chess glyphs; otherwise it falls back to FEN letters in Go Bold.
type GlyphSet struct {
	source  *text.GoTextFaceSource
	letters bool
	path    string
}

// LoadGlyphSet tries preferred first, then the platform font list.
func LoadGlyphSet(preferred string, log zerolog.Logger) *GlyphSet {
	paths := glyphFontPaths()
	if preferred != "" {
		paths = append([]string{preferred}, paths...)
	}

	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			log.Warn().Err(err).Str("path", p).Msg("failed to parse glyph font")
			continue
		}
		log.Debug().Str("path", p).Msg("glyph font loaded")
		return &GlyphSet{source: src, path: p}
	}

	log.Warn().Msg("no chess symbol font found, drawing pieces as letters")
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Error().Err(err).Msg("failed to load fallback font")
		return &GlyphSet{letters: true}
	}
	return &GlyphSet{source: src, letters: true}
}

// Letters reports whether pieces are drawn as FEN letters.
func (gs *GlyphSet) Letters() bool {
	return gs.letters
}

// Path returns the font file in use, or "" for the built-in fallback.
func (gs *GlyphSet) Path() string {
	return gs.path
}

// DrawPiece draws p centred in the square whose top-left corner is (x, y).
func (gs *GlyphSet) DrawPiece(screen *ebiten.Image, p board.Piece, x, y, size float64, clr color.Color) {
	if gs.source == nil || p == board.NoPiece {
		return
	}

	s := p.Glyph()
	if gs.letters {
		s = p.String()
	}

	face := &text.GoTextFace{Source: gs.source, Size: size * 0.75}
	w, h := text.Measure(s, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+(size-w)/2, y+(size-h)/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
