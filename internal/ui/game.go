package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/hailam/knightboard/internal/board"
	"github.com/hailam/knightboard/internal/game"
	"github.com/hailam/knightboard/internal/storage"
)

// UI Constants
const (
	SquareSize   = 75
	BoardSize    = SquareSize * 8
	Margin       = 10
	StatusHeight = 28
	ScreenWidth  = BoardSize + Margin*2
	ScreenHeight = BoardSize + Margin*2 + StatusHeight
)

const noticeDuration = 3 * time.Second

// Config carries the startup options for the window.
type Config struct {
	FEN       string           // starting position, board field with optional side field
	GlyphFont string           // font file overriding the stored preference
	Storage   *storage.Storage // may be nil; preferences are then not persisted
	Log       zerolog.Logger
}

// notice is a transient status message.
type notice struct {
	text  string
	until time.Time
}

// Game implements ebiten.Game interface.
type Game struct {
	session  *game.Session
	startFEN string

	renderer *Renderer
	input    *InputHandler
	hover    board.Coord
	notice   notice

	storage *storage.Storage
	prefs   *storage.Preferences

	log   zerolog.Logger
	scale float64
}

// NewGame creates the window state for cfg.
func NewGame(cfg Config) (*Game, error) {
	if cfg.FEN == "" {
		cfg.FEN = board.StartPosition
	}

	session, err := game.NewSession(cfg.FEN, cfg.Log)
	if err != nil {
		return nil, err
	}

	g := &Game{
		session:  session,
		startFEN: cfg.FEN,
		input:    NewInputHandler(),
		hover:    board.NoCoord,
		storage:  cfg.Storage,
		log:      cfg.Log,
		scale:    1.0,
	}

	g.loadPreferences()

	fontPath := g.prefs.GlyphFont
	if cfg.GlyphFont != "" {
		fontPath = cfg.GlyphFont
	}
	glyphs := LoadGlyphSet(fontPath, cfg.Log)
	if cfg.GlyphFont != "" {
		if glyphs.Path() == cfg.GlyphFont {
			g.prefs.GlyphFont = cfg.GlyphFont // remembered for the next launch
		} else {
			g.log.Warn().Str("font", cfg.GlyphFont).Msg("requested glyph font not usable")
		}
	}

	markers, err := NewMarkerSet(SquareSize * 3)
	if err != nil {
		return nil, fmt.Errorf("load markers: %w", err)
	}

	g.renderer = NewRenderer(glyphs, markers, Margin, SquareSize)
	g.renderer.SetFlipped(g.prefs.Flipped)

	if glyphs.Letters() {
		g.showNotice("No chess font found: pieces shown as letters")
	}
	g.checkFirstLaunch()

	return g, nil
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
		return
	}

	var err error
	g.prefs, err = g.storage.LoadPreferences()
	if err != nil {
		g.log.Warn().Err(err).Msg("failed to load preferences")
		g.prefs = storage.DefaultPreferences()
	}
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}

	g.prefs.Flipped = g.renderer.Flipped()
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		g.log.Warn().Err(err).Msg("failed to save preferences")
	}
}

// checkFirstLaunch shows a usage hint on first launch.
func (g *Game) checkFirstLaunch() {
	if g.storage == nil {
		return
	}

	isFirst, err := g.storage.IsFirstLaunch()
	if err != nil {
		g.log.Warn().Err(err).Msg("failed to check first launch")
		return
	}
	if !isFirst {
		return
	}

	g.notice = notice{text: "Click a knight to see its moves. F flips, R resets.", until: time.Now().Add(3 * noticeDuration)}
	if err := g.storage.MarkFirstLaunchComplete(); err != nil {
		g.log.Warn().Err(err).Msg("failed to mark first launch complete")
	}
}

func (g *Game) showNotice(msg string) {
	g.notice = notice{text: msg, until: time.Now().Add(noticeDuration)}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update(g.scale)
	g.handleKeys()

	mx, my := g.input.MousePosition()
	g.hover = g.renderer.ScreenToCoord(mx, my)

	if g.input.IsLeftJustPressed() && g.hover != board.NoCoord {
		g.handleClick(g.hover)
	}

	if g.hover != board.NoCoord {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}

	return nil
}

func (g *Game) handleKeys() {
	switch {
	case IsKeyJustPressed(ebiten.KeyF):
		g.renderer.SetFlipped(!g.renderer.Flipped())
		g.savePreferences()
	case IsKeyJustPressed(ebiten.KeyC):
		g.prefs.ShowCoordinates = !g.prefs.ShowCoordinates
		g.savePreferences()
	case IsKeyJustPressed(ebiten.KeyR):
		if err := g.session.Reset(g.startFEN); err != nil {
			g.log.Error().Err(err).Msg("reset failed")
			return
		}
		g.showNotice("Position reset")
	case IsKeyJustPressed(ebiten.KeyEscape):
		g.session.ClearSelection()
	}
}

// handleClick forwards a board click to the session.
func (g *Game) handleClick(c board.Coord) {
	res, err := g.session.Click(c)
	if err != nil {
		g.log.Error().Err(err).Stringer("square", c).Msg("click failed")
		g.showNotice(err.Error())
		return
	}

	switch res.Kind {
	case game.ClickMoved:
		g.showNotice(fmt.Sprintf("%s %s", res.Move.Piece.Glyph(), res.Move))
	case game.ClickRejected:
		if msg := g.session.Notice(); msg != "" {
			g.showNotice(msg)
		}
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)

	screen.Fill(g.renderer.Theme().Background)

	grid, err := g.session.Grid()
	if err != nil {
		// Session only stores encoded grids, so this is unreachable in practice.
		g.log.Error().Err(err).Msg("decode position")
		return
	}

	g.renderer.DrawBoard(screen, g.hover)
	g.renderer.DrawHighlights(screen, grid, g.session.Selected(), g.session.Highlights())
	if g.prefs.ShowCoordinates {
		g.renderer.DrawCoordinates(screen)
	}
	g.renderer.DrawPieces(screen, grid)
	g.renderer.DrawStatus(screen, g.statusLine())
}

// statusLine returns the text for the bar under the board.
func (g *Game) statusLine() string {
	if g.notice.text != "" && time.Now().Before(g.notice.until) {
		return g.notice.text
	}

	line := fmt.Sprintf("%s to move", g.session.ToMove())
	if sel := g.session.Selected(); sel != board.NoCoord {
		line += fmt.Sprintf("  |  %s: %d moves", sel, len(g.session.Highlights()))
	}
	return line
}

// Layout returns the game's screen dimensions.
// Uses device scale factor for crisp rendering on HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}

// Close saves preferences. The caller owns and closes the storage.
func (g *Game) Close() {
	g.savePreferences()
}
