// Knightboard - a chessboard that shows where knights can jump, built with Ebitengine
package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/hailam/knightboard/internal/storage"
	"github.com/hailam/knightboard/internal/ui"
)

var (
	fenFlag   = flag.String("fen", "", "starting position (board field, optional side to move)")
	fontFlag  = flag.String("font", "", "TTF font with chess symbols")
	noStore   = flag.Bool("no-store", false, "do not read or write preferences")
	debugFlag = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()

	level := zerolog.InfoLevel
	if *debugFlag {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	var store *storage.Storage
	if !*noStore {
		var err error
		store, err = storage.NewStorage(log)
		if err != nil {
			log.Warn().Err(err).Msg("preferences unavailable")
		} else {
			defer store.Close()
		}
	}

	game, err := ui.NewGame(ui.Config{
		FEN:       *fenFlag,
		GlyphFont: *fontFlag,
		Storage:   store,
		Log:       log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("start")
	}
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Knightboard")
	if icons, err := ui.WindowIcons(); err != nil {
		log.Warn().Err(err).Msg("window icon")
	} else {
		ebiten.SetWindowIcon(icons)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Error().Err(err).Msg("run")
	}
}
