// Command knightmoves prints a position and the knight destinations for
// the given squares.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hailam/knightboard/internal/board"
)

type options struct {
	fen     string
	side    string
	letters bool
	noColor bool
	verbose bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "knightmoves [square...]",
		Short: "Show where the knights on a position can jump",
		Example: "  knightmoves g1\n" +
			"  knightmoves --fen 4k3/2p5/8/3N4/8/8/8/4K3 d5",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(out, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.fen, "fen", board.StartPosition, "position string, optionally followed by side to move")
	flags.StringVar(&opts.side, "side", "", "side to move (w or b), overrides the position string")
	flags.BoolVar(&opts.letters, "letters", false, "print FEN letters instead of chess symbols")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log each selection to stderr")

	return cmd
}

func run(out io.Writer, opts *options, args []string) error {
	if opts.noColor {
		color.NoColor = true
	}

	level := zerolog.WarnLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).Level(level)

	g, side, err := board.ParsePosition(opts.fen)
	if err != nil {
		return err
	}
	switch opts.side {
	case "":
	case "w":
		side = board.White
	case "b":
		side = board.Black
	default:
		return fmt.Errorf("invalid side %q: want w or b", opts.side)
	}

	marks := make(map[board.Coord]bool)
	var lines []string
	for _, arg := range args {
		from, err := board.ParseCoord(arg)
		if err != nil {
			return err
		}

		sel := board.Select(g, from, side)
		log.Debug().Stringer("square", from).Stringer("reason", sel.Reason).Int("targets", len(sel.Targets)).Msg("select")

		for _, t := range sel.Targets {
			marks[t] = true
		}
		lines = append(lines, describe(sel))
	}

	renderBoard(out, g, marks, opts.letters)
	fmt.Fprintf(out, "\n%s to move\n", side)
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
	return nil
}
