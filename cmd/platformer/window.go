package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/window"
)

var (
	flagWindowTiles int
	flagWindowScale int
	flagWindowMode  string
)

var windowCmd = &cobra.Command{
	Use:   "window [level]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with real key presses and releases.

Controls:
  Left/Right, A/D  - Run
  Space/Up/W       - Jump
  P                - Pause
  R                - Restart (after game over)
  Esc/Q            - Quit

Examples:
  platformer window
  platformer window 2 --scale 3
  platformer window --mode practice --tiles 24`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowTiles, "tiles", 16, "Number of tiles visible across the window")
	windowCmd.Flags().IntVar(&flagWindowScale, "scale", 2, "Window scale factor")
	windowCmd.Flags().StringVar(&flagWindowMode, "mode", "platformer", "Game mode: platformer or practice")
}

func runWindow(_ *cobra.Command, args []string) {
	start, err := levelArg(args)
	if err != nil {
		exitErr(err)
	}

	var mode platformer.Mode
	switch flagWindowMode {
	case "platformer":
		mode = platformer.ModeCampaign
	case "practice":
		mode = platformer.ModePractice
	default:
		exitErr(fmt.Errorf("unknown mode %q", flagWindowMode))
	}

	logger := newLogger(os.Stderr, "window")
	applyGameFlags(logger)

	game := platformer.New(mode)
	if start > 0 {
		game.StartAt(start)
	}

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	opts := []window.Option{window.WithLogger(logger)}
	if store != nil {
		opts = append(opts, window.WithStore(store))
	}
	app := window.New(game, flagWindowTiles, flagFPS, opts...)

	if err := window.Run(app, game.Title(), flagWindowScale); err != nil {
		exitErr(err)
	}
}
