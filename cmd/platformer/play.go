package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	flagMode  string
	flagWatch bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the platformer",
	Long: `Start playing, optionally at the given level id.

Controls:
  Left/Right, A/D  - Run
  Space/Up/W       - Jump (hold for a higher jump)
  P                - Pause
  R                - Restart (after game over)
  Esc              - Back
  Q/Ctrl+C         - Quit

Terminals report key presses but no releases, so a key counts as held for
input.hold_ms after its last press or auto-repeat.

Modes:
  platformer - All levels in order with limited lives
  practice   - Repeat one level with unlimited lives

Difficulty options:
  easy   - More lives, slower enemies
  normal - Config defaults
  hard   - One life, faster enemies
  fixed  - Config defaults, no speed-up between levels

Examples:
  platformer play
  platformer play 2 --mode practice
  platformer play --difficulty hard
  platformer play --levels ./levels --watch
  platformer play --config ./my-platformer.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "platformer", "Game mode: platformer or practice")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload level files from --levels when they change")
}

func runPlay(_ *cobra.Command, args []string) {
	if !registry.Exists(flagMode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagMode)
		fmt.Fprintln(os.Stderr, "Run 'platformer list' to see available modes.")
		os.Exit(1)
	}
	start, err := levelArg(args)
	if err != nil {
		exitErr(err)
	}
	if flagWatch && flagLevelsDir == "" {
		exitErr(errors.New("--watch needs --levels"))
	}

	logger, closeLog := fileLogger("platformer")
	defer closeLog()
	applyGameFlags(logger)
	cfg := loadConfig(logger)

	game, err := registry.Create(flagMode)
	if err != nil {
		exitErr(err)
	}
	if pg, ok := game.(*platformer.Game); ok && start > 0 {
		pg.StartAt(start)
	}

	opts := []tui.Option{
		tui.WithHold(time.Duration(cfg.Input.HoldMs) * time.Millisecond),
		tui.WithLogger(logger),
	}
	if flagWatch {
		w, werr := levels.NewWatcher(flagLevelsDir)
		if werr != nil {
			exitErr(fmt.Errorf("cannot watch levels: %w", werr))
		}
		defer w.Close()
		go func() {
			for err := range w.Errors {
				logger.Warn("level watcher", "err", err)
			}
		}()
		opts = append(opts, tui.WithReload(w.Events))
	}

	store := openStore()

	_, runErr := tui.Run(game, store, runtimeConfig(), opts...)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitErr(fmt.Errorf("running game: %w", runErr))
	}
}
