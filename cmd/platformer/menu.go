package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level and mode interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a level, left/right to switch between the
campaign and practice, Enter to play. Esc in a game returns to the menu.

Controls:
  Up/Down/j/k  - Pick level
  Left/Right   - Switch mode
  Enter/Space  - Play
  Tab          - Scores
  Q            - Quit

Examples:
  platformer menu
  platformer menu --fps 30
  platformer menu --levels ./levels`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := fileLogger("platformer")
	defer closeLog()
	applyGameFlags(logger)
	gameCfg := loadConfig(logger)

	infos, err := levelLoader().List()
	if err != nil {
		exitErr(err)
	}

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()
	hold := tui.WithHold(time.Duration(gameCfg.Input.HoldMs) * time.Millisecond)

	for {
		menuResult, err := tui.RunMenu(infos, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if sel, ok := game.(interface{ StartAt(int) }); ok {
			sel.StartAt(menuResult.LevelID)
		}

		cfg.Seed = time.Now().UnixNano()
		back, err := tui.Run(game, store, cfg, hold, tui.WithLogger(logger))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !back {
			return
		}
	}
}
