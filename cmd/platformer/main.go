// platformer is a side-scrolling platformer that runs in the terminal, over
// SSH, or in a desktop window.
//
// Usage:
//
//	platformer list              - List game modes and levels
//	platformer play [level]      - Play, optionally starting at a level id
//	platformer menu              - Pick levels interactively
//	platformer serve             - Start SSH server for remote play
//	platformer scores [mode]     - Show high scores and level statistics
//	platformer sim [level]       - Run a level headless with scripted input
//	platformer window [level]    - Play in a desktop window
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.platformer/scores.db)
//	--config <path>       - Custom platformer.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--levels <dir>        - Load levels from a directory instead of the bundled set
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - run, jump and stomp in your terminal",
	Long: `Platformer is a tile-based side scroller. Levels are YAML or JSON
files; a small set is bundled with the binary.

Available commands:
  list     - Show game modes and levels
  play     - Play the campaign or practice a level
  menu     - Interactive level picker
  serve    - Start SSH server for remote play
  scores   - View high scores and level statistics
  sim      - Run a level headless with scripted input
  window   - Play in a desktop window

Examples:
  platformer list
  platformer play
  platformer play 2 --difficulty easy
  platformer play --levels ./levels --watch
  platformer serve --ssh :2222
  platformer sim 1 --script right:0-3000,up:400-900`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with level files (default: bundled levels)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(windowCmd)
}

// newLogger returns a logger writing to w with the given prefix.
func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// fileLogger logs to ~/.platformer/platformer.log, since the terminal is
// owned by the game while it runs. It falls back to discarding output.
func fileLogger(prefix string) (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	dir := filepath.Join(home, ".platformer")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "platformer.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	return newLogger(f, prefix), func() { f.Close() }
}

// applyGameFlags passes the global flags to the platformer package.
func applyGameFlags(logger *log.Logger) {
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			logger.Warn("unknown difficulty preset, using config", "preset", flagDifficulty)
		}
	}
	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	platformer.SetLevelsDir(flagLevelsDir)
	platformer.SetLogger(logger)
}

// levelLoader returns the loader selected by --levels.
func levelLoader() *levels.Loader {
	if flagLevelsDir != "" {
		return levels.NewLoader(flagLevelsDir)
	}
	return levels.Bundled()
}

// loadConfig loads the effective config for frontend settings such as the
// key hold time. Errors fall back to defaults.
func loadConfig(logger *log.Logger) config.PlatformerConfig {
	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultPlatformerConfig()
	}
	if p, ok := config.ParsePreset(flagDifficulty); ok && flagDifficulty != "" {
		config.ApplyPlatformerPreset(&cfg, p)
	}
	return cfg
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}

// openStore opens the score database. Failure is a warning; the game still runs.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// levelArg parses an optional level id argument. 0 means none.
func levelArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid level id %q", args[0])
	}
	return id, nil
}

func exitErr(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
