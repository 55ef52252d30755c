// Package window runs the platformer in a desktop window using Ebitengine.
package window

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// hudHeight is the height in pixels of the status line above the level.
const hudHeight = 16

// columnsPerTile matches the terminal layout, so a given screen width
// selects the same number of visible tiles in both frontends.
const columnsPerTile = 2

// App implements ebiten.Game around a platformer session.
type App struct {
	game       *platformer.Game
	store      *storage.Store
	logger     *log.Logger
	keys       Keys
	runtime    core.RuntimeConfig
	state      core.GameState
	scoreSaved bool
}

// Option configures an App.
type Option func(*App)

// WithStore records scores and level runs.
func WithStore(s *storage.Store) Option {
	return func(a *App) { a.store = s }
}

// WithLogger sets the logger for storage problems.
func WithLogger(l *log.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithKeys replaces the keyboard source.
func WithKeys(k Keys) Option {
	return func(a *App) { a.keys = k }
}

// New creates an app and starts the game. widthTiles is the number of
// tiles visible across the window.
func New(game *platformer.Game, widthTiles, tickRate int, opts ...Option) *App {
	a := &App{
		game: game,
		keys: ebitenKeys{},
		runtime: core.RuntimeConfig{
			ScreenW:  widthTiles * columnsPerTile,
			TickRate: tickRate,
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	a.game.Reset(a.runtime)
	a.state = a.game.State()
	return a
}

// Update advances the game by one tick.
func (a *App) Update() error {
	frame := readFrame(a.keys)
	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if frame.Has(core.ActionRestart) && a.state.GameOver {
		a.game.Reset(a.runtime)
		a.state = a.game.State()
		a.scoreSaved = false
		return nil
	}

	a.state = a.game.Step(frame).State
	a.record()
	return nil
}

func (a *App) record() {
	runs := a.game.TakeRuns()
	if a.store == nil {
		return
	}
	for _, run := range runs {
		_, err := a.store.SaveRun(storage.LevelRun{
			LevelID: run.LevelID,
			Coins:   run.Coins,
			Stomps:  run.Stomps,
			Deaths:  run.Deaths,
			Cleared: run.Cleared,
			Ticks:   run.Ticks,
		})
		if err != nil && a.logger != nil {
			a.logger.Warn("cannot save level run", "level", run.LevelID, "err", err)
		}
	}
	if a.state.GameOver && !a.scoreSaved && a.state.Score > 0 {
		if _, err := a.store.SaveScore(a.game.ID(), a.state.Score); err != nil && a.logger != nil {
			a.logger.Warn("cannot save score", "err", err)
		}
		a.scoreSaved = true
	}
}

// Draw renders the level and the status line.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	ctx := a.game.Context()
	if ctx == nil {
		ebitenutil.DebugPrintAt(screen, "no levels found", 4, 4)
		return
	}
	a.game.DrawTo(NewImageSurface(screen, hudHeight))
	ebitenutil.DebugPrintAt(screen, a.hudText(), 4, 0)

	if msg := overlayText(a.state); msg != "" {
		w, h := a.Layout(0, 0)
		ebitenutil.DebugPrintAt(screen, msg, w/2-len(msg)*3, h/2)
	}
}

func (a *App) hudText() string {
	parts := []string{
		a.game.LevelTitle(),
		fmt.Sprintf("Score %06d", a.state.Score),
		fmt.Sprintf("Coins %d", a.state.Coins),
	}
	if a.game.ID() == "practice" {
		parts = append(parts, "Practice")
	} else {
		parts = append(parts, fmt.Sprintf("Lives %d", a.state.Lives))
	}
	return strings.Join(parts, "  ")
}

func overlayText(st core.GameState) string {
	switch {
	case st.Won:
		return "YOU WIN! R to play again"
	case st.GameOver:
		return "GAME OVER - R to restart"
	case st.Paused:
		return "PAUSED"
	}
	return ""
}

// Layout returns the logical screen size: the viewport plus the status line.
func (a *App) Layout(_, _ int) (int, int) {
	ctx := a.game.Context()
	if ctx == nil {
		return 320, 240
	}
	return int(ctx.ViewWidth), int(ctx.ViewHeight) + hudHeight
}

// Run opens a window scaled by scale and blocks until it is closed.
func Run(a *App, title string, scale int) error {
	if scale <= 0 {
		scale = 2
	}
	w, h := a.Layout(0, 0)
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if a.runtime.TickRate > 0 {
		ebiten.SetTPS(a.runtime.TickRate)
	}
	return ebiten.RunGame(a)
}
