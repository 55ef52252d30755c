// Package platformer runs the side-scrolling engine as a registered game mode.
// A campaign covers the loaded levels with lives and a score; frames are
// rendered into a core.Screen.
package platformer

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Mode selects campaign rules.
type Mode int

const (
	// ModeCampaign plays every level in order with a limited number of lives.
	ModeCampaign Mode = iota
	// ModePractice repeats one level with unlimited lives.
	ModePractice
)

// hudHeight is the number of screen rows above the level.
const hudHeight = 1

// LevelRun summarizes one attempt at a level.
type LevelRun struct {
	LevelID int
	Coins   int
	Stomps  int
	Deaths  int
	Cleared bool
	Ticks   int
}

// Game implements registry.Game for the platformer.
type Game struct {
	mode       Mode
	startAt    int
	runtime    core.RuntimeConfig
	cfg        config.PlatformerConfig
	difficulty *config.DifficultyManager
	loader     *levels.Loader
	sprites    engine.Sprites

	levels   []*level.Level
	pristine [][]level.Item // items of each level as loaded
	index    int
	ctx      *engine.Context

	tick     int
	score    int
	coins    int
	lives    int
	cleared  int
	run      LevelRun
	runs     []LevelRun
	gameOver bool
	won      bool
	paused   bool
	loadErr  error
}

// Package-level settings applied on the next Reset, set from the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	selectedStart    int
	levelsDir        string
	logger           *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config default.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetStartLevel selects the first level by id. 0 uses the configured start.
func SetStartLevel(id int) {
	selectedStart = id
}

// SetLevelsDir loads levels from a directory instead of the bundled set.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// LevelsDir returns the directory set with SetLevelsDir.
func LevelsDir() string {
	return levelsDir
}

// SetLogger sets the logger used for level loading warnings.
func SetLogger(l *log.Logger) {
	logger = l
}

func init() {
	registry.Register("platformer", func() registry.Game {
		return New(ModeCampaign)
	})
	registry.Register("practice", func() registry.Game {
		return New(ModePractice)
	})
}

// New creates a game in the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode, sprites: engine.DefaultSprites()}
}

// StartAt selects the first level of this game by id, overriding
// SetStartLevel. It applies on the next Reset.
func (g *Game) StartAt(id int) {
	g.startAt = id
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "practice"
	}
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Platformer Practice"
	}
	return "Platformer"
}

// Reset loads configuration and levels and starts a new campaign.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("using default config", "err", err)
		}
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.tick = 0
	g.score = 0
	g.coins = 0
	g.cleared = 0
	g.lives = max(1, cfg.Gameplay.Lives)
	g.runs = nil
	g.gameOver = false
	g.won = false
	g.paused = false
	g.ctx = nil

	g.loadErr = g.loadLevels()
	if g.loadErr != nil {
		g.gameOver = true
		return
	}

	start := cfg.Gameplay.StartLevel
	if selectedStart > 0 {
		start = selectedStart
	}
	if g.startAt > 0 {
		start = g.startAt
	}
	g.index = 0
	for i, lv := range g.levels {
		if lv.ID == start {
			g.index = i
			break
		}
	}
	g.startLevel()
}

func (g *Game) loadLevels() error {
	g.loader = levels.Bundled()
	if levelsDir != "" {
		g.loader = levels.NewLoader(levelsDir)
	}
	g.loader.Logger = logger

	all, err := g.loader.LoadAll()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return fmt.Errorf("no levels found")
	}
	g.levels = all
	g.pristine = make([][]level.Item, len(all))
	for i, lv := range all {
		g.pristine[i] = lv.Clone()
	}
	return nil
}

// startLevel builds a fresh context for the current level index. Items
// changed by an earlier play of the level are restored first.
func (g *Game) startLevel() {
	lv := g.levels[g.index]
	lv.Reset(g.pristine[g.index])
	t := TuningFromConfig(g.cfg)
	t.GumbaSpeed = g.difficulty.EnemySpeed(g.cfg.Enemies.Speed, g.score, g.cleared)
	t.ViewWidth, t.ViewHeight = g.viewport()

	g.ctx = engine.NewContext(lv, t)
	g.run = LevelRun{LevelID: lv.ID}
}

// viewport returns the visible area in pixels for the current screen size.
func (g *Game) viewport() (w, h float64) {
	tiles := max(1, g.runtime.ScreenW/cellWidth)
	if vw := g.cfg.View.WidthTiles; vw > 0 {
		tiles = min(tiles, vw)
	}
	w = float64(tiles * level.TileSize)
	if vh := g.cfg.View.HeightTiles; vh > 0 {
		h = float64(vh * level.TileSize)
	}
	return w, h
}

// Resize adapts the viewport to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.ctx != nil {
		g.ctx.SetViewport(g.viewport())
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.run.Ticks++
	ts := float64(g.tick) * 1000 / float64(g.runtime.TickRate)

	ev := engine.Step(g.ctx, engine.Input{
		Up:    in.Has(core.ActionJump),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}, ts)

	g.applyEvents(ev)
	res := core.StepResult{Died: ev.Death != engine.DeathNone}

	switch {
	case res.Died:
		g.run.Deaths++
		if g.mode == ModeCampaign {
			g.lives--
			if g.lives <= 0 {
				g.lives = 0
				g.finishRun(false)
				g.gameOver = true
			}
		}
	case engine.AtLevelEnd(g.ctx):
		res.LevelCleared = true
		g.score += g.cfg.Scoring.LevelClear
		g.cleared++
		g.finishRun(true)
		g.nextLevel()
	}

	res.State = g.State()
	return res
}

func (g *Game) applyEvents(ev engine.Events) {
	sc := g.cfg.Scoring
	g.score += len(ev.Coins)*sc.Coin + len(ev.Struck)*sc.BlockCoin + len(ev.Stomped)*sc.Stomp
	g.coins += len(ev.Coins) + len(ev.Struck)
	g.run.Coins += len(ev.Coins) + len(ev.Struck)
	g.run.Stomps += len(ev.Stomped)
}

func (g *Game) finishRun(cleared bool) {
	g.run.Cleared = cleared
	g.runs = append(g.runs, g.run)
}

func (g *Game) nextLevel() {
	if g.mode == ModePractice {
		g.startLevel()
		return
	}
	if g.index+1 >= len(g.levels) {
		g.won = true
		g.gameOver = true
		return
	}
	g.index++
	g.startLevel()
}

// TakeRuns returns the level runs finished since the last call.
func (g *Game) TakeRuns() []LevelRun {
	runs := g.runs
	g.runs = nil
	return runs
}

// ReloadFile reloads a level file that changed on disk. name is the path
// reported by the watcher. A reload of the level being played restarts it.
func (g *Game) ReloadFile(name string) error {
	if g.loader == nil || levelsDir == "" {
		return fmt.Errorf("levels are not loaded from a directory")
	}
	rel, err := filepath.Rel(levelsDir, name)
	if err != nil {
		return err
	}
	lv, err := g.loader.LoadFile(filepath.ToSlash(rel))
	if err != nil {
		return err
	}
	g.ReplaceLevel(lv)
	return nil
}

// ReplaceLevel swaps in a level with the same id, or appends a new one.
func (g *Game) ReplaceLevel(lv *level.Level) {
	for i, old := range g.levels {
		if old.ID != lv.ID {
			continue
		}
		g.levels[i] = lv
		g.pristine[i] = lv.Clone()
		if i == g.index && !g.gameOver {
			g.startLevel()
		}
		return
	}
	g.levels = append(g.levels, lv)
	g.pristine = append(g.pristine, lv.Clone())
}

// Context exposes the running simulation for frontends that draw directly.
func (g *Game) Context() *engine.Context {
	return g.ctx
}

// Sprites returns the sprite set used for drawing.
func (g *Game) Sprites() engine.Sprites {
	return g.sprites
}

// Config returns the effective configuration.
func (g *Game) Config() config.PlatformerConfig {
	return g.cfg
}

// LevelTitle returns the title of the level being played.
func (g *Game) LevelTitle() string {
	if g.ctx == nil {
		return ""
	}
	return g.ctx.Level.Title
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
		Lives:    g.lives,
		Coins:    g.coins,
	}
	if g.ctx != nil {
		st.Level = g.ctx.Level.ID
	}
	return st
}

// DrawTo draws the current frame of the level onto s.
func (g *Game) DrawTo(s engine.Surface) {
	if g.ctx == nil {
		return
	}
	engine.Draw(g.ctx, s, g.sprites)
}
