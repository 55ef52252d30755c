package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// runReporter is implemented by games that record per-level runs.
type runReporter interface {
	TakeRuns() []platformer.LevelRun
}

// reloader is implemented by games that hot reload level files.
type reloader interface {
	ReloadFile(name string) error
}

// reloadMsg carries a level file that changed on disk.
type reloadMsg string

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	reload     <-chan string
	logger     *log.Logger
	now        func() time.Time
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// Option configures a Model.
type Option func(*Model)

// WithHold sets how long a key stays held after its last press.
func WithHold(d time.Duration) Option {
	return func(m *Model) { m.hold = NewHoldTracker(d) }
}

// WithReload delivers changed level files to the game between ticks.
func WithReload(ch <-chan string) Option {
	return func(m *Model) { m.reload = ch }
}

// WithLogger sets the logger for reload and storage problems.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		hold:       NewHoldTracker(0),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), m.waitForReload())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case reloadMsg:
		return m.handleReload(string(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case IsHoldAction(action):
		m.hold.Press(action, m.now())
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize adapts the screen and the game to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.hold.Release()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.hold.Fill(&m.inputFrame, now)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.saveRuns()

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil && m.logger != nil {
				m.logger.Warn("cannot save score", "err", err)
			}
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) saveRuns() {
	rr, ok := m.game.(runReporter)
	if !ok {
		return
	}
	for _, run := range rr.TakeRuns() {
		if m.store == nil {
			continue
		}
		_, err := m.store.SaveRun(storage.LevelRun{
			LevelID: run.LevelID,
			Coins:   run.Coins,
			Stomps:  run.Stomps,
			Deaths:  run.Deaths,
			Cleared: run.Cleared,
			Ticks:   run.Ticks,
		})
		if err != nil && m.logger != nil {
			m.logger.Warn("cannot save level run", "level", run.LevelID, "err", err)
		}
	}
}

// handleReload passes a changed level file to the game and waits for the next.
func (m Model) handleReload(name string) (tea.Model, tea.Cmd) {
	if r, ok := m.game.(reloader); ok {
		err := r.ReloadFile(name)
		if m.logger != nil {
			if err != nil {
				m.logger.Warn("level reload failed", "file", name, "err", err)
			} else {
				m.logger.Info("level reloaded", "file", name)
			}
		}
	}
	return m, m.waitForReload()
}

func (m Model) waitForReload() tea.Cmd {
	if m.reload == nil {
		return nil
	}
	ch := m.reload
	return func() tea.Msg {
		name, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg(name)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// BackToMenu reports whether the player left the game for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model. It reports
// whether the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}

// IsQuitting reports whether the player asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}
