package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var testInfos = []levels.Info{
	{ID: 1, Title: "World 1-1", Path: "1.yaml"},
	{ID: 2, Title: "World 1-2", Path: "2.yaml"},
}

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	require.True(t, ok)
	return nm
}

func TestMenuSelectsLevelAndMode(t *testing.T) {
	m := NewMenuModel(testInfos, nil, core.RuntimeConfig{ScreenW: 100, ScreenH: 30})
	assert.Contains(t, m.View(), "World 1-2")

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.Result()
	assert.Equal(t, "practice", res.GameID)
	assert.Equal(t, 2, res.LevelID)
	assert.False(t, res.Quit)
}

func TestMenuModeWraps(t *testing.T) {
	m := NewMenuModel(testInfos, nil, core.RuntimeConfig{ScreenW: 80})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "practice", m.SelectedMode())
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "platformer", m.SelectedMode())
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(testInfos, nil, core.RuntimeConfig{})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.Result().WantsScoreboard)

	m = NewMenuModel(testInfos, nil, core.RuntimeConfig{})
	m = menuUpdate(t, m, runeKey("q"))
	assert.True(t, m.IsQuitting())
	assert.True(t, m.Result().Quit)
}

func TestMenuEmpty(t *testing.T) {
	m := NewMenuModel(nil, nil, core.RuntimeConfig{ScreenW: 80})
	assert.Contains(t, m.View(), "No levels found")

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.Selected())
}

func TestMenuShowsStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.SaveRun(storage.LevelRun{LevelID: 1, Coins: 4, Cleared: true, Ticks: 300})
	require.NoError(t, err)

	m := NewMenuModel(testInfos, store, core.RuntimeConfig{ScreenW: 100})
	require.NotNil(t, m.items[0].Stats)
	assert.Nil(t, m.items[1].Stats)
	assert.Contains(t, m.View(), "best 4 coins")
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(testInfos, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m = menuUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.Config().ScreenW)
	assert.Equal(t, 40, m.Config().ScreenH)
}
