package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{runeKey("a"), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{runeKey("d"), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey("p"), core.ActionPause, false},
		{runeKey("r"), core.ActionRestart, false},
		{runeKey("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(tt.msg)
		assert.Equal(t, tt.action, action, "key %q", tt.msg.String())
		assert.Equal(t, tt.quit, quit, "key %q", tt.msg.String())
	}
}

func TestIsHoldAction(t *testing.T) {
	assert.True(t, IsHoldAction(core.ActionLeft))
	assert.True(t, IsHoldAction(core.ActionRight))
	assert.True(t, IsHoldAction(core.ActionJump))
	assert.False(t, IsHoldAction(core.ActionPause))
	assert.False(t, IsHoldAction(core.ActionNone))
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(runeKey("j")))
	assert.Equal(t, MenuActionLeft, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyLeft}))
	assert.Equal(t, MenuActionRight, km.MapKeyToMenuAction(runeKey("l")))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runeKey("q")))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey("z")))
}
