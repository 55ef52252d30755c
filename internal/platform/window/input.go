package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Keys reports keyboard state for one frame.
type Keys interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (ebitenKeys) JustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	jumpKeys  = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace}
	quitKeys  = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

func anyPressed(keys Keys, list []ebiten.Key) bool {
	for _, k := range list {
		if keys.Pressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys Keys, list []ebiten.Key) bool {
	for _, k := range list {
		if keys.JustPressed(k) {
			return true
		}
	}
	return false
}

// readFrame maps held movement keys and freshly pressed command keys to
// an input frame. Real key state needs no hold emulation.
func readFrame(keys Keys) core.InputFrame {
	frame := core.NewInputFrame()
	if anyPressed(keys, leftKeys) {
		frame.Set(core.ActionLeft)
	}
	if anyPressed(keys, rightKeys) {
		frame.Set(core.ActionRight)
	}
	if anyPressed(keys, jumpKeys) {
		frame.Set(core.ActionJump)
	}
	if keys.JustPressed(ebiten.KeyP) {
		frame.Set(core.ActionPause)
	}
	if keys.JustPressed(ebiten.KeyR) {
		frame.Set(core.ActionRestart)
	}
	if anyJustPressed(keys, quitKeys) {
		frame.Set(core.ActionQuit)
	}
	return frame
}
