package tui

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// HoldTracker turns key presses into held actions. Terminals report presses
// and auto-repeats but no releases, so an action stays held until hold has
// passed without another press.
type HoldTracker struct {
	hold  time.Duration
	until map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A non-positive hold falls back to 150ms.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	if hold <= 0 {
		hold = 150 * time.Millisecond
	}
	return &HoldTracker{hold: hold, until: make(map[core.Action]time.Time)}
}

// Press records a press of a. Pressing one direction releases the other.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = now.Add(h.hold)
}

// Fill sets every action still held at now and forgets expired ones.
func (h *HoldTracker) Fill(frame *core.InputFrame, now time.Time) {
	for a, until := range h.until {
		if now.After(until) {
			delete(h.until, a)
			continue
		}
		frame.Set(a)
	}
}

// Held reports whether a is held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	until, ok := h.until[a]
	return ok && !now.After(until)
}

// Release drops every held action.
func (h *HoldTracker) Release() {
	clear(h.until)
}
