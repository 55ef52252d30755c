package engine

import "math"

// NewHero returns a hero at rest at a pixel position.
func NewHero(x, y float64) Hero {
	return Hero{Pos: Vec{X: x, Y: y}}
}

// MoveHero applies one frame of vertical then horizontal motion.
//
// Timestamps must be positive: a JumpStart of 0 means no jump is active.
func MoveHero(c *Context, in Input) {
	h := &c.Hero
	initY := h.Pos.Y

	jumping := in.Up && h.JumpStart != 0 && c.Timestamp-h.JumpStart < c.Tuning.JumpDuration
	if jumping {
		jump(c)
	} else {
		h.JumpStart = 0
		if fall(c) && in.Up {
			h.JumpStart = c.Timestamp
		}
	}

	switch {
	case in.Right:
		moveRight(c)
	case in.Left:
		moveLeft(c)
	}

	if in.Left || in.Right {
		if h.RunStart == 0 {
			h.RunStart = c.Timestamp
		}
	} else {
		h.RunStart = 0
	}

	h.Pos.X = math.Max(0, h.Pos.X)

	c.IsFalling = h.Pos.Y > initY
	c.MovedVertically = h.Pos.Y != initY
}

// jump moves the hero up with linearly decaying velocity. Reaching the ceiling
// ends the jump and records the head hit.
func jump(c *Context) {
	h := &c.Hero
	t := c.Tuning
	elapsed := c.Timestamp - h.JumpStart
	v := math.Max(0, t.JumpVelocity-t.JumpDecayPer100ms*elapsed/100)
	minY := c.query().MinY(h.Pos)

	cand := h.Pos.Y - v*c.Delta
	if cand <= minY {
		h.Pos.Y = minY
		h.JumpStart = 0
		c.HitTopAt = c.Timestamp
		return
	}
	h.Pos.Y = cand
}

// fall applies gravity and reports whether the hero rests on solid ground.
func fall(c *Context) bool {
	h := &c.Hero
	maxY := c.query().MaxY(h.Pos)
	cand := h.Pos.Y + c.Tuning.Gravity*c.Delta
	if cand >= maxY {
		h.Pos.Y = maxY
		return true
	}
	h.Pos.Y = cand
	return false
}

func moveRight(c *Context) {
	h := &c.Hero
	maxX := c.query().MaxX(h.Pos)
	h.Pos.X = math.Min(h.Pos.X+c.Tuning.HeroSpeed*c.Delta, maxX)
	c.Direction = DirRight
}

func moveLeft(c *Context) {
	h := &c.Hero
	minX := c.query().MinX(h.Pos)
	h.Pos.X = math.Max(h.Pos.X-c.Tuning.HeroSpeed*c.Delta, minX)
	c.Direction = DirLeft
}
