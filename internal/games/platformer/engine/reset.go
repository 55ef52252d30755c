package engine

// Reset restores the level items, hero, gumbas, coins and strikes to the state
// captured when the context was created. The next Step runs with zero delta.
func Reset(c *Context) {
	c.Level.Reset(c.pristine)

	start := c.Level.Start
	c.Hero = NewHero(float64(start.Col)*tile, float64(start.Row)*tile)
	c.Gumbas = SpawnGumbas(c.Level.Gumbas)
	c.RisingCoins = nil
	c.Strikes.Clear()

	c.Timestamp = 0
	c.FormerTimestamp = 0
	c.Delta = 0
	c.Direction = DirRight
	c.IsFalling = false
	c.MovedVertically = false
	c.HitTopAt = 0
	c.Beaten = false
	c.FellOff = false

	updateCamera(c)
}
