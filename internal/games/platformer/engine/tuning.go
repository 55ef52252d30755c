package engine

// Tuning holds the simulation constants. Speeds are pixels per delta unit,
// where delta is elapsed milliseconds divided by SpeedDivisor.
type Tuning struct {
	Gravity           float64 // fall speed
	HeroSpeed         float64 // horizontal speed
	JumpVelocity      float64 // initial upward speed
	JumpDecayPer100ms float64 // upward speed lost per 100 ms of jump
	JumpDuration      float64 // ms
	SpeedDivisor      float64
	GumbaSpeed        float64

	HeroPadding float64 // inward padding of entity boxes
	CoinPadding float64 // inward padding of coin boxes

	RiseDuration float64 // ms
	RiseDistance float64 // px

	ViewWidth  float64 // px
	ViewHeight float64 // px, 0 means level height
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:           2,
		HeroSpeed:         1,
		JumpVelocity:      2,
		JumpDecayPer100ms: 0.01,
		JumpDuration:      500,
		SpeedDivisor:      10,
		GumbaSpeed:        0.4,
		HeroPadding:       2,
		CoinPadding:       4,
		RiseDuration:      500,
		RiseDistance:      3 * tile,
		ViewWidth:         16 * tile,
	}
}
