package core

// Tick rate bounds. Every mutation clamps into [MinTPS, MaxTPS].
const (
	MinTPS  = 5
	MaxTPS  = 250
	TPSStep = 5
)

// TickRate holds the target ticks-per-second of the frame loop. It is
// owned by the frame loop and mutated only through the input controls.
type TickRate struct {
	tps int
}

// NewTickRate constructs a TickRate clamped into the valid range.
func NewTickRate(tps int) *TickRate {
	return &TickRate{tps: clampTPS(tps)}
}

// TPS returns the current target.
func (r *TickRate) TPS() int { return r.tps }

// Increase raises the target by one step, capped at MaxTPS, and returns
// the new value.
func (r *TickRate) Increase() int {
	r.tps = clampTPS(r.tps + TPSStep)
	return r.tps
}

// Decrease lowers the target by one step, floored at MinTPS, and returns
// the new value.
func (r *TickRate) Decrease() int {
	r.tps = clampTPS(r.tps - TPSStep)
	return r.tps
}

func clampTPS(tps int) int {
	if tps < MinTPS {
		return MinTPS
	}
	if tps > MaxTPS {
		return MaxTPS
	}
	return tps
}
