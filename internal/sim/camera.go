package sim

// Camera models the fixed viewpoint at the origin. Steering does not rotate
// the camera; it shifts the projected field in screen space, which reads as a
// tilt at the small angles the demo uses.
type Camera struct {
	FocalLength     float64
	BoostMultiplier float64
	MaxShift        float64

	OffsetX float64
	OffsetY float64
	Boost   bool
}

// Steer updates the screen-space offset from normalized stick values.
// Inputs outside [-1, 1] are clamped.
func (c *Camera) Steer(x, y float64) {
	c.OffsetX = clamp(x, -1, 1) * c.MaxShift
	c.OffsetY = clamp(y, -1, 1) * c.MaxShift
}

// SpeedMult returns the global speed multiplier for the current boost state.
func (c *Camera) SpeedMult() float64 {
	if c.Boost {
		return c.BoostMultiplier
	}
	return 1.0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
