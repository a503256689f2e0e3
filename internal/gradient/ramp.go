// Package gradient maps normalized scalars to colors along fixed breakpoint
// ramps. Ramps are immutable and safe for concurrent use.
package gradient

import "image/color"

// Stop is a (threshold, color) breakpoint. Thresholds are ascending in [0, 1].
type Stop struct {
	T float64
	C color.RGBA
}

// Ramp interpolates linearly between ordered breakpoints. Inputs outside
// [0, 1] are clamped, never rejected.
type Ramp struct {
	stops []Stop
}

// New builds a ramp from ascending stops. At least one stop is required;
// a single stop yields a constant ramp.
func New(stops ...Stop) Ramp {
	return Ramp{stops: stops}
}

// Heat returns the star gradient blue -> white -> yellow -> red.
func Heat() Ramp {
	return New(
		Stop{T: 0.00, C: color.RGBA{R: 80, G: 120, B: 200, A: 255}},
		Stop{T: 0.33, C: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		Stop{T: 0.66, C: color.RGBA{R: 255, G: 220, B: 80, A: 255}},
		Stop{T: 1.00, C: color.RGBA{R: 255, G: 100, B: 40, A: 255}},
	)
}

// Gray returns the monochrome ramp used when color mode is off.
func Gray() Ramp {
	return New(
		Stop{T: 0, C: color.RGBA{R: 60, G: 60, B: 60, A: 255}},
		Stop{T: 1, C: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	)
}

// At returns the interpolated color for t, clamping t to [0, 1].
func (r Ramp) At(t float64) color.RGBA {
	if len(r.stops) == 0 {
		return color.RGBA{}
	}
	if t <= r.stops[0].T {
		return r.stops[0].C
	}
	last := r.stops[len(r.stops)-1]
	if t >= last.T {
		return last.C
	}
	for i := 1; i < len(r.stops); i++ {
		hi := r.stops[i]
		if t > hi.T {
			continue
		}
		lo := r.stops[i-1]
		span := hi.T - lo.T
		if span <= 0 {
			return hi.C
		}
		f := (t - lo.T) / span
		return color.RGBA{
			R: lerp8(lo.C.R, hi.C.R, f),
			G: lerp8(lo.C.G, hi.C.G, f),
			B: lerp8(lo.C.B, hi.C.B, f),
			A: lerp8(lo.C.A, hi.C.A, f),
		}
	}
	return last.C
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
