package sim

import "math"

// spiralEpsilon keeps the per-particle angle finite near the view axis.
const spiralEpsilon = 1e-3

// Spiral rotates the (x, y) components of p around the view axis by an angle
// proportional to elapsed and inversely related to the distance from center,
// so inner particles wind faster than outer ones. A zero rate or zero elapsed
// time is the identity.
func Spiral(p Vec3, elapsed, rate float64) Vec3 {
	if rate == 0 || elapsed == 0 {
		return p
	}
	radius := math.Hypot(p.X, p.Y)
	angle := rate * elapsed / (radius + spiralEpsilon)
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
		Z: p.Z,
	}
}
