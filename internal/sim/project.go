package sim

// Projector converts camera-space positions into viewport pixels. It is a
// pure value; Project has no side effects.
type Projector struct {
	Width   float64
	Height  float64
	Margin  float64
	MinSize float64
	MaxSize float64
}

// Project computes the screen position and perspective scale for p. The
// caller guarantees p.Z is in front of the near plane. ok is false when the
// point lands outside the viewport beyond the configured margin, which the
// field treats as a respawn trigger rather than an error.
func (pr Projector) Project(p Vec3, cam *Camera) (sp ScreenPoint, scale float64, ok bool) {
	scale = cam.FocalLength / p.Z
	sp.X = pr.Width/2 + p.X*scale + cam.OffsetX
	sp.Y = pr.Height/2 + p.Y*scale + cam.OffsetY
	if sp.X < -pr.Margin || sp.X > pr.Width+pr.Margin ||
		sp.Y < -pr.Margin || sp.Y > pr.Height+pr.Margin {
		return sp, scale, false
	}
	return sp, scale, true
}

// PointSize maps a perspective scale and per-particle base size to a drawable
// radius, clamped to the configured bounds. Closer means larger.
func (pr Projector) PointSize(scale, baseSize float64) float64 {
	return clamp(scale*baseSize, pr.MinSize, pr.MaxSize)
}
