package sim

// Vec3 is a point in camera space. The camera sits at the origin looking
// down +z, so z is the distance in front of the viewer.
type Vec3 struct {
	X, Y, Z float64
}

// ScreenPoint is a projected position in viewport pixels.
type ScreenPoint struct {
	X, Y float64
}

// Kind distinguishes ordinary stars from temporary shooting stars.
type Kind uint8

const (
	// KindNormal is a regular star drifting toward the camera.
	KindNormal Kind = iota
	// KindShooting is a short-lived high-speed variant.
	KindShooting
)
