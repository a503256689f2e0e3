package sim

// Particle is one star in the field. Slots are allocated once and reused:
// respawn rewrites the fields in place, never reallocates.
type Particle struct {
	Pos        Vec3
	BaseSpeed  float64
	BaseSize   float64
	Brightness float64
	Kind       Kind

	// Last projection results, refreshed by Field.Advance for the renderer.
	Screen  ScreenPoint
	Scale   float64
	Size    float64
	Visible bool

	Trail Trail

	speedMult float64
	life      int
}

// SpeedMult returns the shooting-star multiplier, 1 for normal stars.
func (p *Particle) SpeedMult() float64 { return p.speedMult }

// Life returns the remaining shooting-star lifetime in ticks.
func (p *Particle) Life() int { return p.life }

func (p *Particle) promote(mult float64, life int) {
	p.Kind = KindShooting
	p.speedMult = mult
	p.life = life
}

func (p *Particle) demote() {
	p.Kind = KindNormal
	p.speedMult = 1
	p.life = 0
}
