package sim

import "math"

// Per-star appearance spread, drawn once per spawn.
const (
	baseSizeMin   = 0.8
	baseSizeMax   = 3.2
	brightnessMin = 0.6
	brightnessMax = 1.0
)

// Controls carries the per-frame input state consumed by Advance.
type Controls struct {
	SteerX     float64
	SteerY     float64
	Boost      bool
	Spiral     bool
	AudioLevel float64
}

// Field owns the full set of particles and the camera. The particle slice is
// allocated once; exhausted particles are respawned in place, so the per-frame
// path allocates nothing.
type Field struct {
	params    Params
	cam       Camera
	proj      Projector
	particles []Particle
	rng       *RNG

	elapsed    float64
	spiralWind float64

	respawns   uint64
	promotions uint64
}

// New constructs a field from validated params and spawns every particle at a
// randomized depth. Callers validate params before construction.
func New(params Params, seed int64) *Field {
	f := &Field{
		params: params,
		cam: Camera{
			FocalLength:     params.FocalLength,
			BoostMultiplier: params.BoostMultiplier,
			MaxShift:        params.MaxSteerShift,
		},
		proj: Projector{
			Width:   float64(params.Width),
			Height:  float64(params.Height),
			Margin:  params.OffscreenMargin,
			MinSize: params.MinPointSize,
			MaxSize: params.MaxPointSize,
		},
		particles: make([]Particle, params.Count),
	}
	for i := range f.particles {
		f.particles[i].Trail = NewTrail(params.TrailLength)
	}
	f.Reset(seed)
	return f
}

// Reset re-randomizes every particle from the provided seed. Equal seeds
// produce equal initial states.
func (f *Field) Reset(seed int64) {
	f.rng = NewRNG(seed)
	f.elapsed = 0
	f.spiralWind = 0
	f.respawns = 0
	f.promotions = 0
	depthSpan := f.params.FarPlane - f.params.NearPlane
	for i := range f.particles {
		z := f.params.NearPlane + f.rng.Range(0.05, 1)*depthSpan
		f.spawn(&f.particles[i], z)
	}
}

// Advance moves every particle by one time step under the given controls.
// It cannot fail: off-frustum and past-camera particles are respawned, and
// all scalar inputs are clamped.
func (f *Field) Advance(dt float64, c Controls) {
	f.elapsed += dt
	if c.Spiral {
		f.spiralWind = clamp(f.spiralWind+2*dt, 0, 1)
	} else {
		f.spiralWind = clamp(f.spiralWind-2*dt, 0, 1)
	}
	f.cam.Steer(c.SteerX, c.SteerY)
	f.cam.Boost = c.Boost

	audio := math.Max(0, c.AudioLevel)
	boost := f.cam.SpeedMult()
	spiralPhase := f.spiralWind * dt
	depthSpan := f.params.FarPlane - f.params.NearPlane
	promoteFloor := f.params.NearPlane + 0.1*depthSpan

	for i := range f.particles {
		p := &f.particles[i]

		if p.Kind == KindShooting {
			p.life--
			if p.life <= 0 {
				p.demote()
			}
		}

		depth := clamp((f.params.FarPlane-p.Pos.Z)/depthSpan, 0, 1)
		speed := p.BaseSpeed * (1 + depth*f.params.DepthBoost) * p.speedMult *
			boost * (1 + audio*f.params.AudioGain)
		p.Pos.Z -= speed * dt
		if p.Pos.Z <= f.params.NearPlane {
			f.respawn(p)
			continue
		}

		p.Pos = Spiral(p.Pos, spiralPhase, f.params.SpiralRate)

		sp, scale, ok := f.proj.Project(p.Pos, &f.cam)
		if !ok {
			f.respawn(p)
			continue
		}
		p.Screen = sp
		p.Scale = scale
		p.Size = f.proj.PointSize(scale, p.BaseSize)
		p.Visible = true
		p.Trail.Push(sp)

		if p.Kind == KindNormal && f.params.ShootingProb > 0 && p.Pos.Z > promoteFloor {
			if f.rng.Float64() < f.params.ShootingProb {
				p.promote(f.params.ShootingSpeedMult,
					f.rng.IntRange(f.params.ShootingLifeMin, f.params.ShootingLifeMax))
				f.promotions++
			}
		}
	}
}

// spawn rewrites a particle slot with fresh randomized state at depth z.
func (f *Field) spawn(p *Particle, z float64) {
	angle := f.rng.Range(0, 2*math.Pi)
	radius := f.params.SpawnRadius * math.Sqrt(f.rng.Float64())
	p.Pos = Vec3{X: radius * math.Cos(angle), Y: radius * math.Sin(angle), Z: z}
	p.BaseSpeed = f.rng.Range(f.params.SpeedMin, f.params.SpeedMax)
	p.BaseSize = f.rng.Range(baseSizeMin, baseSizeMax)
	p.Brightness = f.rng.Range(brightnessMin, brightnessMax)
	p.Visible = false
	p.Trail.Clear()
	p.demote()
}

func (f *Field) respawn(p *Particle) {
	f.spawn(p, f.params.FarPlane)
	f.respawns++
}

// Particles exposes the backing slice so the renderer can read state directly.
func (f *Field) Particles() []Particle { return f.particles }

// Params returns the immutable field configuration.
func (f *Field) Params() Params { return f.params }

// Camera returns the field's camera.
func (f *Field) Camera() *Camera { return &f.cam }

// Elapsed returns the accumulated simulation time in seconds.
func (f *Field) Elapsed() float64 { return f.elapsed }

// SpiralWind reports the current spiral strength in [0, 1].
func (f *Field) SpiralWind() float64 { return f.spiralWind }

// Respawns counts particles recycled since the last Reset.
func (f *Field) Respawns() uint64 { return f.respawns }

// Promotions counts shooting-star promotions since the last Reset.
func (f *Field) Promotions() uint64 { return f.promotions }
