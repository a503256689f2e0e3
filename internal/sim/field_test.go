package sim

import (
	"math"
	"testing"
)

func testParams() Params {
	p := DefaultParams()
	p.Count = 50
	return p
}

func TestAdvanceKeepsDepthInvariant(t *testing.T) {
	f := New(testParams(), 7)
	p := f.Params()

	controls := []Controls{
		{},
		{Boost: true},
		{Spiral: true, SteerX: 0.5},
		{SteerX: -1, SteerY: 1, AudioLevel: 1.2},
		{Boost: true, Spiral: true, AudioLevel: 0.4},
	}
	for tick := 0; tick < 2000; tick++ {
		f.Advance(1.0/60.0, controls[tick%len(controls)])
		for i := range f.Particles() {
			z := f.Particles()[i].Pos.Z
			if z <= p.NearPlane || z > p.FarPlane {
				t.Fatalf("tick %d particle %d: z=%g outside (%g, %g]", tick, i, z, p.NearPlane, p.FarPlane)
			}
		}
	}
	if f.Respawns() == 0 {
		t.Fatal("expected some respawns over 2000 ticks")
	}
}

func TestAdvanceSingleStep(t *testing.T) {
	p := testParams()
	p.Count = 1
	p.NearPlane = 1
	p.FarPlane = 100
	p.DepthBoost = 0
	p.ShootingProb = 0

	f := New(p, 1)
	star := &f.Particles()[0]
	star.Pos = Vec3{X: 0, Y: 0, Z: p.FarPlane}
	star.BaseSpeed = 10

	f.Advance(1.0, Controls{})

	if got := star.Pos.Z; got != 90 {
		t.Fatalf("z after one step = %g, want 90", got)
	}
	if f.Respawns() != 0 {
		t.Fatalf("unexpected respawn, count=%d", f.Respawns())
	}
	if !star.Visible {
		t.Fatal("particle at field center should project on screen")
	}
	if star.Trail.Len() != 1 {
		t.Fatalf("trail length = %d, want 1", star.Trail.Len())
	}
	wantX := float64(p.Width) / 2
	if math.Abs(star.Screen.X-wantX) > 1e-9 {
		t.Fatalf("screen X = %g, want %g", star.Screen.X, wantX)
	}
}

func TestAdvanceRespawnsAtNearPlane(t *testing.T) {
	p := testParams()
	p.Count = 1
	f := New(p, 3)
	star := &f.Particles()[0]
	star.Pos.Z = p.NearPlane
	star.Kind = KindShooting
	star.speedMult = p.ShootingSpeedMult
	star.life = 10
	star.Trail.Push(ScreenPoint{X: 1, Y: 2})

	f.Advance(1.0/60.0, Controls{})

	if star.Pos.Z != p.FarPlane {
		t.Fatalf("respawned z = %g, want far plane %g", star.Pos.Z, p.FarPlane)
	}
	if star.Trail.Len() != 0 {
		t.Fatalf("respawned trail length = %d, want 0", star.Trail.Len())
	}
	if star.Kind != KindNormal {
		t.Fatal("respawn must reset kind to normal")
	}
	if star.SpeedMult() != 1 {
		t.Fatalf("respawned speed multiplier = %g, want 1", star.SpeedMult())
	}
	if f.Respawns() != 1 {
		t.Fatalf("respawn count = %d, want 1", f.Respawns())
	}
}

func TestRespawnedParticleProjectsNextTick(t *testing.T) {
	p := testParams()
	p.Count = 1
	f := New(p, 11)
	star := &f.Particles()[0]
	star.Pos.Z = p.NearPlane

	f.Advance(1.0/60.0, Controls{})
	if f.Respawns() != 1 {
		t.Fatalf("setup respawn count = %d, want 1", f.Respawns())
	}

	f.Advance(1.0/60.0, Controls{})
	if f.Respawns() != 1 {
		t.Fatal("respawned particle must not immediately re-trigger respawn")
	}
	if !star.Visible {
		t.Fatal("respawned particle must project on screen next tick")
	}
}

func TestBoostMultipliesEffectiveSpeed(t *testing.T) {
	p := testParams()
	p.ShootingProb = 0

	plain := New(p, 99)
	boosted := New(p, 99)
	dt := 1.0 / 60.0

	before := make([]float64, p.Count)
	for i := range plain.Particles() {
		before[i] = plain.Particles()[i].Pos.Z
	}

	plain.Advance(dt, Controls{})
	boosted.Advance(dt, Controls{Boost: true})

	for i := range plain.Particles() {
		dPlain := before[i] - plain.Particles()[i].Pos.Z
		dBoost := before[i] - boosted.Particles()[i].Pos.Z
		want := dPlain * p.BoostMultiplier
		if math.Abs(dBoost-want) > 1e-9*math.Max(1, want) {
			t.Fatalf("particle %d: boosted delta %g, want %g (plain %g x %g)",
				i, dBoost, want, dPlain, p.BoostMultiplier)
		}
	}
}

func TestZeroShootingProbNeverPromotes(t *testing.T) {
	p := testParams()
	p.ShootingProb = 0
	f := New(p, 5)

	for tick := 0; tick < 10000; tick++ {
		f.Advance(1.0/60.0, Controls{})
		for i := range f.Particles() {
			if f.Particles()[i].Kind == KindShooting {
				t.Fatalf("tick %d: particle %d promoted despite zero probability", tick, i)
			}
		}
	}
	if f.Promotions() != 0 {
		t.Fatalf("promotion count = %d, want 0", f.Promotions())
	}
}

func TestShootingStarsPromoteAndExpire(t *testing.T) {
	p := testParams()
	p.ShootingProb = 0.05
	f := New(p, 21)

	for tick := 0; tick < 600; tick++ {
		f.Advance(1.0/60.0, Controls{})
	}
	if f.Promotions() == 0 {
		t.Fatal("expected promotions with probability 0.05 over 600 ticks")
	}
	for i := range f.Particles() {
		star := &f.Particles()[i]
		if star.Kind == KindShooting && star.Life() <= 0 {
			t.Fatalf("particle %d: shooting star with non-positive life %d", i, star.Life())
		}
		if star.Kind == KindNormal && star.SpeedMult() != 1 {
			t.Fatalf("particle %d: normal star with speed multiplier %g", i, star.SpeedMult())
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	p := testParams()
	a := New(p, 1234)
	b := New(p, 1234)

	for tick := 0; tick < 100; tick++ {
		c := Controls{Spiral: tick%2 == 0, Boost: tick%3 == 0, SteerX: 0.3}
		a.Advance(1.0/60.0, c)
		b.Advance(1.0/60.0, c)
	}
	for i := range a.Particles() {
		if a.Particles()[i].Pos != b.Particles()[i].Pos {
			t.Fatalf("particle %d diverged: %+v vs %+v", i, a.Particles()[i].Pos, b.Particles()[i].Pos)
		}
	}

	a.Reset(1234)
	b.Reset(1234)
	for i := range a.Particles() {
		if a.Particles()[i].Pos != b.Particles()[i].Pos {
			t.Fatalf("particle %d differs after reset", i)
		}
	}
}

func TestSteeringClampedToMaxShift(t *testing.T) {
	p := testParams()
	f := New(p, 2)
	f.Advance(1.0/60.0, Controls{SteerX: 5, SteerY: -5})

	cam := f.Camera()
	if cam.OffsetX != p.MaxSteerShift {
		t.Fatalf("offset X = %g, want %g", cam.OffsetX, p.MaxSteerShift)
	}
	if cam.OffsetY != -p.MaxSteerShift {
		t.Fatalf("offset Y = %g, want %g", cam.OffsetY, -p.MaxSteerShift)
	}
}

func TestSpiralWindRampsUpAndDecays(t *testing.T) {
	f := New(testParams(), 4)
	for i := 0; i < 60; i++ {
		f.Advance(1.0/60.0, Controls{Spiral: true})
	}
	if f.SpiralWind() != 1 {
		t.Fatalf("spiral wind after a second = %g, want 1", f.SpiralWind())
	}
	for i := 0; i < 60; i++ {
		f.Advance(1.0/60.0, Controls{})
	}
	if f.SpiralWind() != 0 {
		t.Fatalf("spiral wind after decay = %g, want 0", f.SpiralWind())
	}
}
