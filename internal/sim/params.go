package sim

import "fmt"

// Params holds the tunables for the particle field. Values are read once at
// startup and never mutated afterwards.
type Params struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Count       int     `yaml:"count"`
	NearPlane   float64 `yaml:"near_plane"`
	FarPlane    float64 `yaml:"far_plane"`
	FocalLength float64 `yaml:"focal_length"`
	SpawnRadius float64 `yaml:"spawn_radius"`

	SpeedMin   float64 `yaml:"speed_min"`
	SpeedMax   float64 `yaml:"speed_max"`
	DepthBoost float64 `yaml:"depth_boost"`

	BoostMultiplier float64 `yaml:"boost_multiplier"`
	MaxSteerShift   float64 `yaml:"max_steer_shift"`
	SpiralRate      float64 `yaml:"spiral_rate"`

	TrailLength int `yaml:"trail_length"`

	ShootingProb      float64 `yaml:"shooting_prob"`
	ShootingSpeedMult float64 `yaml:"shooting_speed_mult"`
	ShootingLifeMin   int     `yaml:"shooting_life_min"`
	ShootingLifeMax   int     `yaml:"shooting_life_max"`

	AudioGain float64 `yaml:"audio_gain"`

	MinPointSize    float64 `yaml:"min_point_size"`
	MaxPointSize    float64 `yaml:"max_point_size"`
	OffscreenMargin float64 `yaml:"offscreen_margin"`
}

// DefaultParams returns the standard configuration.
func DefaultParams() Params {
	return Params{
		Width:             1000,
		Height:            700,
		Count:             700,
		NearPlane:         1,
		FarPlane:          1000,
		FocalLength:       500,
		SpawnRadius:       800,
		SpeedMin:          60,
		SpeedMax:          180,
		DepthBoost:        4,
		BoostMultiplier:   3.5,
		MaxSteerShift:     250,
		SpiralRate:        90,
		TrailLength:       6,
		ShootingProb:      0.002,
		ShootingSpeedMult: 8,
		ShootingLifeMin:   40,
		ShootingLifeMax:   90,
		AudioGain:         0.9,
		MinPointSize:      1,
		MaxPointSize:      8,
		OffscreenMargin:   50,
	}
}

// Validate reports the first configuration error it finds. It is called once
// before the frame loop starts; a valid Params never fails at runtime.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("viewport %dx%d: dimensions must be positive", p.Width, p.Height)
	}
	if p.Count <= 0 {
		return fmt.Errorf("particle count %d: must be positive", p.Count)
	}
	if p.NearPlane <= 0 {
		return fmt.Errorf("near plane %g: must be positive", p.NearPlane)
	}
	if p.FarPlane <= p.NearPlane {
		return fmt.Errorf("far plane %g: must exceed near plane %g", p.FarPlane, p.NearPlane)
	}
	if p.FocalLength <= 0 {
		return fmt.Errorf("focal length %g: must be positive", p.FocalLength)
	}
	if p.SpawnRadius <= 0 {
		return fmt.Errorf("spawn radius %g: must be positive", p.SpawnRadius)
	}
	if p.SpeedMin <= 0 || p.SpeedMax < p.SpeedMin {
		return fmt.Errorf("speed range [%g, %g]: must be positive and ordered", p.SpeedMin, p.SpeedMax)
	}
	if p.DepthBoost < 0 {
		return fmt.Errorf("depth boost %g: must not be negative", p.DepthBoost)
	}
	if p.BoostMultiplier < 1 {
		return fmt.Errorf("boost multiplier %g: must be at least 1", p.BoostMultiplier)
	}
	if p.MaxSteerShift < 0 {
		return fmt.Errorf("max steer shift %g: must not be negative", p.MaxSteerShift)
	}
	if p.TrailLength < 1 {
		return fmt.Errorf("trail length %d: must be at least 1", p.TrailLength)
	}
	if p.ShootingProb < 0 || p.ShootingProb > 1 {
		return fmt.Errorf("shooting star probability %g: must be in [0, 1]", p.ShootingProb)
	}
	if p.ShootingSpeedMult < 1 {
		return fmt.Errorf("shooting star speed multiplier %g: must be at least 1", p.ShootingSpeedMult)
	}
	if p.ShootingLifeMin < 1 || p.ShootingLifeMax < p.ShootingLifeMin {
		return fmt.Errorf("shooting star life range [%d, %d]: must be positive and ordered", p.ShootingLifeMin, p.ShootingLifeMax)
	}
	if p.AudioGain < 0 {
		return fmt.Errorf("audio gain %g: must not be negative", p.AudioGain)
	}
	if p.MinPointSize <= 0 || p.MaxPointSize < p.MinPointSize {
		return fmt.Errorf("point size range [%g, %g]: must be positive and ordered", p.MinPointSize, p.MaxPointSize)
	}
	if p.OffscreenMargin < 0 {
		return fmt.Errorf("offscreen margin %g: must not be negative", p.OffscreenMargin)
	}
	return nil
}
