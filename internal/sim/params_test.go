package sim

import "testing"

func TestDefaultParamsValid(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("default params must validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero count", func(p *Params) { p.Count = 0 }},
		{"negative count", func(p *Params) { p.Count = -5 }},
		{"zero width", func(p *Params) { p.Width = 0 }},
		{"zero near plane", func(p *Params) { p.NearPlane = 0 }},
		{"far before near", func(p *Params) { p.FarPlane = p.NearPlane }},
		{"zero focal length", func(p *Params) { p.FocalLength = 0 }},
		{"zero spawn radius", func(p *Params) { p.SpawnRadius = 0 }},
		{"inverted speed range", func(p *Params) { p.SpeedMax = p.SpeedMin - 1 }},
		{"negative depth boost", func(p *Params) { p.DepthBoost = -1 }},
		{"boost below one", func(p *Params) { p.BoostMultiplier = 0.5 }},
		{"zero trail length", func(p *Params) { p.TrailLength = 0 }},
		{"probability above one", func(p *Params) { p.ShootingProb = 1.5 }},
		{"negative probability", func(p *Params) { p.ShootingProb = -0.1 }},
		{"shooting mult below one", func(p *Params) { p.ShootingSpeedMult = 0 }},
		{"inverted shooting life", func(p *Params) { p.ShootingLifeMax = p.ShootingLifeMin - 1 }},
		{"negative audio gain", func(p *Params) { p.AudioGain = -0.2 }},
		{"inverted point sizes", func(p *Params) { p.MaxPointSize = p.MinPointSize - 1 }},
		{"negative margin", func(p *Params) { p.OffscreenMargin = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
