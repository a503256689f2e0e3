//go:build ebiten

// Package render draws the particle field onto an ebiten image. It only reads
// field state; all mutation happens in the simulation tick.
package render

import (
	"image/color"

	"starfield/internal/gradient"
	"starfield/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var background = color.RGBA{R: 4, G: 4, B: 12, A: 255}

// Painter renders stars, trails, and shooting-star heads.
type Painter struct {
	heat gradient.Ramp
	gray gradient.Ramp
}

// NewPainter constructs a painter with the standard ramps.
func NewPainter() *Painter {
	return &Painter{heat: gradient.Heat(), gray: gradient.Gray()}
}

// Draw paints the current field state. colorOn selects the heat ramp over
// grayscale; trailsOn enables the fading streaks.
func (pt *Painter) Draw(screen *ebiten.Image, f *sim.Field, colorOn, trailsOn bool) {
	screen.Fill(background)

	params := f.Params()
	depthSpan := params.FarPlane - params.NearPlane
	ramp := pt.gray
	if colorOn {
		ramp = pt.heat
	}

	particles := f.Particles()
	for i := range particles {
		p := &particles[i]
		if !p.Visible {
			continue
		}

		depth := (params.FarPlane - p.Pos.Z) / depthSpan
		if depth < 0 {
			depth = 0
		} else if depth > 1 {
			depth = 1
		}
		col := ramp.At(depth * p.Brightness)

		if trailsOn {
			drawTrail(screen, p, col)
		}
		vector.DrawFilledCircle(screen, float32(p.Screen.X), float32(p.Screen.Y), float32(p.Size), col, false)

		if p.Kind == sim.KindShooting {
			// Bright head over the streak.
			vector.DrawFilledCircle(screen, float32(p.Screen.X), float32(p.Screen.Y), float32(p.Size)+2, color.White, false)
		}
	}
}

// drawTrail strokes segments between consecutive history points, fading and
// thinning with age. Newest segment is drawn last and brightest.
func drawTrail(screen *ebiten.Image, p *sim.Particle, col color.RGBA) {
	n := p.Trail.Len()
	if n < 2 {
		return
	}
	alphaStep := 180 / n
	for i := 0; i < n-1; i++ {
		from := p.Trail.At(i)
		to := p.Trail.At(i + 1)
		age := n - 1 - i
		alpha := 200 - age*alphaStep
		if alpha < 10 {
			alpha = 10
		}
		width := p.Size - float64(age)/2
		if width < 1 {
			width = 1
		}
		seg := color.RGBA{R: col.R, G: col.G, B: col.B, A: uint8(alpha)}
		vector.StrokeLine(screen,
			float32(from.X), float32(from.Y),
			float32(to.X), float32(to.Y),
			float32(width), seg, false)
	}
}
