//go:build ebiten

package app

import (
	"fmt"
	"time"

	"starfield/internal/audio"
	"starfield/internal/config"
	"starfield/internal/render"
	"starfield/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the particle field to the ebiten.Game interface: it polls input
// into sim.Controls, advances the field once per tick, and hands the result
// to the painter.
type Game struct {
	field   *sim.Field
	painter *render.Painter
	level   *audio.Level
	env     *audio.Envelope

	dt     float64
	seed   int64
	hasSrc bool

	steerX float64
	steerY float64

	colorOn  bool
	trailsOn bool
	spiralOn bool
	audioOn  bool

	paused   bool
	tickOnce bool

	audioLevel float64
}

// New constructs a Game for the provided field. level is read once per tick;
// hasAudio reports whether a playback source is feeding it.
func New(field *sim.Field, cfg config.Config, level *audio.Level, hasAudio bool) *Game {
	return &Game{
		field:    field,
		painter:  render.NewPainter(),
		level:    level,
		env:      audio.NewEnvelope(cfg.Audio.Smoothing),
		dt:       1.0 / float64(cfg.TPS),
		seed:     cfg.Seed,
		hasSrc:   hasAudio,
		colorOn:  true,
		trailsOn: true,
		audioOn:  hasAudio,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.field.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.spiralOn = !g.spiralOn
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.trailsOn = !g.trailsOn
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.colorOn = !g.colorOn
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) && g.hasSrc {
		g.audioOn = !g.audioOn
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.field.Reset(time.Now().UnixNano())
	}

	g.updateSteering()

	raw := 0.0
	if g.audioOn {
		raw = g.level.Load()
	}
	g.audioLevel = g.env.Update(raw)

	if !g.paused || g.tickOnce {
		g.field.Advance(g.dt, sim.Controls{
			SteerX:     g.steerX,
			SteerY:     g.steerY,
			Boost:      ebiten.IsKeyPressed(ebiten.KeySpace),
			Spiral:     g.spiralOn,
			AudioLevel: g.audioLevel,
		})
		g.tickOnce = false
	}
	return nil
}

// updateSteering eases the steer values toward the held arrow keys so the
// camera shift ramps in and out instead of snapping.
func (g *Game) updateSteering() {
	const response = 8.0
	targetX, targetY := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		targetX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		targetX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		targetY += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		targetY -= 1
	}
	blend := response * g.dt
	if blend > 1 {
		blend = 1
	}
	g.steerX += (targetX - g.steerX) * blend
	g.steerY += (targetY - g.steerY) * blend
}

// Draw renders the current field state plus the HUD status lines.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.field, g.colorOn, g.trailsOn)

	boost := ebiten.IsKeyPressed(ebiten.KeySpace)
	lines := []string{
		fmt.Sprintf("Stars: %d  Trails: %s  Color: %s  Respawns: %d",
			len(g.field.Particles()), onOff(g.trailsOn), onOff(g.colorOn), g.field.Respawns()),
		fmt.Sprintf("Spiral: %s  Audio: %s (%.2f)  Boost: %s",
			onOff(g.spiralOn), onOff(g.audioOn), g.audioLevel, onOff(boost)),
		"Arrows: steer  Space: boost  S: spiral  A: audio  T: trails  C: color  P: pause  Q: quit",
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 8, 8+i*16)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	params := g.field.Params()
	return params.Width, params.Height
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
