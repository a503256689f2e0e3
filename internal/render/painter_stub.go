//go:build !ebiten

package render

import "starfield/internal/sim"

// Painter is a no-op placeholder used when the ebiten build tag is absent.
type Painter struct{}

// NewPainter constructs a stub painter.
func NewPainter() *Painter { return &Painter{} }

// Draw is a no-op placeholder to satisfy the API expected by the GUI build.
func (pt *Painter) Draw(any, *sim.Field, bool, bool) {}
