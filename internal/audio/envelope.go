// Package audio derives a smoothed intensity scalar from a playing audio
// stream. The frame loop reads one value per tick; nothing here touches the
// renderer or the particle field.
package audio

// Envelope smooths a raw intensity signal with an exponential moving average:
// smoothed = smoothed*(1-alpha) + raw*alpha.
type Envelope struct {
	alpha float64
	value float64
}

// NewEnvelope constructs an envelope with the given smoothing factor.
// Alpha is clamped into (0, 1].
func NewEnvelope(alpha float64) *Envelope {
	if alpha <= 0 {
		alpha = 0.01
	}
	if alpha > 1 {
		alpha = 1
	}
	return &Envelope{alpha: alpha}
}

// Update folds raw into the average and returns the smoothed value.
// Negative inputs are treated as zero.
func (e *Envelope) Update(raw float64) float64 {
	if raw < 0 {
		raw = 0
	}
	e.value = e.value*(1-e.alpha) + raw*e.alpha
	return e.value
}

// Value returns the current smoothed intensity.
func (e *Envelope) Value() float64 { return e.value }
