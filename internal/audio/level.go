package audio

import (
	"math"
	"sync/atomic"
)

// Level is a single-slot handoff cell for the intensity scalar: the audio
// callback writes, the frame loop reads, last value wins. The float is stored
// through its bit pattern so both sides stay atomic without a mutex.
type Level struct {
	bits atomic.Uint64
}

// Store publishes a new intensity. Negative values are clamped to zero.
func (l *Level) Store(v float64) {
	if v < 0 || math.IsNaN(v) {
		v = 0
	}
	l.bits.Store(math.Float64bits(v))
}

// Load returns the most recently published intensity, zero if none.
func (l *Level) Load() float64 {
	return math.Float64frombits(l.bits.Load())
}
