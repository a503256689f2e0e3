package audio

import (
	"math"
	"testing"
)

func TestEnvelopeFollowsEMA(t *testing.T) {
	e := NewEnvelope(0.5)
	if got := e.Update(1); got != 0.5 {
		t.Fatalf("first update = %g, want 0.5", got)
	}
	if got := e.Update(1); got != 0.75 {
		t.Fatalf("second update = %g, want 0.75", got)
	}
	if got := e.Value(); got != 0.75 {
		t.Fatalf("Value() = %g, want 0.75", got)
	}
}

func TestEnvelopeConvergesToConstantInput(t *testing.T) {
	e := NewEnvelope(0.3)
	for i := 0; i < 200; i++ {
		e.Update(0.8)
	}
	if math.Abs(e.Value()-0.8) > 1e-6 {
		t.Fatalf("converged value = %g, want 0.8", e.Value())
	}
}

func TestEnvelopeTreatsNegativeAsZero(t *testing.T) {
	e := NewEnvelope(1)
	e.Update(0.9)
	if got := e.Update(-4); got != 0 {
		t.Fatalf("negative input result = %g, want 0", got)
	}
}

func TestEnvelopeClampsAlpha(t *testing.T) {
	e := NewEnvelope(7)
	if got := e.Update(0.6); got != 0.6 {
		t.Fatalf("alpha above 1 must behave as 1, got %g", got)
	}

	e = NewEnvelope(-1)
	v := e.Update(1)
	if v <= 0 || v >= 1 {
		t.Fatalf("alpha below range must still smooth, got %g", v)
	}
}
