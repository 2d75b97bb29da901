package filter

import "testing"

func TestBiquadClampsCutoffAndQ(t *testing.T) {
	b := NewBiquad(48000)
	b.Cutoff = 5
	b.Resonance = 0
	b.Configure()
	if b.Cutoff != minCutoffHz {
		t.Fatalf("expected cutoff clamped to %v, got %v", minCutoffHz, b.Cutoff)
	}
	if b.Resonance != minQ {
		t.Fatalf("expected resonance clamped to %v, got %v", minQ, b.Resonance)
	}

	b.Cutoff = 1_000_000
	b.Resonance = 1000
	b.Configure()
	if b.Cutoff != 0.45*48000 {
		t.Fatalf("expected cutoff clamped to nyquist fraction, got %v", b.Cutoff)
	}
	if b.Resonance != maxQ {
		t.Fatalf("expected resonance clamped to %v, got %v", maxQ, b.Resonance)
	}
}

func TestBiquadImpulseResponseIsBounded(t *testing.T) {
	b := NewBiquad(48000)
	b.Mode = LowPass
	b.Cutoff = 1000
	b.Resonance = 0.707
	b.Configure()

	out := b.Next(1)
	for i := 0; i < 48000; i++ {
		v := b.Next(0)
		if v > 10 || v < -10 {
			t.Fatalf("biquad diverged at sample %d: %f", i, v)
		}
		out = v
	}
	_ = out
}

func TestBiquadResetClearsDelayLine(t *testing.T) {
	b := NewBiquad(48000)
	b.Next(1)
	b.Next(1)
	b.Reset()
	if b.z1 != 0 || b.z2 != 0 {
		t.Fatalf("expected zeroed delay line after reset")
	}
}
