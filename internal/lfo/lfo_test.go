package lfo

import (
	"math"
	"testing"

	"github.com/cascadia-audio/subvox/internal/osc"
)

func TestTriangleUnityRangeScaledByAmount(t *testing.T) {
	l := New()
	l.Waveform = osc.Triangle
	l.Frequency = 1
	l.Amount = 2.0

	sr := float32(100) // 100 samples/cycle at 1Hz
	samples := make([]float32, 100)
	for i := range samples {
		samples[i] = l.Next(sr)
	}

	if math.Abs(float64(samples[0])-(-2.0)) > 0.1 {
		t.Errorf("triangle at phase 0: got %f, want ~-2.0", samples[0])
	}
	if math.Abs(float64(samples[50])-2.0) > 0.1 {
		t.Errorf("triangle at phase pi: got %f, want ~2.0", samples[50])
	}
}

func TestSquareIsBipolarScaled(t *testing.T) {
	l := New()
	l.Waveform = osc.Square
	l.Frequency = 1
	l.Amount = 3.0

	v := l.Next(100)
	if v != 3.0 {
		t.Errorf("expected +3.0 at phase 0, got %f", v)
	}
}

func TestZeroAmountYieldsZero(t *testing.T) {
	l := New()
	l.Waveform = osc.Triangle
	l.Frequency = 5
	l.Amount = 0
	for i := 0; i < 100; i++ {
		if v := l.Next(48000); v != 0 {
			t.Fatalf("expected 0 with zero amount, got %f", v)
		}
	}
}

func TestNoiseSharesOscillatorLCG(t *testing.T) {
	l := New()
	l.Waveform = osc.Noise
	l.Amount = 1
	l.Frequency = 1000
	seed := l.noiseSeed
	for i := 0; i < 1000; i++ {
		v := l.Next(48000)
		if v < -1 || v > 1 {
			t.Fatalf("lfo noise sample out of range: %f", v)
		}
		if want := osc.NoiseSample(&seed); v != want {
			t.Fatalf("lfo noise sample %d: got %f, want oscillator LCG value %f", i, v, want)
		}
	}
}

func TestResetZeroesPhase(t *testing.T) {
	l := New()
	l.Frequency = 1000
	l.Amount = 1
	for i := 0; i < 10; i++ {
		l.Next(48000)
	}
	l.Reset()
	if l.phase != 0 {
		t.Fatalf("expected phase 0 after reset, got %f", l.phase)
	}
}
