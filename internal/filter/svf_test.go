package filter

import (
	"math"
	"math/rand"
	"testing"
)

func TestSVFImpulseResponseMatchesH(t *testing.T) {
	s := NewSVF(48000)
	s.Cutoff = 1000
	s.Q = 2
	s.Configure()

	first := s.Next(1)
	if math.Abs(float64(first-s.h)) > 1e-5 {
		t.Fatalf("expected first sample == h (%f), got %f", s.h, first)
	}
}

func TestSVFStableOverMillionSamplesWithNoise(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewSVF(48000)
	s.Cutoff = 1000
	s.Q = 2
	s.Mode = SVFLowPass
	s.Configure()

	for i := 0; i < 1_000_000; i++ {
		in := float32(rng.Float64()*2 - 1)
		out := s.Next(in)
		if math.IsNaN(float64(out)) || math.IsInf(float64(out), 0) {
			t.Fatalf("svf diverged at sample %d: %f", i, out)
		}
		if out > 1000 || out < -1000 {
			t.Fatalf("svf output unbounded at sample %d: %f", i, out)
		}
	}
	if math.IsNaN(float64(s.s1)) || math.IsNaN(float64(s.s2)) {
		t.Fatalf("svf state is NaN: s1=%f s2=%f", s.s1, s.s2)
	}
}

func TestSVFClampsCutoffAndQ(t *testing.T) {
	s := NewSVF(48000)
	s.Cutoff = 1
	s.Q = 0.01
	s.Configure()
	if s.Cutoff != svfMinCutoff {
		t.Fatalf("expected cutoff clamped to %v, got %v", svfMinCutoff, s.Cutoff)
	}
	if s.Q != svfMinQ {
		t.Fatalf("expected Q clamped to %v, got %v", svfMinQ, s.Q)
	}

	s.Cutoff = 1_000_000
	s.Q = 1000
	s.Configure()
	if s.Cutoff != 48000/2-100 {
		t.Fatalf("expected cutoff clamped to sr/2-100, got %v", s.Cutoff)
	}
	if s.Q != svfMaxQ {
		t.Fatalf("expected Q clamped to %v, got %v", svfMaxQ, s.Q)
	}
}

func TestSVFResetZeroesState(t *testing.T) {
	s := NewSVF(48000)
	s.Next(1)
	s.Next(1)
	s.Reset()
	if s.s1 != 0 || s.s2 != 0 {
		t.Fatalf("expected zeroed integrator state after reset")
	}
}

func TestSVFModesDiffer(t *testing.T) {
	mkFilter := func(mode SVFMode) *SVF {
		s := NewSVF(48000)
		s.Cutoff = 800
		s.Q = 1
		s.Mode = mode
		s.Configure()
		return s
	}
	lp, bp, hp := mkFilter(SVFLowPass), mkFilter(SVFBandPass), mkFilter(SVFHighPass)
	var lSum, bSum, hSum float64
	for i := 0; i < 2000; i++ {
		in := float32(0)
		if i == 0 {
			in = 1
		}
		lSum += float64(lp.Next(in))
		bSum += float64(bp.Next(in))
		hSum += float64(hp.Next(in))
	}
	if lSum == bSum && bSum == hSum {
		t.Fatalf("expected distinct tap outputs, all equal: %f", lSum)
	}
}
