package filter

import "math"

// SVFMode selects which of the simultaneously-computed taps Next returns.
type SVFMode int

const (
	SVFLowPass SVFMode = iota
	SVFBandPass
	SVFHighPass
)

const (
	svfMinCutoff = 20
	svfMinQ      = 0.5
	svfMaxQ      = 25
	svfQFloor    = 0.01
)

// SVF is a zero-delay-feedback state-variable filter with bilinear-
// transform pre-warping, offering simultaneous LP/BP/HP taps. Unlike
// Biquad, which is the default per-voice tone shaper, SVF is a
// standalone component not wired into Voice's chain (see DESIGN.md);
// it is exposed here for hosts that want an alternate or auxiliary
// filter.
type SVF struct {
	Cutoff float32
	Q      float32
	Mode   SVFMode

	sampleRate float32
	g, r2, h   float32
	s1, s2     float32
}

// NewSVF returns an SVF bound to sampleRate, defaulting to low-pass.
func NewSVF(sampleRate float32) *SVF {
	s := &SVF{
		Cutoff:     1000,
		Q:          0.707,
		sampleRate: sampleRate,
	}
	s.Configure()
	return s
}

// SetSampleRate updates the sample rate. Configure must be called again
// afterward to repopulate coefficients.
func (s *SVF) SetSampleRate(sampleRate float32) {
	s.sampleRate = sampleRate
}

// Configure clamps Cutoff/Q and recomputes g, R2, h from the pre-warped
// analog cutoff.
func (s *SVF) Configure() {
	nyquistMargin := s.sampleRate/2 - 100
	if s.Cutoff < svfMinCutoff {
		s.Cutoff = svfMinCutoff
	}
	if s.Cutoff > nyquistMargin {
		s.Cutoff = nyquistMargin
	}
	if s.Q < svfMinQ {
		s.Q = svfMinQ
	}
	if s.Q > svfMaxQ {
		s.Q = svfMaxQ
	}

	wd := 2 * math.Pi * float64(s.Cutoff)
	t := 1 / float64(s.sampleRate)
	wa := (2 / t) * math.Tan(wd*t/2)

	g := wa * t / 2
	r2 := 1 / (2 * float64(s.Q))
	if r2 < svfQFloor {
		r2 = svfQFloor
	}
	h := 1 / (1 + 2*r2*g + g*g)

	s.g = float32(g)
	s.r2 = float32(r2)
	s.h = float32(h)
}

// Reset zeroes the integrator states.
func (s *SVF) Reset() {
	s.s1 = 0
	s.s2 = 0
}

// Next processes one input sample through the zero-delay-feedback
// topology and returns the tap selected by Mode.
func (s *SVF) Next(x float32) float32 {
	yHP := s.h * (x - (2*s.r2+s.g)*s.s1 - s.s2)
	yBP := s.g*yHP + s.s1
	s.s1 = yBP + s.g*yHP
	yLP := s.g*yBP + s.s2
	s.s2 = yLP + s.g*yBP

	switch s.Mode {
	case SVFBandPass:
		return yBP
	case SVFHighPass:
		return yHP
	default:
		return yLP
	}
}
