// Package osc implements the phase-accumulator oscillator shared by a
// voice's tone generator and, via the lfo package, its modulators.
package osc

import "math"

const twoPi = 2 * math.Pi

// Waveform selects the per-sample shape function.
type Waveform int

const (
	Sine Waveform = iota
	Saw
	Square
	Triangle
	Noise
)

// Oscillator is a single-waveform tone generator with a phase accumulator
// in [0, 2*pi). No band-limiting is applied; aliasing on saw/square/
// triangle is accepted, matching the spec's reference behavior.
type Oscillator struct {
	Frequency float32
	Amplitude float32
	Waveform  Waveform

	phase     float64
	noiseSeed uint32
}

// New returns an Oscillator with unit amplitude, sine waveform, and a
// non-zero default noise seed so Noise() is not stuck at zero.
func New() *Oscillator {
	return &Oscillator{
		Amplitude: 1,
		Waveform:  Sine,
		noiseSeed: 0x1234_5678,
	}
}

// Reset zeroes the phase accumulator. The noise LCG state is left
// untouched so successive notes don't repeat the same noise sequence.
func (o *Oscillator) Reset() {
	o.phase = 0
}

// Next advances the oscillator by one sample at the given sample rate and
// returns the amplitude-scaled output.
func (o *Oscillator) Next(sampleRate float32) float32 {
	out := o.sample() * o.Amplitude

	inc := twoPi * float64(o.Frequency) / float64(sampleRate)
	o.phase += inc
	for o.phase >= twoPi {
		o.phase -= twoPi
	}
	for o.phase < 0 {
		o.phase += twoPi
	}
	return out
}

// Phase returns the current phase accumulator value, always in [0, 2*pi).
func (o *Oscillator) Phase() float64 {
	return o.phase
}

func (o *Oscillator) sample() float32 {
	switch o.Waveform {
	case Sine:
		return float32(math.Sin(o.phase))
	case Saw:
		return float32(2*(o.phase/twoPi) - 1)
	case Square:
		if o.phase < math.Pi {
			return 1
		}
		return -1
	case Triangle:
		if o.phase < math.Pi {
			return float32(2*o.phase/math.Pi - 1)
		}
		return float32(3 - 2*o.phase/math.Pi)
	case Noise:
		return nextNoise(&o.noiseSeed)
	default:
		return 0
	}
}

// nextNoise advances a 32-bit linear congruential generator and returns a
// signed sample in [-1, 1). The constants are the spec-mandated Numerical
// Recipes LCG (a=1664525, c=1013904223), shared verbatim by both the
// oscillator's noise waveform and the LFO's noise waveform so the two are
// reproducible from the same seed.
func nextNoise(seed *uint32) float32 {
	*seed = *seed*1664525 + 1013904223
	return float32(int32(*seed)) / float32(1<<31)
}

// NoiseSample exposes the shared LCG step for callers (e.g. the lfo
// package) that need an identical noise source without duplicating the
// constants.
func NoiseSample(seed *uint32) float32 {
	return nextNoise(seed)
}
