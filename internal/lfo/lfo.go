// Package lfo implements the low-frequency modulator used by a voice's
// modulation matrix. It shares its waveform shapes and phase-accumulator
// mechanics with internal/osc, but its output is unity-range (scaled only
// by Amount, never by an amplitude field).
package lfo

import (
	"math"

	"github.com/cascadia-audio/subvox/internal/osc"
)

const twoPi = 2 * math.Pi

// LFO is identical in state machine and waveform set to osc.Oscillator,
// but its Next() output is in [-Amount, +Amount] rather than amplitude-
// scaled. The noise waveform draws from the same 32-bit LCG as
// osc.Oscillator so both noise sources are reproducible from a seed.
type LFO struct {
	Frequency float32
	Amount    float32
	Waveform  osc.Waveform

	phase     float64
	noiseSeed uint32
}

// New returns an LFO with a non-zero default noise seed.
func New() *LFO {
	return &LFO{noiseSeed: 0x9e37_79b9}
}

// Reset zeroes the phase accumulator.
func (l *LFO) Reset() {
	l.phase = 0
}

// Next advances the LFO by one sample and returns amount-scaled output.
func (l *LFO) Next(sampleRate float32) float32 {
	out := l.sample() * l.Amount

	inc := twoPi * float64(l.Frequency) / float64(sampleRate)
	l.phase += inc
	for l.phase >= twoPi {
		l.phase -= twoPi
	}
	for l.phase < 0 {
		l.phase += twoPi
	}
	return out
}

func (l *LFO) sample() float32 {
	switch l.Waveform {
	case osc.Sine:
		return float32(math.Sin(l.phase))
	case osc.Saw:
		return float32(2*(l.phase/twoPi) - 1)
	case osc.Square:
		if l.phase < math.Pi {
			return 1
		}
		return -1
	case osc.Triangle:
		if l.phase < math.Pi {
			return float32(2*l.phase/math.Pi - 1)
		}
		return float32(3 - 2*l.phase/math.Pi)
	case osc.Noise:
		return osc.NoiseSample(&l.noiseSeed)
	default:
		return 0
	}
}
