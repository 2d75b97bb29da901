// Package voice implements the per-note DSP chain: oscillator -> biquad
// filter -> envelope, modulated by two LFOs through a small modulation
// matrix.
package voice

import (
	"github.com/cascadia-audio/subvox/internal/envelope"
	"github.com/cascadia-audio/subvox/internal/filter"
	"github.com/cascadia-audio/subvox/internal/lfo"
	"github.com/cascadia-audio/subvox/internal/osc"
)

// ModTarget selects the parameter an LFO perturbs.
type ModTarget int

const (
	TargetNone ModTarget = iota
	TargetPitch
	TargetVolume
	TargetFilterCutoff
)

// filterCutoffAnchorHz centers filter-cutoff LFO modulation on a fixed
// frequency rather than the voice's currently programmed cutoff. Likely
// a bug in the original design, reproduced here for compatibility rather
// than corrected.
const filterCutoffAnchorHz = 1000

// Voice composes an oscillator, biquad filter, envelope and two LFOs. It
// is never allocated or freed during rendering; the owning engine
// pre-sizes a fixed pool of voices at construction.
type Voice struct {
	ID int

	Osc    *osc.Oscillator
	Filter *filter.Biquad
	Env    *envelope.ADSR
	LFO1   *lfo.LFO
	LFO2   *lfo.LFO

	LFO1Target ModTarget
	LFO2Target ModTarget

	baseFrequency float32
	velocity      float32
	sampleRate    float32
}

// New returns a Voice bound to sampleRate with freshly constructed
// children, all owned exclusively by this voice.
func New(id int, sampleRate float32) *Voice {
	return &Voice{
		ID:         id,
		Osc:        osc.New(),
		Filter:     filter.NewBiquad(sampleRate),
		Env:        envelope.NewADSR(sampleRate),
		LFO1:       lfo.New(),
		LFO2:       lfo.New(),
		sampleRate: sampleRate,
	}
}

// NoteOn stores the base frequency, resets the oscillator phase and
// filter delay line, resets both LFOs, and triggers the envelope attack.
func (v *Voice) NoteOn(frequencyHz, velocity float32) {
	v.baseFrequency = frequencyHz
	v.velocity = clamp(velocity, 0, 1)
	v.Osc.Frequency = frequencyHz
	v.Osc.Reset()
	v.Filter.Configure()
	v.Filter.Reset()
	v.LFO1.Reset()
	v.LFO2.Reset()
	v.Env.NoteOn()
}

// NoteOff triggers the envelope release.
func (v *Voice) NoteOff() {
	v.Env.NoteOff()
}

// Reset returns every child to its idle/zero state.
func (v *Voice) Reset() {
	v.Osc.Reset()
	v.Filter.Reset()
	v.Env.Reset()
	v.LFO1.Reset()
	v.LFO2.Reset()
	v.baseFrequency = 0
	v.velocity = 0
}

// IsActive reports whether the voice's envelope is outside idle.
func (v *Voice) IsActive() bool {
	return v.Env.IsActive()
}

// Process renders one sample. If the envelope is inactive this returns 0
// without touching the oscillator or filter.
func (v *Voice) Process() float32 {
	if !v.Env.IsActive() {
		return 0
	}

	mod1 := v.LFO1.Next(v.sampleRate)
	mod2 := v.LFO2.Next(v.sampleRate)

	v.Osc.Frequency = v.baseFrequency
	v.Osc.Amplitude = 1

	v.applyMod(v.LFO1Target, mod1)
	v.applyMod(v.LFO2Target, mod2) // LFO2 overwrites LFO1 on a shared target, by design.

	sample := v.Osc.Next(v.sampleRate)
	filtered := v.Filter.Next(sample)

	envLevel := v.Env.Next()
	return filtered * envLevel * v.velocity
}

// applyMod writes one LFO's contribution to its assigned target. Called
// for LFO1 then LFO2 in that order; a later call overwrites an earlier
// one on the same target.
func (v *Voice) applyMod(target ModTarget, value float32) {
	switch target {
	case TargetPitch:
		v.Osc.Frequency = v.baseFrequency * (1 + 0.1*value)
	case TargetVolume:
		v.Osc.Amplitude = 1 + 0.5*value
	case TargetFilterCutoff:
		v.Filter.Cutoff = filterCutoffAnchorHz * (1 + value)
		v.Filter.Configure() // cutoff changed, coefficients must be recomputed.
	case TargetNone:
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
