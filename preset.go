package subvox

import (
	"github.com/cascadia-audio/subvox/internal/filter"
	"github.com/cascadia-audio/subvox/internal/osc"
	"github.com/cascadia-audio/subvox/internal/voice"
)

// LFOConfig is one LFO's slot in a Preset.
type LFOConfig struct {
	Waveform osc.Waveform    `json:"waveform"`
	Hz       float32         `json:"hz"`
	Amount   float32         `json:"amount"`
	Target   voice.ModTarget `json:"target"`
}

// Preset is the engine's current patch: oscillator waveform, biquad
// mode/cutoff/resonance, two LFO configs, and ADSR envelope settings
// (seconds-based). A Preset is snapshotted into a voice at note-on, so
// later preset edits never retroactively affect already-playing voices.
//
// JSON tags exist so a host can marshal a preset for logging and
// debugging; the core never reads or writes a Preset to disk. Patch
// persistence is out of scope (see DESIGN.md).
type Preset struct {
	OscWaveform osc.Waveform `json:"osc_waveform"`

	FilterMode      filter.BiquadMode `json:"filter_mode"`
	FilterCutoffHz  float32           `json:"filter_cutoff_hz"`
	FilterResonance float32           `json:"filter_resonance"`

	LFO1 LFOConfig `json:"lfo1"`
	LFO2 LFOConfig `json:"lfo2"`

	AttackSec  float32 `json:"attack_sec"`
	DecaySec   float32 `json:"decay_sec"`
	SustainLvl float32 `json:"sustain_level"`
	ReleaseSec float32 `json:"release_sec"`
}

// DefaultPreset returns a reasonable starting patch: sine oscillator,
// wide-open low-pass filter, no LFO modulation, and a snappy envelope.
func DefaultPreset() Preset {
	return Preset{
		OscWaveform:     osc.Sine,
		FilterMode:      filter.LowPass,
		FilterCutoffHz:  20000,
		FilterResonance: 0.707,
		LFO1:            LFOConfig{Waveform: osc.Triangle, Target: voice.TargetNone},
		LFO2:            LFOConfig{Waveform: osc.Triangle, Target: voice.TargetNone},
		AttackSec:       0.01,
		DecaySec:        0.1,
		SustainLvl:      0.7,
		ReleaseSec:      0.3,
	}
}

// applyTo snapshots the preset's parameters into v. Called once per
// note-on; subsequent preset edits never reach an already-triggered
// voice.
func (p Preset) applyTo(v *voice.Voice) {
	v.Osc.Waveform = p.OscWaveform

	v.Filter.Mode = p.FilterMode
	v.Filter.Cutoff = p.FilterCutoffHz
	v.Filter.Resonance = p.FilterResonance
	v.Filter.Configure()

	v.LFO1.Waveform = p.LFO1.Waveform
	v.LFO1.Frequency = p.LFO1.Hz
	v.LFO1.Amount = p.LFO1.Amount
	v.LFO1Target = p.LFO1.Target

	v.LFO2.Waveform = p.LFO2.Waveform
	v.LFO2.Frequency = p.LFO2.Hz
	v.LFO2.Amount = p.LFO2.Amount
	v.LFO2Target = p.LFO2.Target

	v.Env.SetParams(p.AttackSec, p.DecaySec, p.SustainLvl, p.ReleaseSec)
}
