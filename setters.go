package subvox

import (
	"github.com/cascadia-audio/subvox/internal/filter"
	"github.com/cascadia-audio/subvox/internal/osc"
	"github.com/cascadia-audio/subvox/internal/voice"
)

// SetOscillatorWaveform sets the oscillator waveform for future note-ons.
func (e *Engine) SetOscillatorWaveform(w osc.Waveform) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.preset.OscWaveform = w
}

// SetFilter sets the biquad mode, cutoff (Hz) and resonance (Q) for
// future note-ons. Cutoff and resonance are clamped at voice-configure
// time, not here.
func (e *Engine) SetFilter(mode filter.BiquadMode, cutoffHz, resonance float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.preset.FilterMode = mode
	e.preset.FilterCutoffHz = cutoffHz
	e.preset.FilterResonance = resonance
}

// SetLFO1 configures LFO1's waveform, rate, amount and modulation target
// for future note-ons.
func (e *Engine) SetLFO1(w osc.Waveform, hz, amount float32, target voice.ModTarget) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.preset.LFO1 = LFOConfig{Waveform: w, Hz: hz, Amount: amount, Target: target}
}

// SetLFO2 configures LFO2's waveform, rate, amount and modulation target
// for future note-ons.
func (e *Engine) SetLFO2(w osc.Waveform, hz, amount float32, target voice.ModTarget) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.preset.LFO2 = LFOConfig{Waveform: w, Hz: hz, Amount: amount, Target: target}
}

// SetEnvelope configures the engine's seconds-based ADSR for future
// note-ons.
func (e *Engine) SetEnvelope(attackSec, decaySec, sustain, releaseSec float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.preset.AttackSec = attackSec
	e.preset.DecaySec = decaySec
	e.preset.SustainLvl = sustain
	e.preset.ReleaseSec = releaseSec
}
