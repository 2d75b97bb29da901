// Package envelope implements the level envelopes driving a voice: the
// engine's core ADSR (seconds-based), plus an AHDSR variant with an
// optional hold stage and an attack-release-only AR variant
// (milliseconds-based). Each envelope class documents its own time unit.
package envelope

// Stage is the envelope's current position in its state machine.
type Stage int

const (
	Idle Stage = iota
	Attack
	Hold
	Decay
	Sustain
	Release
)

// Settings holds the parameters of an ADSR/AHDSR envelope. Attack/Decay/
// Hold/Release are in milliseconds; Sustain is a level in [0, 1].
type Settings struct {
	AttackMs   float32
	HoldMs     float32
	DecayMs    float32
	SustainLvl float32
	ReleaseMs  float32
	// HasSustain selects AHDSR (true, the default) vs. AR (false): when
	// false, the level stays at full after attack/hold until note-off
	// jumps straight to release, and decay/sustain are skipped entirely.
	HasSustain bool
}

// clamp01 clamps v to [0, 1].
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ADSR is the seconds-based envelope used by the engine's per-voice
// amplitude stage. Stage transitions advance the level by a fixed
// per-sample rate computed from the current attack/decay/release times,
// a linear ramp rather than an exponential one.
type ADSR struct {
	AttackSec  float32
	DecaySec   float32
	SustainLvl float32
	ReleaseSec float32

	sampleRate float32
	stage      Stage
	level      float32

	attackRate  float32
	decayRate   float32
	releaseRate float32
}

// NewADSR returns an ADSR bound to sampleRate with conservative defaults.
func NewADSR(sampleRate float32) *ADSR {
	e := &ADSR{
		AttackSec:  0.01,
		DecaySec:   0.1,
		SustainLvl: 0.7,
		ReleaseSec: 0.3,
		sampleRate: sampleRate,
	}
	e.recompute()
	return e
}

// SetSampleRate updates the sample rate and recomputes per-sample rates.
func (e *ADSR) SetSampleRate(sampleRate float32) {
	e.sampleRate = sampleRate
	e.recompute()
}

// SetParams sets all four ADSR parameters at once and recomputes rates.
func (e *ADSR) SetParams(attackSec, decaySec, sustainLvl, releaseSec float32) {
	e.AttackSec = maxFloat(0, attackSec)
	e.DecaySec = maxFloat(0, decaySec)
	e.SustainLvl = clamp01(sustainLvl)
	e.ReleaseSec = maxFloat(0, releaseSec)
	e.recompute()
}

func (e *ADSR) recompute() {
	e.attackRate = rateFor(1, e.AttackSec, e.sampleRate)
	e.decayRate = rateFor(1-e.SustainLvl, e.DecaySec, e.sampleRate)
	e.releaseRate = rateFor(e.SustainLvl, e.ReleaseSec, e.sampleRate)
}

// rateFor returns the per-sample step size that covers span over
// durationSec at sampleRate. A non-positive duration yields an
// instantaneous (one-sample) transition.
func rateFor(span, durationSec, sampleRate float32) float32 {
	if durationSec <= 0 || sampleRate <= 0 {
		return span + 1 // guarantees the boundary check fires on the next sample
	}
	return span / (durationSec * sampleRate)
}

// NoteOn unconditionally enters attack and recomputes rates.
func (e *ADSR) NoteOn() {
	e.recompute()
	e.stage = Attack
}

// NoteOff enters release if the envelope is not already idle.
func (e *ADSR) NoteOff() {
	if e.stage != Idle {
		e.stage = Release
	}
}

// Reset returns the envelope to idle with zero level.
func (e *ADSR) Reset() {
	e.stage = Idle
	e.level = 0
}

// IsActive reports whether the envelope is outside the idle stage.
func (e *ADSR) IsActive() bool {
	return e.stage != Idle
}

// StageNow returns the current stage.
func (e *ADSR) StageNow() Stage {
	return e.stage
}

// Next advances the envelope by one sample and returns its level.
func (e *ADSR) Next() float32 {
	switch e.stage {
	case Attack:
		e.level += e.attackRate
		if e.level >= 1 {
			e.level = 1
			e.stage = Decay
		}
	case Decay:
		e.level -= e.decayRate
		if e.level <= e.SustainLvl {
			e.level = e.SustainLvl
			e.stage = Sustain
		}
	case Sustain:
		e.level = e.SustainLvl
	case Release:
		e.level -= e.releaseRate
		if e.level <= 0 {
			e.level = 0
			e.stage = Idle
		}
	case Idle:
		e.level = 0
	}
	return e.level
}

func maxFloat(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// AHDSR is the milliseconds-based envelope with an optional hold stage
// between attack and decay, usable standalone from the engine's core
// ADSR.
type AHDSR struct {
	Settings

	sampleRate float32
	stage      Stage
	level      float32
	holdFrames int
	holdCount  int

	attackRate  float32
	decayRate   float32
	releaseRate float32
}

// NewAHDSR returns an AHDSR bound to sampleRate with HasSustain set.
func NewAHDSR(sampleRate float32) *AHDSR {
	e := &AHDSR{
		Settings: Settings{
			AttackMs:   10,
			DecayMs:    100,
			SustainLvl: 0.7,
			ReleaseMs:  300,
			HasSustain: true,
		},
		sampleRate: sampleRate,
	}
	e.recompute()
	return e
}

// SetSampleRate updates the sample rate and recomputes per-sample rates.
func (e *AHDSR) SetSampleRate(sampleRate float32) {
	e.sampleRate = sampleRate
	e.recompute()
}

// SetSettings replaces the envelope settings wholesale and recomputes.
func (e *AHDSR) SetSettings(s Settings) {
	s.AttackMs = maxFloat(0, s.AttackMs)
	s.HoldMs = maxFloat(0, s.HoldMs)
	s.DecayMs = maxFloat(0, s.DecayMs)
	s.SustainLvl = clamp01(s.SustainLvl)
	s.ReleaseMs = maxFloat(0, s.ReleaseMs)
	e.Settings = s
	e.recompute()
}

func (e *AHDSR) recompute() {
	e.attackRate = rateFor(1, e.AttackMs/1000, e.sampleRate)
	sustain := e.SustainLvl
	releaseSpan := sustain
	if !e.HasSustain {
		sustain = 0
		releaseSpan = 1 // release starts straight from full level (AR-style)
	}
	e.decayRate = rateFor(1-sustain, e.DecayMs/1000, e.sampleRate)
	e.releaseRate = rateFor(releaseSpan, e.ReleaseMs/1000, e.sampleRate)
	e.holdFrames = int(e.HoldMs / 1000 * e.sampleRate)
}

// NoteOn unconditionally enters attack and recomputes rates.
func (e *AHDSR) NoteOn() {
	e.recompute()
	e.stage = Attack
	e.holdCount = 0
}

// NoteOff enters release. For the AR-style configuration (HasSustain
// false) this is the only path out of attack/hold.
func (e *AHDSR) NoteOff() {
	if e.stage != Idle {
		e.stage = Release
	}
}

// Reset returns the envelope to idle with zero level.
func (e *AHDSR) Reset() {
	e.stage = Idle
	e.level = 0
	e.holdCount = 0
}

// IsActive reports whether the envelope is outside the idle stage.
func (e *AHDSR) IsActive() bool {
	return e.stage != Idle
}

// StageNow returns the current stage.
func (e *AHDSR) StageNow() Stage {
	return e.stage
}

// Next advances the envelope by one sample and returns its level.
func (e *AHDSR) Next() float32 {
	switch e.stage {
	case Attack:
		e.level += e.attackRate
		if e.level >= 1 {
			e.level = 1
			if e.holdFrames > 0 {
				e.stage = Hold
				e.holdCount = 0
			} else if e.HasSustain {
				e.stage = Decay
			}
		}
	case Hold:
		e.holdCount++
		if e.holdCount >= e.holdFrames && e.HasSustain {
			e.stage = Decay
		}
	case Decay:
		e.level -= e.decayRate
		if e.level <= e.SustainLvl {
			e.level = e.SustainLvl
			e.stage = Sustain
		}
	case Sustain:
		e.level = e.SustainLvl
	case Release:
		e.level -= e.releaseRate
		if e.level <= 0 {
			e.level = 0
			e.stage = Idle
		}
	case Idle:
		e.level = 0
	}
	return e.level
}
