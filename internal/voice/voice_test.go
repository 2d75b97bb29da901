package voice

import (
	"math"
	"testing"

	"github.com/cascadia-audio/subvox/internal/osc"
)

func newTestVoice() *Voice {
	v := New(0, 48000)
	v.Env.SetParams(0.001, 0.001, 1.0, 0.001)
	v.Filter.Mode = 0
	v.Filter.Cutoff = 20000
	v.Filter.Resonance = 0.707
	return v
}

func TestInactiveVoiceProducesZero(t *testing.T) {
	v := newTestVoice()
	if v.IsActive() {
		t.Fatalf("fresh voice should be inactive")
	}
	if s := v.Process(); s != 0 {
		t.Fatalf("expected 0 from inactive voice, got %f", s)
	}
}

func TestNoteOnActivatesVoice(t *testing.T) {
	v := newTestVoice()
	v.NoteOn(440, 1.0)
	if !v.IsActive() {
		t.Fatalf("expected active voice after NoteOn")
	}
}

func TestNoteOffEventuallyIdles(t *testing.T) {
	v := newTestVoice()
	v.NoteOn(440, 1.0)
	for i := 0; i < 100; i++ {
		v.Process()
	}
	v.NoteOff()
	for i := 0; i < 200; i++ {
		v.Process()
	}
	if v.IsActive() {
		t.Fatalf("expected voice idle after release window")
	}
}

func TestLFO2OverwritesLFO1OnSharedTarget(t *testing.T) {
	v := newTestVoice()
	v.Osc.Waveform = osc.Sine
	v.LFO1Target = TargetVolume
	v.LFO2Target = TargetVolume
	v.LFO1.Waveform = osc.Square
	v.LFO1.Frequency = 0 // constant +amount every sample (phase stays at 0)
	v.LFO1.Amount = 1.0
	v.LFO2.Waveform = osc.Square
	v.LFO2.Frequency = 0
	v.LFO2.Amount = 0.2
	v.NoteOn(440, 1.0)
	v.Process()
	// After LFO1 writes amplitude=1.5 and LFO2 overwrites to amplitude=1.1,
	// the final oscillator amplitude used for this sample must reflect
	// LFO2's value, not LFO1's.
	if math.Abs(float64(v.Osc.Amplitude)-1.1) > 1e-6 {
		t.Fatalf("expected LFO2 to overwrite LFO1's amplitude write, got %f", v.Osc.Amplitude)
	}
}

func TestFilterCutoffModAnchoredAt1kHz(t *testing.T) {
	v := newTestVoice()
	v.Filter.Cutoff = 5000 // programmed cutoff, should be ignored by the anchor
	v.LFO1Target = TargetFilterCutoff
	v.LFO1.Waveform = osc.Square
	v.LFO1.Frequency = 0
	v.LFO1.Amount = 0.5
	v.NoteOn(440, 1.0)
	v.Process()
	want := float32(filterCutoffAnchorHz * 1.5)
	if math.Abs(float64(v.Filter.Cutoff-want)) > 1 {
		t.Fatalf("expected cutoff anchored at 1kHz*(1+v), got %f want ~%f", v.Filter.Cutoff, want)
	}
}

func TestPitchModWithinTenPercent(t *testing.T) {
	v := newTestVoice()
	v.LFO1Target = TargetPitch
	v.LFO1.Waveform = osc.Square
	v.LFO1.Frequency = 0
	v.LFO1.Amount = 1.0 // max modulation
	v.NoteOn(1000, 1.0)
	v.Process()
	if v.Osc.Frequency < 1000*0.89 || v.Osc.Frequency > 1000*1.11 {
		t.Fatalf("expected frequency within +-10%% of base, got %f", v.Osc.Frequency)
	}
}

func TestResetReturnsToIdle(t *testing.T) {
	v := newTestVoice()
	v.NoteOn(440, 1.0)
	v.Reset()
	if v.IsActive() {
		t.Fatalf("expected idle after Reset")
	}
}
