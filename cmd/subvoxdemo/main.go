package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	subvox "github.com/cascadia-audio/subvox"
	"github.com/cascadia-audio/subvox/internal/audio"
	"github.com/cascadia-audio/subvox/internal/filter"
	"github.com/cascadia-audio/subvox/internal/osc"
	"github.com/cascadia-audio/subvox/internal/voice"
)

// chordStep is one entry in the built-in demo progression: a set of
// frequencies (Hz) held for a duration before the next step's note-ons.
type chordStep struct {
	freqsHz  []float32
	duration time.Duration
}

var demoProgression = []chordStep{
	{freqsHz: []float32{261.63, 329.63, 392.00}, duration: 700 * time.Millisecond}, // C major
	{freqsHz: []float32{293.66, 349.23, 440.00}, duration: 700 * time.Millisecond}, // D minor
	{freqsHz: []float32{329.63, 392.00, 493.88}, duration: 700 * time.Millisecond}, // E minor
	{freqsHz: []float32{261.63, 329.63, 392.00}, duration: 900 * time.Millisecond}, // C major
}

func main() {
	var (
		sampleRate = flag.Int("sample-rate", 48000, "output sample rate")
		maxVoices  = flag.Int("max-voices", 8, "voice pool size")
		waveform   = flag.String("waveform", "saw", "oscillator waveform: sine|saw|square|triangle|noise")
		filterMode = flag.String("filter", "lowpass", "filter mode: lowpass|highpass|bandpass|notch")
		cutoffHz   = flag.Float64("cutoff", 2000, "filter cutoff in Hz")
		resonance  = flag.Float64("resonance", 1.2, "filter resonance (Q)")
		attackSec  = flag.Float64("attack", 0.02, "envelope attack, seconds")
		decaySec   = flag.Float64("decay", 0.15, "envelope decay, seconds")
		sustain    = flag.Float64("sustain", 0.6, "envelope sustain level, 0..1")
		releaseSec = flag.Float64("release", 0.4, "envelope release, seconds")
		volume     = flag.Float64("volume", 0.8, "master volume, 0..1")
		pan        = flag.Float64("pan", 0, "master pan, -1..1")
	)
	flag.Parse()

	wf, err := parseWaveform(*waveform)
	if err != nil {
		log.Fatal(err)
	}
	fm, err := parseFilterMode(*filterMode)
	if err != nil {
		log.Fatal(err)
	}

	engine := subvox.NewEngine(float32(*sampleRate), *maxVoices)
	engine.SetOscillatorWaveform(wf)
	engine.SetFilter(fm, float32(*cutoffHz), float32(*resonance))
	engine.SetEnvelope(float32(*attackSec), float32(*decaySec), float32(*sustain), float32(*releaseSec))
	engine.SetLFO1(osc.Triangle, 4.5, 0.15, voice.TargetFilterCutoff)
	engine.SetMasterVolume(float32(*volume))
	engine.SetMasterPan(float32(*pan))

	player, err := audio.NewPlayer(*sampleRate, engine)
	if err != nil {
		log.Fatal(err)
	}
	player.Play()

	for stepIdx, step := range demoProgression {
		ids := make([]string, len(step.freqsHz))
		for i, freq := range step.freqsHz {
			id := fmt.Sprintf("step%d-note%d", stepIdx, i)
			ids[i] = id
			engine.NoteOn(id, freq, 0.9)
		}
		fmt.Printf("chord %d: %d active voices\n", stepIdx, engine.ActiveVoiceCount())
		time.Sleep(step.duration)
		for _, id := range ids {
			engine.NoteOff(id)
		}
	}

	for engine.HasActiveVoices() {
		time.Sleep(50 * time.Millisecond)
	}
	player.Stop()
}

func parseWaveform(name string) (osc.Waveform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine":
		return osc.Sine, nil
	case "saw":
		return osc.Saw, nil
	case "square":
		return osc.Square, nil
	case "triangle":
		return osc.Triangle, nil
	case "noise":
		return osc.Noise, nil
	default:
		return 0, fmt.Errorf("invalid -waveform %q (expected sine|saw|square|triangle|noise)", name)
	}
}

func parseFilterMode(name string) (filter.BiquadMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lowpass":
		return filter.LowPass, nil
	case "highpass":
		return filter.HighPass, nil
	case "bandpass":
		return filter.BandPass, nil
	case "notch":
		return filter.Notch, nil
	default:
		return 0, fmt.Errorf("invalid -filter %q (expected lowpass|highpass|bandpass|notch)", name)
	}
}
