// Package subvox implements a polyphonic real-time subtractive synthesis
// engine: given note-on/note-off events and a current preset, it renders
// interleaved audio samples into a caller-supplied buffer at a fixed
// sample rate.
package subvox

import (
	"log"
	"math"
	"sync"
	"sync/atomic"

	"github.com/cascadia-audio/subvox/internal/voice"
)

// Engine owns a fixed pool of voices, the current preset, master gain/pan,
// and the note-id -> voice-id mapping. It is constructed once and lives
// for the host's lifetime. Voices are never created or destroyed during
// rendering.
type Engine struct {
	sampleRate float32

	mu      sync.Mutex
	voices  []*voice.Voice
	noteMap map[string]int // note-id -> index into voices
	preset  Preset

	masterVolume uint32 // atomic, math.Float32bits
	masterPan    uint32 // atomic, math.Float32bits

	// Logger receives voice-exhaustion diagnostics. Defaults to
	// log.Default() so a host can redirect or silence it without this
	// package importing a logging framework (see DESIGN.md).
	Logger *log.Logger
}

// NewEngine constructs an Engine with a fixed voice pool of size
// maxVoices, pre-sized so no allocation occurs on the audio path
// afterward.
func NewEngine(sampleRate float32, maxVoices int) *Engine {
	if maxVoices < 1 {
		maxVoices = 1
	}
	e := &Engine{
		sampleRate: sampleRate,
		voices:     make([]*voice.Voice, maxVoices),
		noteMap:    make(map[string]int, maxVoices),
		preset:     DefaultPreset(),
		Logger:     log.Default(),
	}
	for i := range e.voices {
		e.voices[i] = voice.New(i, sampleRate)
	}
	atomic.StoreUint32(&e.masterVolume, math.Float32bits(1))
	atomic.StoreUint32(&e.masterPan, math.Float32bits(0))
	return e
}

// NoteOn allocates a voice for note-id, snapshots the current preset into
// it, and triggers its envelope attack. A duplicate note-id is silently
// rejected.
func (e *Engine) NoteOn(id string, frequencyHz, velocity float32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.noteMap[id]; exists {
		return
	}
	idx := e.allocateVoice()
	v := e.voices[idx]
	e.preset.applyTo(v)
	v.NoteOn(frequencyHz, velocity)
	e.noteMap[id] = idx
}

// NoteOff triggers release on the voice mapped to id, if any. The voice
// remains active through its release stage; only the mapping is removed
// immediately. Unknown ids are silently ignored.
func (e *Engine) NoteOff(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx, exists := e.noteMap[id]
	if !exists {
		return
	}
	e.voices[idx].NoteOff()
	delete(e.noteMap, id)
}

// AllNotesOff releases every mapped note and clears the mapping.
func (e *Engine) AllNotesOff() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, idx := range e.noteMap {
		e.voices[idx].NoteOff()
	}
	e.noteMap = make(map[string]int, len(e.voices))
}

// allocateVoice scans the pool in order and returns the first inactive
// voice. If none is free, voice 0 is unconditionally stolen (reset and
// reused), a deliberately simple policy.
func (e *Engine) allocateVoice() int {
	for i, v := range e.voices {
		if !v.IsActive() {
			return i
		}
	}
	if e.Logger != nil {
		e.Logger.Printf("subvox: voice pool exhausted (%d voices), stealing voice 0", len(e.voices))
	}
	e.voices[0].Reset()
	// Drop any note-id currently mapped to the stolen voice so the
	// mapping invariant (range subset of active voices, no duplicate
	// targets) keeps holding once the caller inserts its own mapping.
	for id, idx := range e.noteMap {
		if idx == 0 {
			delete(e.noteMap, id)
		}
	}
	return 0
}

// Process zeroes buffer and then sums every active voice's output into
// it, applying master volume and, for stereo output, the pan law below.
// The buffer is always fully overwritten, never accumulated across
// calls. Only channels == 1 or 2 are defined.
func (e *Engine) Process(buffer []float32, frames, channels int) {
	for i := range buffer {
		buffer[i] = 0
	}

	volume := math.Float32frombits(atomic.LoadUint32(&e.masterVolume))
	if volume == 0 {
		return
	}
	pan := math.Float32frombits(atomic.LoadUint32(&e.masterPan))
	// Asymmetric pan law, reproduced rather than corrected: only the left
	// gain carries the +0.5 offset, so pan 0 gives left 1.0, right 0.5.
	leftGain := (1-pan)/2 + 0.5
	rightGain := (1 + pan) / 2

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, v := range e.voices {
		if !v.IsActive() {
			continue
		}
		for f := 0; f < frames; f++ {
			s := v.Process() * volume
			switch channels {
			case 1:
				buffer[f] += s
			case 2:
				buffer[f*2] += s * leftGain
				buffer[f*2+1] += s * rightGain
			}
		}
	}
}

// ActiveVoiceCount returns how many voices are currently active.
func (e *Engine) ActiveVoiceCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := 0
	for _, v := range e.voices {
		if v.IsActive() {
			n++
		}
	}
	return n
}

// HasActiveVoices reports whether any voice is currently active.
func (e *Engine) HasActiveVoices() bool {
	return e.ActiveVoiceCount() > 0
}

// SetMasterVolume sets the master volume, clamped to [0, 1]. Safe to call
// from any goroutine without the voice-pool mutex.
func (e *Engine) SetMasterVolume(v float32) {
	atomic.StoreUint32(&e.masterVolume, math.Float32bits(clamp(v, 0, 1)))
}

// SetMasterPan sets the master pan, clamped to [-1, 1].
func (e *Engine) SetMasterPan(p float32) {
	atomic.StoreUint32(&e.masterPan, math.Float32bits(clamp(p, -1, 1)))
}

// SetPreset replaces the engine's current preset wholesale. The change
// does not retroactively affect already-playing voices.
func (e *Engine) SetPreset(p Preset) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.preset = p
}

// Preset returns a copy of the engine's current preset.
func (e *Engine) Preset() Preset {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.preset
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
