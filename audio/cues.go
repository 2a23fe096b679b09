package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
	bufferTime = 100 * time.Millisecond
	toneAttack = 2 * time.Millisecond

	stepDuration   = 25 * time.Millisecond
	resetDuration  = 90 * time.Millisecond
	switchDuration = 70 * time.Millisecond
	noteGap        = 10 * time.Millisecond
)

// Cues plays short feedback sounds for testbed controls
type Cues interface {
	Step()
	Reset()
	Switch()
	Close()
}

// Nop is the silent Cues used when audio is disabled or unavailable
type Nop struct{}

func (Nop) Step()   {}
func (Nop) Reset()  {}
func (Nop) Switch() {}
func (Nop) Close()  {}

// SpeakerCues mixes cue streamers into the system speaker
type SpeakerCues struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	play   func(beep.Streamer)
	stop   func()
	volume float64
	closed bool
}

// NewSpeakerCues initializes the speaker at volume in [0,1]
func NewSpeakerCues(volume float64) (*SpeakerCues, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(bufferTime)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	c := newCues(volume, nil)
	c.play = func(s beep.Streamer) {
		speaker.Lock()
		c.mixer.Add(s)
		speaker.Unlock()
	}
	c.stop = speaker.Clear
	speaker.Play(c.mixer)
	return c, nil
}

func newCues(volume float64, play func(beep.Streamer)) *SpeakerCues {
	return &SpeakerCues{
		mixer:  &beep.Mixer{},
		play:   play,
		volume: volume,
	}
}

func (c *SpeakerCues) emit(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.play(newVolume(s, c.volume))
}

// Step is a short square tick
func (c *SpeakerCues) Step() {
	c.emit(tone(1200, stepDuration, WaveSquare, sampleRate))
}

// Reset is a falling two-note pair
func (c *SpeakerCues) Reset() {
	c.emit(beep.Seq(
		tone(880, resetDuration/2, WaveSine, sampleRate),
		gap(noteGap, sampleRate),
		tone(587, resetDuration/2, WaveSine, sampleRate),
	))
}

// Switch is a rising fifth
func (c *SpeakerCues) Switch() {
	c.emit(beep.Seq(
		tone(440, switchDuration/2, WaveSine, sampleRate),
		tone(660, switchDuration/2, WaveSine, sampleRate),
	))
}

// Close silences the mixer, later cues are dropped
func (c *SpeakerCues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.stop != nil {
		c.stop()
	}
	c.mixer.Clear()
}
