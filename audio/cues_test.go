package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	samples := drain(NewOscillator(100, 250*time.Millisecond, WaveSine, rate))

	if len(samples) != 250 {
		t.Errorf("Expected 250 samples, got %d", len(samples))
	}
}

func TestSquareWaveLevels(t *testing.T) {
	rate := beep.SampleRate(1000)
	for i, s := range drain(NewOscillator(10, 100*time.Millisecond, WaveSquare, rate)) {
		if math.Abs(s[0]) != 1 || s[0] != s[1] {
			t.Fatalf("sample %d: expected +-1 on both channels, got %v", i, s)
		}
	}
}

func TestEnvelopeBounds(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	samples := drain(NewEnvelope(NewOscillator(50, d, WaveSquare, rate), d, 10*time.Millisecond, 20*time.Millisecond, rate))

	if samples[0][0] != 0 {
		t.Errorf("Expected attack to start silent, got %v", samples[0][0])
	}
	if got := math.Abs(samples[50][0]); got != 1 {
		t.Errorf("Expected full level in sustain, got %v", got)
	}
	last := samples[len(samples)-1][0]
	if math.Abs(last) > 0.1 {
		t.Errorf("Expected release to fade near zero, got %v", last)
	}
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := 50 * time.Millisecond

	tests := []struct {
		name string
		wave WaveType
		freq float64
	}{
		{"generated sine", WaveSine, 440},
		{"square", WaveSquare, 440},
		{"sine above nyquist falls back", WaveSine, 6000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := drain(tone(tt.freq, d, tt.wave, rate))
			if len(samples) != rate.N(d) {
				t.Errorf("Expected %d samples, got %d", rate.N(d), len(samples))
			}
			for i, s := range samples {
				if math.Abs(s[0]) > 1 {
					t.Fatalf("sample %d: expected level within [-1,1], got %v", i, s[0])
				}
			}
		})
	}

	if n := len(drain(gap(d, rate))); n != rate.N(d) {
		t.Errorf("Expected gap of %d samples, got %d", rate.N(d), n)
	}
}

func TestCuesPlayUntilClosed(t *testing.T) {
	var played []beep.Streamer
	c := newCues(0.5, func(s beep.Streamer) { played = append(played, s) })

	c.Step()
	c.Reset()
	c.Switch()
	if len(played) != 3 {
		t.Fatalf("Expected 3 cues, got %d", len(played))
	}
	for i, s := range played {
		if len(drain(s)) == 0 {
			t.Errorf("cue %d: expected samples", i)
		}
	}

	c.Close()
	c.Close()
	c.Step()
	if len(played) != 3 {
		t.Error("Expected cues after Close to be dropped")
	}
}

func TestNopSatisfiesCues(t *testing.T) {
	var c Cues = Nop{}
	c.Step()
	c.Reset()
	c.Switch()
	c.Close()
}
