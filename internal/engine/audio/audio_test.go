package audio

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestVolumeConversion(t *testing.T) {
	tests := []struct {
		vol float64
		min float64
		max float64
	}{
		{1.0, -1, 1},     // Full volume should be ~0dB
		{0.5, -8, -4},    // Half volume should be around -6dB
		{0.25, -14, -10}, // Quarter volume should be around -12dB
		{0.0, -200, -90}, // Zero volume should be very negative
	}

	for _, tt := range tests {
		db := volumeToDb(tt.vol)
		if db < tt.min || db > tt.max {
			t.Errorf("volumeToDb(%f) = %f, want between %f and %f", tt.vol, db, tt.min, tt.max)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestSetVolume(t *testing.T) {
	m := New()

	if m.MasterVolume() != 1.0 || m.SFXVolume() != 1.0 {
		t.Fatalf("default volumes = %f/%f, want 1/1", m.MasterVolume(), m.SFXVolume())
	}

	m.SetMasterVolume(0.5)
	if m.MasterVolume() != 0.5 {
		t.Errorf("master volume = %f, want 0.5", m.MasterVolume())
	}
	m.SetMasterVolume(2.0)
	if m.MasterVolume() != 1.0 {
		t.Errorf("master volume = %f, want 1.0 (clamped)", m.MasterVolume())
	}
	m.SetSFXVolume(-1.0)
	if m.SFXVolume() != 0.0 {
		t.Errorf("sfx volume = %f, want 0.0 (clamped)", m.SFXVolume())
	}
}

func TestCuesRendered(t *testing.T) {
	m := New()

	for c := Cue(0); c < cueCount; c++ {
		t.Run(c.String(), func(t *testing.T) {
			buf := m.cues[c]
			if len(buf) == 0 {
				t.Fatal("cue has no samples")
			}
			peak := 0.0
			for i, v := range buf {
				if math.IsNaN(v) || v < -1 || v > 1 {
					t.Fatalf("sample %d = %f, outside [-1,1]", i, v)
				}
				peak = math.Max(peak, math.Abs(v))
			}
			if peak == 0 {
				t.Error("cue is silent")
			}
		})
	}
}

func TestEnvelopeEndsQuiet(t *testing.T) {
	buf := tone(waveSquare, 440, 100*time.Millisecond, attack, release)
	if buf[0] != 0 {
		t.Errorf("first sample = %f, want 0 at start of attack", buf[0])
	}
	if last := math.Abs(buf[len(buf)-1]); last > 0.01 {
		t.Errorf("last sample = %f, want near 0 at end of release", last)
	}
}

func TestStreamerDuplicatesChannels(t *testing.T) {
	s := &streamer{buf: samples{0.1, -0.2, 0.3}}
	out := make([][2]float64, 2)

	n, ok := s.Stream(out)
	if n != 2 || !ok {
		t.Fatalf("Stream() = %d, %v; want 2, true", n, ok)
	}
	if out[1] != [2]float64{-0.2, -0.2} {
		t.Errorf("out[1] = %v, want both channels -0.2", out[1])
	}

	n, ok = s.Stream(out)
	if n != 1 || !ok {
		t.Errorf("second Stream() = %d, %v; want 1, true", n, ok)
	}
	if _, ok = s.Stream(out); ok {
		t.Error("Stream() reported ok after the buffer was drained")
	}
}

func TestPlayBeforeInit(t *testing.T) {
	m := New()
	if err := m.Play(CueCollect); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Play() error = %v, want ErrNotInitialized", err)
	}
	if err := m.Play(Cue(99)); err == nil {
		t.Error("Play() of unknown cue returned nil error")
	}
}
