// Package audio plays synthesized sound cues for game events.
package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the sample rate cues are rendered at.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned by Play before Init succeeded.
var ErrNotInitialized = errors.New("audio not initialized")

// Manager mixes cues onto the speaker.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	muted       bool

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	sfxVolume    float64

	cues  [cueCount]samples
	mixer *beep.Mixer
}

// New creates a manager with every cue rendered up front.
func New() *Manager {
	m := &Manager{
		masterVolume: 1.0,
		sfxVolume:    1.0,
		mixer:        &beep.Mixer{},
	}
	for c := Cue(0); c < cueCount; c++ {
		m.cues[c] = synthesize(c)
	}
	return m
}

// Init opens the audio device.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(DefaultSampleRate, DefaultSampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Close stops playback and releases the device.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized returns whether the audio device is open.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMuted silences all cues without closing the device.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
}

// SetSFXVolume sets the effect volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVolume = clamp(vol, 0, 1)
}

// MasterVolume returns the master volume.
func (m *Manager) MasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// SFXVolume returns the effect volume.
func (m *Manager) SFXVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sfxVolume
}

// Play queues a cue on the mixer. Muted or silent cues are dropped.
func (m *Manager) Play(c Cue) error {
	if c < 0 || c >= cueCount {
		return fmt.Errorf("unknown cue %d", c)
	}

	m.mu.RLock()
	initialized := m.initialized
	vol := m.masterVolume * m.sfxVolume
	muted := m.muted
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}
	if muted || vol <= 0 {
		return nil
	}

	s := &effects.Volume{
		Streamer: &streamer{buf: m.cues[c]},
		Base:     10,
		Volume:   volumeToDb(vol) / 20,
	}

	// Mixer is read on the speaker goroutine.
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// volumeToDb converts a 0-1 volume to decibels: 1 is 0dB, 0.5 about -6dB.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return 20 * math.Log10(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
