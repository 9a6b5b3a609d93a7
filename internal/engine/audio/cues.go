package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
)

// Cue identifies a synthesized sound effect.
type Cue int

const (
	CueCollect Cue = iota // common item caught
	CueSpecial            // special item caught
	CueShield             // shield restored
	CueDamage             // item hit the ground
	CueGameOver
	cueCount
)

// String returns the cue name used in log fields.
func (c Cue) String() string {
	switch c {
	case CueCollect:
		return "collect"
	case CueSpecial:
		return "special"
	case CueShield:
		return "shield"
	case CueDamage:
		return "damage"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
)

// samples is mono audio at unity gain.
type samples []float64

func oscillator(wave int, freq float64, n int) samples {
	buf := make(samples, n)
	phase := 0.0
	inc := freq / float64(DefaultSampleRate)

	for i := range buf {
		switch wave {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1
			} else {
				buf[i] = -1
			}
		case waveSaw:
			buf[i] = 2 * (phase - 0.5)
		}
		phase += inc
		if phase >= 1 {
			phase--
		}
	}
	return buf
}

// envelope applies a linear attack and release in place.
func envelope(buf samples, attack, release time.Duration) {
	total := len(buf)
	a := DefaultSampleRate.N(attack)
	r := DefaultSampleRate.N(release)

	releaseStart := total - r
	if releaseStart < a {
		releaseStart = a
	}

	for i := range buf {
		vol := 1.0
		if i < a && a > 0 {
			vol = float64(i) / float64(a)
		} else if i >= releaseStart && r > 0 {
			vol = float64(total-i) / float64(r)
		}
		buf[i] *= vol
	}
}

// tone renders one enveloped note.
func tone(wave int, freq float64, d, attack, release time.Duration) samples {
	buf := oscillator(wave, freq, DefaultSampleRate.N(d))
	envelope(buf, attack, release)
	return buf
}

// blend mixes a and b with weights summing to at most 1.
func blend(a, b samples, wa, wb float64) samples {
	n := max(len(a), len(b))
	out := make(samples, n)
	for i := range out {
		if i < len(a) {
			out[i] += a[i] * wa
		}
		if i < len(b) {
			out[i] += b[i] * wb
		}
	}
	return out
}

func sequence(parts ...samples) samples {
	var out samples
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

const (
	attack  = 5 * time.Millisecond
	release = 40 * time.Millisecond
)

// synthesize renders the samples for a cue.
func synthesize(c Cue) samples {
	switch c {
	case CueCollect:
		// B5 then E6
		return sequence(
			tone(waveSquare, 987.77, 60*time.Millisecond, attack, 20*time.Millisecond),
			tone(waveSquare, 1318.51, 120*time.Millisecond, attack, 80*time.Millisecond),
		)
	case CueSpecial:
		// C6 E6 G6 arpeggio
		return sequence(
			tone(waveSquare, 1046.50, 70*time.Millisecond, attack, 20*time.Millisecond),
			tone(waveSquare, 1318.51, 70*time.Millisecond, attack, 20*time.Millisecond),
			tone(waveSquare, 1567.98, 160*time.Millisecond, attack, 120*time.Millisecond),
		)
	case CueShield:
		fund := tone(waveSine, 660, 400*time.Millisecond, attack, 350*time.Millisecond)
		over := tone(waveSine, 1320, 400*time.Millisecond, attack, 200*time.Millisecond)
		return blend(fund, over, 0.7, 0.3)
	case CueDamage:
		return tone(waveSaw, 110, 200*time.Millisecond, attack, 150*time.Millisecond)
	case CueGameOver:
		// G4 E4 C4 descending
		return sequence(
			tone(waveSaw, 392.00, 250*time.Millisecond, attack, release),
			tone(waveSaw, 329.63, 250*time.Millisecond, attack, release),
			tone(waveSaw, 261.63, 600*time.Millisecond, attack, 450*time.Millisecond),
		)
	default:
		return nil
	}
}

// streamer plays mono samples on both channels.
type streamer struct {
	buf samples
	pos int
}

func (s *streamer) Stream(out [][2]float64) (int, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	n := fillStereo(out, s.buf[s.pos:])
	s.pos += n
	return n, true
}

func (s *streamer) Err() error { return nil }

func fillStereo(out [][2]float64, in samples) int {
	n := min(len(out), len(in))
	for i := 0; i < n; i++ {
		out[i][0] = in[i]
		out[i][1] = in[i]
	}
	return n
}

var _ beep.Streamer = (*streamer)(nil)
