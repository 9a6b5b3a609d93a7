package entity

import "time"

// FPS is the sprite sheet playback rate, independent of the render rate.
const FPS = 12

// FrameInterval is the minimum time between two frame advances.
const FrameInterval = time.Second / FPS

// Animate advances the frame column when at least FrameInterval has passed
// since the last advance. now is the time since the game clock started.
// The row is left alone; movement sets it.
func (s *Sprite) Animate(now time.Duration) {
	if now-s.lastAdvance < FrameInterval {
		return
	}
	s.Frame = (s.Frame + 1) % s.Cols
	s.lastAdvance = now
}
