// Package entity implements the sprite record shared by the player, the background and items.
package entity

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// AnimState is the sprite sheet row currently shown.
type AnimState uint8

const (
	AnimStatic AnimState = iota // single-row sheets (background, items)
	AnimIdle
	AnimMovingLeft
	AnimMovingRight
)

// String returns a short name used in log fields.
func (a AnimState) String() string {
	switch a {
	case AnimStatic:
		return "static"
	case AnimIdle:
		return "idle"
	case AnimMovingLeft:
		return "moving_left"
	case AnimMovingRight:
		return "moving_right"
	default:
		return "unknown"
	}
}

// DefaultSpeed is the speed given to sprites created without one.
const DefaultSpeed = 1.5

// QuadAllocator creates the GPU geometry backing a sprite.
// The quad samples the first cell of the sheet: texture coordinates span [0,ds]×[0,dt].
type QuadAllocator interface {
	AllocQuad(ds, dt float32) uint32
}

// Config describes a sprite to create.
type Config struct {
	Texture  uint32
	RawSize  mgl32.Vec3 // full sheet size in world units
	Position mgl32.Vec3
	Rows     int // animation rows, defaults to 1
	Cols     int // frame columns, defaults to 1
	Speed    float32
	Angle    float32 // degrees
}

// Sprite is a renderable, animated, movable and collidable object.
type Sprite struct {
	VAO     uint32
	Texture uint32

	Pos   mgl32.Vec3 // z only orders drawing
	Size  mgl32.Vec3 // size of one frame
	Angle float32

	// Sheet layout
	Rows  int
	Cols  int
	Row   AnimState
	Frame int
	DS    float32 // 1/Cols
	DT    float32 // 1/Rows

	Speed float32

	// AABB corners, recomputed every frame by ComputeAABB.
	Min mgl32.Vec2
	Max mgl32.Vec2

	lastAdvance time.Duration
}

// New creates a sprite and allocates its geometry through alloc.
// A nil alloc leaves VAO at zero, which is what headless code and tests use.
func New(alloc QuadAllocator, cfg Config) *Sprite {
	rows, cols := cfg.Rows, cfg.Cols
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	speed := cfg.Speed
	if speed == 0 {
		speed = DefaultSpeed
	}

	s := &Sprite{
		Texture: cfg.Texture,
		Pos:     cfg.Position,
		Size: mgl32.Vec3{
			cfg.RawSize.X() / float32(cols),
			cfg.RawSize.Y() / float32(rows),
			cfg.RawSize.Z(),
		},
		Angle: cfg.Angle,
		Rows:  rows,
		Cols:  cols,
		DS:    1.0 / float32(cols),
		DT:    1.0 / float32(rows),
		Speed: speed,
	}

	if alloc != nil {
		s.VAO = alloc.AllocQuad(s.DS, s.DT)
	}
	return s
}

// TexOffset returns the texture-space offset of the current frame and row.
func (s *Sprite) TexOffset() mgl32.Vec2 {
	return mgl32.Vec2{float32(s.Frame) * s.DS, float32(s.Row) * s.DT}
}
