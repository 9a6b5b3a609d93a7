package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func box(x, y, w, h float32) *Sprite {
	s := &Sprite{Pos: mgl32.Vec3{x, y, 0}, Size: mgl32.Vec3{w, h, 1}}
	s.ComputeAABB()
	return s
}

func TestComputeAABB(t *testing.T) {
	tests := []struct {
		name     string
		pos      mgl32.Vec3
		size     mgl32.Vec3
		min, max mgl32.Vec2
	}{
		{"positive pos, positive size", mgl32.Vec3{10, 20, 5}, mgl32.Vec3{4, 6, 1}, mgl32.Vec2{8, 17}, mgl32.Vec2{12, 23}},
		{"negative pos, positive size", mgl32.Vec3{-10, -20, 0}, mgl32.Vec3{4, 6, 1}, mgl32.Vec2{-12, -23}, mgl32.Vec2{-8, -17}},
		{"positive pos, negative size", mgl32.Vec3{10, 20, 0}, mgl32.Vec3{-4, -6, 1}, mgl32.Vec2{12, 23}, mgl32.Vec2{8, 17}},
		{"negative pos, negative size", mgl32.Vec3{-10, -20, 0}, mgl32.Vec3{-4, -6, 1}, mgl32.Vec2{-8, -17}, mgl32.Vec2{-12, -23}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Sprite{Pos: tt.pos, Size: tt.size}
			s.ComputeAABB()
			if s.Min != tt.min {
				t.Errorf("Min = %v, want %v", s.Min, tt.min)
			}
			if s.Max != tt.max {
				t.Errorf("Max = %v, want %v", s.Max, tt.max)
			}
		})
	}
}

func TestComputeAABBTracksMovement(t *testing.T) {
	s := box(0, 0, 10, 10)
	s.Pos[0] = 100
	s.ComputeAABB()
	if s.Min.X() != 95 || s.Max.X() != 105 {
		t.Errorf("AABB x = [%v, %v], want [95, 105]", s.Min.X(), s.Max.X())
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b *Sprite
		want bool
	}{
		{"overlapping", box(0, 0, 10, 10), box(5, 5, 10, 10), true},
		{"separated on x", box(0, 0, 10, 10), box(20, 0, 10, 10), false},
		{"separated on y", box(0, 0, 10, 10), box(0, 20, 10, 10), false},
		{"edges touch on x", box(0, 0, 10, 10), box(10, 0, 10, 10), true},
		{"edges touch on y", box(0, 0, 10, 10), box(0, 10, 10, 10), true},
		{"corners touch", box(0, 0, 10, 10), box(10, 10, 10, 10), true},
		{"contained", box(0, 0, 100, 100), box(0, 0, 2, 2), true},
		{"overlap on x only", box(0, 0, 10, 10), box(2, 50, 10, 10), false},
		{"zero size inside", box(0, 0, 10, 10), box(1, 1, 0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlapsExactBoundary(t *testing.T) {
	a := box(0, 0, 10, 10)
	b := box(10, 0, 10, 10)
	if a.Max.X() != b.Min.X() {
		t.Fatalf("setup: a.Max.X = %v, b.Min.X = %v", a.Max.X(), b.Min.X())
	}
	if !Overlaps(a, b) {
		t.Error("touching edges should overlap")
	}
}
