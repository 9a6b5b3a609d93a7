package debug

import "github.com/go-gl/mathgl/mgl32"

// Overlay colors for collision boxes.
var (
	PlayerBoxColor = mgl32.Vec4{0, 1, 0, 1}
	ItemBoxColor   = mgl32.Vec4{1, 0, 1, 1}
)

// OutlineVertices returns a closed line loop around the rectangle [min, max],
// four xyz vertices counter-clockwise from the bottom-left corner.
func OutlineVertices(min, max mgl32.Vec2) []float32 {
	return []float32{
		min.X(), min.Y(), 0,
		max.X(), min.Y(), 0,
		max.X(), max.Y(), 0,
		min.X(), max.Y(), 0,
	}
}
