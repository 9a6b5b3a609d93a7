package entity

// SpeedMultiplier scales the player's speed into a per-frame step.
const SpeedMultiplier = 2.0

// Controls is the directional input consumed by Move.
type Controls struct {
	Left  bool
	Right bool
}

// Move applies held directions to the sprite's x position and picks the row.
// Holding both directions applies both steps; the right row wins.
// There is no clamping to the screen edges.
func Move(s *Sprite, c Controls) {
	step := s.Speed * SpeedMultiplier

	if c.Left {
		s.Pos[0] -= step
		s.Row = AnimMovingLeft
	}
	if c.Right {
		s.Pos[0] += step
		s.Row = AnimMovingRight
	}
	if !c.Left && !c.Right {
		s.Row = AnimIdle
	}
}
