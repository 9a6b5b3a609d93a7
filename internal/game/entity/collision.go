package entity

// ComputeAABB refreshes Min and Max from the current position and frame size.
// Z is ignored.
func (s *Sprite) ComputeAABB() {
	hw := s.Size.X() / 2
	hh := s.Size.Y() / 2
	s.Min[0] = s.Pos.X() - hw
	s.Min[1] = s.Pos.Y() - hh
	s.Max[0] = s.Pos.X() + hw
	s.Max[1] = s.Pos.Y() + hh
}

// Overlaps reports whether the AABBs of a and b intersect.
// Touching edges count as overlap. Both boxes must have been computed this frame.
func Overlaps(a, b *Sprite) bool {
	collisionX := a.Max.X() >= b.Min.X() && b.Max.X() >= a.Min.X()
	collisionY := a.Max.Y() >= b.Min.Y() && b.Max.Y() >= a.Min.Y()
	return collisionX && collisionY
}
