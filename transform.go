package sightmesh

// Transform is the rigid 2D world transform of a mesh owner: a position and
// a heading angle in radians. It carries no scale or shear, so the inverse
// is a rotation by -Heading after removing the translation.
type Transform struct {
	Pos     Vec2
	Heading float64
}

// TransformAt derives the owner transform from a world position and a
// forward direction. A zero forward vector yields a zero heading.
func TransformAt(pos, forward Vec2) Transform {
	var heading float64
	if !forward.IsZero() {
		heading = forward.Atan2()
	}
	return Transform{Pos: pos, Heading: heading}
}

// ToLocal converts a world-space point into the owner's local frame.
// The owner sits at the local origin with its forward direction along +X.
func (t Transform) ToLocal(world Vec2) Vec2 {
	return world.Sub(t.Pos).Rotate(-t.Heading)
}

// ToWorld converts a local-frame point back into world space.
func (t Transform) ToWorld(local Vec2) Vec2 {
	return local.Rotate(t.Heading).Add(t.Pos)
}
