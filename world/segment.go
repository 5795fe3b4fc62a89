package world

import "github.com/gosight/sightmesh"

// Segment is a single wall: a line segment that blocks visibility.
type Segment struct {
	A, B sightmesh.Vec2
}

// Seg is a convenience function to create a Segment from coordinates.
func Seg(ax, ay, bx, by float64) Segment {
	return Segment{A: sightmesh.V2(ax, ay), B: sightmesh.V2(bx, by)}
}

// intersect reports where the ray segment from->to crosses the wall.
// t is the parametric position along from->to. Only crossings strictly
// between the ray endpoints count (0 < t < 1); a ray that merely grazes its
// own endpoint on a wall is treated as unobstructed. Parallel and collinear
// segments never intersect, which keeps the query deterministic when a ray
// runs along a wall.
func (s Segment) intersect(from, to sightmesh.Vec2) (point sightmesh.Vec2, t float64, ok bool) {
	d := to.Sub(from)
	e := s.B.Sub(s.A)
	denom := d.Cross(e)
	if denom == 0 {
		return sightmesh.Vec2{}, 0, false
	}
	ao := s.A.Sub(from)
	t = ao.Cross(e) / denom
	u := ao.Cross(d) / denom
	if t <= 0 || t >= 1 || u < 0 || u > 1 {
		return sightmesh.Vec2{}, 0, false
	}
	return from.Add(d.Mul(t)), t, true
}
