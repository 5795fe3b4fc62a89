// Package world provides a segment-based obstruction scene for sightmesh.
//
// A Scene is a flat collection of wall segments. Its Probe method implements
// sightmesh.ObstructionProbe with a nearest-crossing query, so a Scene can be
// handed straight to Builder.Update. Scenes can be assembled in code or
// loaded from a YAML file (see Load).
package world

import "github.com/gosight/sightmesh"

// Scene is a set of wall segments that block visibility.
//
// A Scene is safe for concurrent reads (Probe, Segments) once assembly is
// done; Add and AddRect are not synchronized with readers.
type Scene struct {
	walls []Segment
}

// New creates a scene from an initial set of walls.
func New(walls ...Segment) *Scene {
	s := &Scene{}
	s.Add(walls...)
	return s
}

// Add appends wall segments to the scene. Zero-length segments are dropped;
// they cannot block anything and would only add degenerate intersection
// candidates.
func (s *Scene) Add(walls ...Segment) {
	for _, w := range walls {
		if w.A == w.B {
			continue
		}
		s.walls = append(s.walls, w)
	}
}

// AddRect adds the four walls of an axis-aligned rectangular block, the
// common building shape in top-down maps.
func (s *Scene) AddRect(x, y, w, h float64) {
	s.Add(
		Seg(x, y, x+w, y),
		Seg(x+w, y, x+w, y+h),
		Seg(x+w, y+h, x, y+h),
		Seg(x, y+h, x, y),
	)
}

// Segments returns the scene's walls. The returned slice is the scene's own
// storage; callers must not modify it.
func (s *Scene) Segments() []Segment {
	return s.walls
}

// Probe returns the wall crossing nearest to from along the segment from->to,
// or nil if no wall blocks it. Ties between walls crossing at the same point
// resolve to the wall added first, keeping the query deterministic.
//
// Probe implements sightmesh.ObstructionProbe and never returns an error.
func (s *Scene) Probe(from, to sightmesh.Vec2) (*sightmesh.Hit, error) {
	var (
		nearest sightmesh.Vec2
		bestT   float64
		found   bool
	)
	for _, w := range s.walls {
		point, t, ok := w.intersect(from, to)
		if !ok {
			continue
		}
		if !found || t < bestT {
			nearest = point
			bestT = t
			found = true
		}
	}
	if !found {
		return nil, nil
	}
	return &sightmesh.Hit{Point: nearest}, nil
}
