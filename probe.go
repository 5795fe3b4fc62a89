package sightmesh

// Hit reports the nearest blocking point found along a probed segment.
type Hit struct {
	// Point is the world-space position of the obstruction, strictly between
	// the probe's endpoints.
	Point Vec2
}

// ObstructionProbe answers nearest-obstruction queries along a segment.
//
// Probe must be deterministic and synchronous: given the same segment and the
// same world it reports the same result, and it returns within the caller's
// frame budget (it is a geometric intersection test, not I/O). A nil Hit with
// a nil error means the segment is unobstructed.
type ObstructionProbe interface {
	Probe(from, to Vec2) (*Hit, error)
}

// ProbeFunc adapts a plain function to the ObstructionProbe interface.
type ProbeFunc func(from, to Vec2) (*Hit, error)

// Probe calls f.
func (f ProbeFunc) Probe(from, to Vec2) (*Hit, error) {
	return f(from, to)
}

// Unobstructed is a probe that never reports a hit. The builder substitutes
// it when Update is called with a nil probe.
var Unobstructed ObstructionProbe = ProbeFunc(func(Vec2, Vec2) (*Hit, error) {
	return nil, nil
})

// Sample is the world-space result of one ray in the most recent pass.
// Exposed for diagnostics and HUD overlays; the mesh itself stores the
// local-frame equivalent.
type Sample struct {
	// Direction is the unit direction the ray was cast along.
	Direction Vec2

	// Point is the chosen endpoint: the obstruction if one was reported,
	// otherwise the unobstructed endpoint at full radius.
	Point Vec2

	// Blocked reports whether the probe found an obstruction.
	Blocked bool
}
