package sightmesh

import (
	"fmt"
	"math"
)

// maxSamples bounds the fan so that every vertex index fits in a uint16,
// the index width GPU-facing consumers expect.
const maxSamples = math.MaxUint16 - 1

// Params configures the sample fan. All fields are read by the builder and
// never written; treat a Params value as plain configuration data.
//
// ArcDegrees of exactly 360 selects the closed-fan case: the triangulation
// adds a wrap triangle joining the last sample back to the first.
type Params struct {
	// Origin is the world position the rays are cast from.
	Origin Vec2

	// Forward is the direction the fan is centered on. It does not need to
	// be pre-normalized; the builder normalizes it on use.
	Forward Vec2

	// ArcDegrees is the total angular width of the fan, in (0, 360].
	ArcDegrees float64

	// StepDegrees is the angular distance between neighboring rays.
	// Must be positive and no wider than ArcDegrees.
	StepDegrees float64

	// Radius is the maximum ray length. Samples with no obstruction within
	// Radius land on the unobstructed endpoint.
	Radius float64
}

// Validate reports whether the parameters can produce a mesh.
// All violations wrap ErrInvalidConfig.
func (p Params) Validate() error {
	if p.StepDegrees <= 0 {
		return fmt.Errorf("%w: step %g degrees, must be positive", ErrInvalidConfig, p.StepDegrees)
	}
	if p.ArcDegrees <= 0 || p.ArcDegrees > 360 {
		return fmt.Errorf("%w: arc %g degrees, must be in (0, 360]", ErrInvalidConfig, p.ArcDegrees)
	}
	if p.StepDegrees > p.ArcDegrees {
		return fmt.Errorf("%w: step %g degrees wider than arc %g degrees", ErrInvalidConfig, p.StepDegrees, p.ArcDegrees)
	}
	if p.Radius <= 0 {
		return fmt.Errorf("%w: radius %g, must be positive", ErrInvalidConfig, p.Radius)
	}
	if p.Forward.IsZero() {
		return fmt.Errorf("%w: forward direction is the zero vector", ErrInvalidConfig)
	}
	if n := p.SampleCount(); n > maxSamples {
		return fmt.Errorf("%w: %d samples exceed the uint16 index range", ErrInvalidConfig, n)
	}
	return nil
}

// SampleCount returns the number of rays the fan casts: one per step across
// the arc, including both extreme angles.
func (p Params) SampleCount() int {
	return int(math.Round(p.ArcDegrees/p.StepDegrees)) + 1
}

// Closed reports whether the fan spans the full circle.
func (p Params) Closed() bool {
	return p.ArcDegrees == 360
}

// transform returns the owner transform the mesh is expressed relative to.
func (p Params) transform() Transform {
	return TransformAt(p.Origin, p.Forward)
}
