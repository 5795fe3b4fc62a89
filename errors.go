package sightmesh

import "errors"

// Sentinel errors returned by the builder. Wrapped errors carry detail;
// match with errors.Is.
var (
	// ErrInvalidConfig reports fan parameters that cannot produce a mesh:
	// a non-positive step, arc, or radius, an arc above 360 degrees, a step
	// wider than the arc, or a zero forward direction.
	ErrInvalidConfig = errors.New("sightmesh: invalid fan configuration")

	// ErrProbe reports that the obstruction probe failed during an update.
	// The previously committed mesh is left untouched.
	ErrProbe = errors.New("sightmesh: obstruction probe failed")

	// ErrSink reports that the mesh sink rejected a submission. The rebuilt
	// mesh is still committed; only delivery failed.
	ErrSink = errors.New("sightmesh: mesh sink rejected submission")
)
