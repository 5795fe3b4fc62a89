// Package sightmesh builds radial visibility meshes for 2D worlds.
//
// # Overview
//
// sightmesh samples a field of view by sweeping a fan of bounded rays at a
// fixed angular increment, asks an obstruction probe for the nearest blocking
// point along each ray, and triangulates the resulting point fan into a
// vertex/index buffer. The output is plain geometry in the mesh owner's local
// coordinate frame; rendering, physics, and entity lifecycles are the host's
// concern.
//
// # Quick Start
//
//	import "github.com/gosight/sightmesh"
//
//	params := sightmesh.Params{
//	    Origin:      sightmesh.V2(0, 0),
//	    Forward:     sightmesh.V2(1, 0),
//	    ArcDegrees:  90,
//	    StepDegrees: 5,
//	    Radius:      500,
//	}
//
//	b, err := sightmesh.NewBuilder(params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Once per frame:
//	mesh, err := b.Update(probe) // probe implements ObstructionProbe
//
// # Architecture
//
// The library is organized into:
//   - Public API: Params, Builder, Mesh, ObstructionProbe, MeshSink
//   - world/: a segment-based obstruction scene with YAML loading
//   - stream/: a websocket sink that broadcasts meshes to remote viewers
//   - cmd/: interactive demo (sightdemo) and headless server (sightsrv)
//
// # Coordinate System
//
// All geometry is planar. Angles follow the usual mathematical convention:
// radians internally, 0 along +X, increasing counter-clockwise. Fan
// configuration uses degrees, matching how fields of view are specified in
// practice. Mesh vertices are expressed in the owner's local frame: vertex 0
// is always the local origin, and the owner's forward direction maps to the
// local +X axis.
//
// # Concurrency
//
// A Builder is NOT safe for concurrent use: Update mutates internal staging
// buffers in place. Call it from the goroutine that owns the frame loop.
// Sinks that fan out to other goroutines (see stream/) synchronize on their
// side of the boundary.
package sightmesh

// Version is the current version of the library.
const Version = "0.1.0"
