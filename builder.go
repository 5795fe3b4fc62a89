package sightmesh

import (
	"fmt"
	"log/slog"
	"math"
)

const degToRad = math.Pi / 180

// Builder turns a fan configuration plus a per-ray obstruction query into a
// triangulated visibility mesh in the owner's local frame.
//
// A Builder is created fully initialized: construction runs a probe-free pass
// that places every sample at full radius, so the sink never sees degenerate
// geometry before the first real update. Each Update then rebuilds the mesh
// wholesale; nothing is patched incrementally.
//
// Changing the arc, step, or radius resizes the vertex and index buffers, so
// the only supported way to apply such a change is Reconfigure, which
// revalidates and reinitializes. Per-frame pose changes (origin and forward)
// do not affect buffer sizes and go through SetPose.
//
// A Builder is not safe for concurrent use. Update either commits a complete
// mesh or leaves the previous one untouched; a failed pass never publishes
// partially written buffers.
type Builder struct {
	params Params
	sink   MeshSink
	log    *slog.Logger

	mesh    *Mesh    // last committed mesh
	samples []Sample // ray results of the last committed pass

	// Staging buffers, reused across passes. Only commit publishes their
	// contents; a failed pass leaves the committed state untouched.
	stageV []Vec2
	stageI []uint16
	stageS []Sample
}

// NewBuilder validates params, sizes the buffers, and runs the initial
// probe-free pass. The resulting fully-open mesh is committed and submitted
// to the sink before NewBuilder returns.
//
// Returns an error wrapping ErrInvalidConfig if params cannot produce a
// mesh, or ErrSink if the sink rejects the initial submission.
func NewBuilder(params Params, opts ...Option) (*Builder, error) {
	b := &Builder{
		sink: Discard,
		log:  Logger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.reinit(params); err != nil {
		return nil, err
	}
	return b, nil
}

// Update runs one visibility pass: it sweeps the fan, asks probe for the
// nearest obstruction along each ray, rebuilds the mesh, commits it, and
// submits it to the sink.
//
// A nil probe is treated as Unobstructed. If the probe fails, Update returns
// an error wrapping ErrProbe and the previously committed mesh is retained
// unchanged; the sink is not called. If the sink fails, the rebuilt mesh is
// still committed and returned alongside an error wrapping ErrSink.
func (b *Builder) Update(probe ObstructionProbe) (*Mesh, error) {
	if probe == nil {
		probe = Unobstructed
	}
	if err := b.sweep(probe); err != nil {
		return nil, err
	}
	return b.commit()
}

// Reconfigure replaces the fan parameters, resizes the buffers, and re-runs
// the initial probe-free pass. This is the only supported way to change the
// arc, step, or radius after construction; mutating a copy of Params and
// expecting the old buffers to fit is not.
//
// If params fail validation the previous configuration and mesh remain in
// effect.
func (b *Builder) Reconfigure(params Params) error {
	return b.reinit(params)
}

// SetPose updates the owner's world position and forward direction for
// subsequent passes. Pose changes do not resize buffers, so unlike
// Reconfigure this never re-runs initialization.
func (b *Builder) SetPose(origin, forward Vec2) error {
	if forward.IsZero() {
		return fmt.Errorf("%w: forward direction is the zero vector", ErrInvalidConfig)
	}
	b.params.Origin = origin
	b.params.Forward = forward
	return nil
}

// Mesh returns the last committed mesh. The returned mesh is a snapshot;
// the builder never mutates it after commit.
func (b *Builder) Mesh() *Mesh {
	return b.mesh
}

// Params returns the current fan configuration.
func (b *Builder) Params() Params {
	return b.params
}

// Samples returns the world-space ray results of the last committed pass,
// ordered from the highest sweep angle to the lowest. The slice is reused
// by the next commit; copy it if it needs to outlive the frame.
func (b *Builder) Samples() []Sample {
	return b.samples
}

// reinit validates and installs params, resizes the staging buffers, and
// runs the probe-free initialization pass.
func (b *Builder) reinit(params Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	b.params = params
	n := params.SampleCount()
	b.samples = make([]Sample, n)
	b.stageS = make([]Sample, n)
	b.stageV = make([]Vec2, 0, n+1)
	b.stageI = make([]uint16, 0, 3*n)

	// The initialization pass never consults a real probe; every sample
	// lands on the unobstructed endpoint, so the sweep cannot fail.
	if err := b.sweep(Unobstructed); err != nil {
		return err
	}
	if _, err := b.commit(); err != nil {
		return err
	}
	b.log.Info("fan configured",
		"samples", n,
		"arc_degrees", params.ArcDegrees,
		"step_degrees", params.StepDegrees,
		"radius", params.Radius,
		"closed", params.Closed(),
	)
	return nil
}

// sweep runs one sampling pass into the staging buffers. The sweep walks
// from +arc/2 down to -arc/2; the direction is fixed so the triangle winding
// never flips between frames.
func (b *Builder) sweep(probe ObstructionProbe) error {
	p := b.params
	n := p.SampleCount()
	forward := p.Forward.Normalize()
	half := p.ArcDegrees / 2 * degToRad
	step := p.StepDegrees * degToRad
	owner := p.transform()

	b.stageV = b.stageV[:0]
	b.stageV = append(b.stageV, Vec2{}) // vertex 0: the local origin

	blocked := 0
	for i := 0; i < n; i++ {
		dir := forward.Rotate(half - float64(i)*step)
		end := p.Origin.Add(dir.Mul(p.Radius))
		hit, err := probe.Probe(p.Origin, end)
		if err != nil {
			return fmt.Errorf("%w: sample %d of %d: %w", ErrProbe, i, n, err)
		}
		point := end
		if hit != nil {
			point = hit.Point
			blocked++
		}
		b.stageS[i] = Sample{Direction: dir, Point: point, Blocked: hit != nil}
		b.stageV = append(b.stageV, owner.ToLocal(point))
	}

	b.stageI = appendFanIndices(b.stageI[:0], n, p.Closed())
	b.log.Debug("visibility pass complete", "samples", n, "blocked", blocked)
	return nil
}

// commit publishes the staging buffers as a fresh mesh snapshot and submits
// it to the sink.
func (b *Builder) commit() (*Mesh, error) {
	m := &Mesh{
		Vertices: append([]Vec2(nil), b.stageV...),
		Indices:  append([]uint16(nil), b.stageI...),
	}
	b.mesh = m
	copy(b.samples, b.stageS)
	if err := b.sink.Submit(m); err != nil {
		return m, fmt.Errorf("%w: %w", ErrSink, err)
	}
	return m, nil
}

// appendFanIndices appends the index triples of a triangle fan over n
// samples. Triangle i joins the origin to samples i+1 and i+2. A closed fan
// emits one extra triangle that wraps from the last sample back to the
// first instead of referencing the out-of-range index n+1.
func appendFanIndices(buf []uint16, n int, closed bool) []uint16 {
	tris := n - 1
	if closed {
		tris = n
	}
	for i := 0; i < tris; i++ {
		second := uint16(i + 1)
		third := uint16(i + 2)
		if closed && i == tris-1 {
			third = 1
		}
		buf = append(buf, 0, second, third)
	}
	return buf
}
