package sightmesh

// MeshSink receives each committed mesh, once per initialization and once per
// successful update. Implementations must tolerate being called every frame
// and must not retain and mutate the submitted mesh; Clone it if it outlives
// the call.
type MeshSink interface {
	Submit(mesh *Mesh) error
}

// SinkFunc adapts a plain function to the MeshSink interface.
type SinkFunc func(mesh *Mesh) error

// Submit calls f.
func (f SinkFunc) Submit(mesh *Mesh) error {
	return f(mesh)
}

// Discard is a sink that ignores every submission. It is the builder's
// default, for hosts that consume meshes from Update's return value instead.
var Discard MeshSink = SinkFunc(func(*Mesh) error { return nil })
