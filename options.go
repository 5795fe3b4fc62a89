package sightmesh

import "log/slog"

// Option configures a Builder during creation.
//
// Example:
//
//	// Consume meshes from Update's return value only:
//	b, err := sightmesh.NewBuilder(params)
//
//	// Push every committed mesh to a websocket hub:
//	b, err := sightmesh.NewBuilder(params, sightmesh.WithSink(streamSink))
type Option func(*Builder)

// WithSink sets the sink that receives every committed mesh.
// A nil sink restores the default Discard sink.
func WithSink(s MeshSink) Option {
	return func(b *Builder) {
		if s == nil {
			s = Discard
		}
		b.sink = s
	}
}

// WithLogger overrides the package-level logger for one builder.
// Useful for tagging a builder's output when a host runs several fans.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}
