package stream

import (
	"sync/atomic"

	"github.com/golang/snappy"
	"github.com/gorilla/websocket"

	"github.com/gosight/sightmesh"
)

// Sink implements sightmesh.MeshSink by encoding each committed mesh as a
// frame and broadcasting it through a hub. Submissions never block on slow
// clients; the hub drops those instead.
type Sink struct {
	hub      *Hub
	compress bool
	seq      atomic.Uint64
}

// SinkOption configures a Sink during creation.
type SinkOption func(*Sink)

// WithSnappy switches the sink to snappy-compressed binary frames.
// For a dense closed fan the JSON payload is dominated by repeating float
// text, which compresses well.
func WithSnappy() SinkOption {
	return func(s *Sink) {
		s.compress = true
	}
}

// NewSink creates a sink that broadcasts through hub.
func NewSink(hub *Hub, opts ...SinkOption) *Sink {
	s := &Sink{hub: hub}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit encodes the mesh and broadcasts it to every connected client.
func (s *Sink) Submit(mesh *sightmesh.Mesh) error {
	data, err := EncodeFrame(s.seq.Add(1), mesh)
	if err != nil {
		return err
	}
	kind := websocket.TextMessage
	if s.compress {
		data = snappy.Encode(nil, data)
		kind = websocket.BinaryMessage
	}
	s.hub.Broadcast(kind, data)
	return nil
}
