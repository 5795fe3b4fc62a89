// Package stream broadcasts committed visibility meshes to websocket
// clients. A Hub owns the client set; a Sink implements sightmesh.MeshSink
// by encoding each mesh as a frame and handing it to the hub.
//
// Frames are JSON by default. A Sink created with WithSnappy compresses each
// frame with snappy and sends it as a binary message instead; clients pick
// the format by inspecting the websocket message type.
package stream

import (
	"encoding/json"
	"fmt"

	"github.com/golang/snappy"

	"github.com/gosight/sightmesh"
)

// Frame is the wire representation of one committed mesh.
type Frame struct {
	// Seq increases by one per submission, letting clients detect drops.
	Seq uint64 `json:"seq"`

	// Vertices are local-frame [x, y] pairs; element 0 is the origin.
	Vertices [][2]float64 `json:"vertices"`

	// Indices is the flat triangle-fan index buffer.
	Indices []uint16 `json:"indices"`
}

// EncodeFrame serializes a mesh as a JSON frame.
func EncodeFrame(seq uint64, mesh *sightmesh.Mesh) ([]byte, error) {
	f := Frame{
		Seq:      seq,
		Vertices: make([][2]float64, len(mesh.Vertices)),
		Indices:  mesh.Indices,
	}
	for i, v := range mesh.Vertices {
		f.Vertices[i] = [2]float64{v.X, v.Y}
	}
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("stream: encode frame: %w", err)
	}
	return data, nil
}

// DecodeFrame parses a frame, transparently decompressing snappy payloads.
// It accepts both wire formats so test clients and tools need a single
// decode path.
func DecodeFrame(data []byte) (*Frame, error) {
	if decoded, err := snappy.Decode(nil, data); err == nil {
		data = decoded
	}
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("stream: decode frame: %w", err)
	}
	return &f, nil
}
