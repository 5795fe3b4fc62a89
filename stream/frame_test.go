package stream

import (
	"testing"

	"github.com/golang/snappy"

	"github.com/gosight/sightmesh"
)

func testMesh() *sightmesh.Mesh {
	return &sightmesh.Mesh{
		Vertices: []sightmesh.Vec2{{}, sightmesh.V2(500, 0), sightmesh.V2(353.5, -353.5)},
		Indices:  []uint16{0, 1, 2},
	}
}

func TestFrameRoundTrip(t *testing.T) {
	data, err := EncodeFrame(7, testMesh())
	if err != nil {
		t.Fatalf("EncodeFrame() = %v", err)
	}
	f, err := DecodeFrame(data)
	if err != nil {
		t.Fatalf("DecodeFrame() = %v", err)
	}
	if f.Seq != 7 {
		t.Errorf("Seq = %d, want 7", f.Seq)
	}
	if len(f.Vertices) != 3 {
		t.Fatalf("len(Vertices) = %d, want 3", len(f.Vertices))
	}
	if f.Vertices[0] != [2]float64{0, 0} {
		t.Errorf("Vertices[0] = %v, want origin", f.Vertices[0])
	}
	if f.Vertices[1] != [2]float64{500, 0} {
		t.Errorf("Vertices[1] = %v, want [500 0]", f.Vertices[1])
	}
	if len(f.Indices) != 3 || f.Indices[0] != 0 {
		t.Errorf("Indices = %v", f.Indices)
	}
}

func TestDecodeFrame_Snappy(t *testing.T) {
	plain, err := EncodeFrame(3, testMesh())
	if err != nil {
		t.Fatalf("EncodeFrame() = %v", err)
	}
	f, err := DecodeFrame(snappy.Encode(nil, plain))
	if err != nil {
		t.Fatalf("DecodeFrame(snappy) = %v", err)
	}
	if f.Seq != 3 {
		t.Errorf("Seq = %d, want 3", f.Seq)
	}
}

func TestDecodeFrame_Garbage(t *testing.T) {
	if _, err := DecodeFrame([]byte("not a frame")); err == nil {
		t.Error("DecodeFrame() = nil error for garbage input")
	}
}
