package sightmesh

// Mesh is a triangulated visibility surface in the mesh owner's local frame.
//
// Vertices[0] is always the local origin. Vertices[1..N] are the fan samples
// ordered from the highest sweep angle to the lowest, so consecutive samples
// always triangulate with consistent winding. Indices is a flat sequence of
// triples; every triple starts at 0, describing a triangle fan around the
// origin.
//
// A Mesh returned by the builder is a committed snapshot: the builder never
// mutates it afterward, and sinks must not either.
type Mesh struct {
	Vertices []Vec2
	Indices  []uint16
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the vertex indices of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c uint16) {
	return m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Vertices: append([]Vec2(nil), m.Vertices...),
		Indices:  append([]uint16(nil), m.Indices...),
	}
}
