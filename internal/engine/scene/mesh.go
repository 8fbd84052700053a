package scene

import "github.com/Faultbox/flycam/pkg/math"

// Vertex is an interleaved mesh vertex: position, normal, color.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	Color    [3]float32
}

// VertexStride is the size of a Vertex in bytes.
const VertexStride = 9 * 4

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Positions returns the vertex positions.
func (m Mesh) Positions() []math.Vec3 {
	out := make([]math.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = v.Position
	}
	return out
}

// Flatten packs vertices for a GL array buffer.
func (m Mesh) Flatten() []float32 {
	out := make([]float32, 0, len(m.Vertices)*9)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.Color[0], v.Color[1], v.Color[2],
		)
	}
	return out
}

type cubeFace struct {
	normal, u, v math.Vec3
	color        [3]float32
}

var cubeFaces = [6]cubeFace{
	{normal: math.Vec3{Z: -1}, u: math.Vec3{X: 1}, v: math.Vec3{Y: 1}, color: [3]float32{0.85, 0.30, 0.25}},
	{normal: math.Vec3{Z: 1}, u: math.Vec3{X: -1}, v: math.Vec3{Y: 1}, color: [3]float32{0.25, 0.65, 0.35}},
	{normal: math.Vec3{X: -1}, u: math.Vec3{Z: -1}, v: math.Vec3{Y: 1}, color: [3]float32{0.25, 0.40, 0.85}},
	{normal: math.Vec3{X: 1}, u: math.Vec3{Z: 1}, v: math.Vec3{Y: 1}, color: [3]float32{0.90, 0.75, 0.25}},
	{normal: math.Vec3{Y: 1}, u: math.Vec3{X: 1}, v: math.Vec3{Z: 1}, color: [3]float32{0.80, 0.80, 0.80}},
	{normal: math.Vec3{Y: -1}, u: math.Vec3{X: 1}, v: math.Vec3{Z: -1}, color: [3]float32{0.45, 0.45, 0.45}},
}

// Cube returns an axis-aligned cube of edge length size centered on the origin,
// with flat per-face normals. Triangles wind clockwise seen from outside.
func Cube(size float32) Mesh {
	h := size / 2
	mesh := Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}

	for _, f := range cubeFaces {
		center := f.normal.Scale(h)
		u := f.u.Scale(h)
		v := f.v.Scale(h)
		base := uint32(len(mesh.Vertices))

		// Bottom-left, top-left, top-right, bottom-right in the face's (u, v) plane
		corners := [4]math.Vec3{
			center.Sub(u).Sub(v),
			center.Sub(u).Add(v),
			center.Add(u).Add(v),
			center.Add(u).Sub(v),
		}
		for _, c := range corners {
			mesh.Vertices = append(mesh.Vertices, Vertex{Position: c, Normal: f.normal, Color: f.color})
		}
		mesh.Indices = append(mesh.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	return mesh
}
