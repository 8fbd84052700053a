package debug

import "github.com/Faultbox/flycam/pkg/math"

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding is the default padding for selection boxes.
const DefaultBBoxPadding = 1.0

// BoxWireframe creates line vertices for the 12 edges of the box spanned by min
// and max, grown by padding on every side.
func BoxWireframe(min, max math.Vec3, padding float32, color [3]float32) []LineVertex {
	// Handle swapped corners
	lo := math.Vec3{X: minf(min.X, max.X), Y: minf(min.Y, max.Y), Z: minf(min.Z, max.Z)}
	hi := math.Vec3{X: maxf(min.X, max.X), Y: maxf(min.Y, max.Y), Z: maxf(min.Z, max.Z)}

	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	lo = lo.Sub(pad)
	hi = hi.Add(pad)

	corner := func(x, y, z float32) LineVertex { return lineVertex(x, y, z, color) }

	return []LineVertex{
		// Bottom face (4 edges)
		corner(lo.X, lo.Y, lo.Z), corner(hi.X, lo.Y, lo.Z),
		corner(hi.X, lo.Y, lo.Z), corner(hi.X, lo.Y, hi.Z),
		corner(hi.X, lo.Y, hi.Z), corner(lo.X, lo.Y, hi.Z),
		corner(lo.X, lo.Y, hi.Z), corner(lo.X, lo.Y, lo.Z),
		// Top face (4 edges)
		corner(lo.X, hi.Y, lo.Z), corner(hi.X, hi.Y, lo.Z),
		corner(hi.X, hi.Y, lo.Z), corner(hi.X, hi.Y, hi.Z),
		corner(hi.X, hi.Y, hi.Z), corner(lo.X, hi.Y, hi.Z),
		corner(lo.X, hi.Y, hi.Z), corner(lo.X, hi.Y, lo.Z),
		// Vertical edges (4 edges)
		corner(lo.X, lo.Y, lo.Z), corner(lo.X, hi.Y, lo.Z),
		corner(hi.X, lo.Y, lo.Z), corner(hi.X, hi.Y, lo.Z),
		corner(hi.X, lo.Y, hi.Z), corner(hi.X, hi.Y, hi.Z),
		corner(lo.X, lo.Y, hi.Z), corner(lo.X, hi.Y, hi.Z),
	}
}
