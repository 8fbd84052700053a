// Package debug provides debug visualization and capture utilities.
package debug

import "github.com/Faultbox/flycam/pkg/math"

// LineVertex is one endpoint of a colored debug line.
type LineVertex struct {
	X, Y, Z float32 // Position
	R, G, B float32 // Color
}

// LineVertexStride is the size of a LineVertex in bytes.
const LineVertexStride = 6 * 4

var (
	GridColor  = [3]float32{0.35, 0.35, 0.4}
	AxisXColor = [3]float32{0.8, 0.2, 0.2}
	AxisZColor = [3]float32{0.2, 0.3, 0.8}
)

func lineVertex(x, y, z float32, c [3]float32) LineVertex {
	return LineVertex{x, y, z, c[0], c[1], c[2]}
}

// GridLines generates a square ground grid centered on the world origin at the
// given height. Lines run every spacing units out to ±halfExtent. The lines through
// the origin are colored as the X and Z axes.
// Returns nil when spacing or halfExtent is not positive.
func GridLines(halfExtent, spacing, height float32) []LineVertex {
	if !(spacing > 0) || !(halfExtent > 0) {
		return nil
	}

	steps := int(halfExtent / spacing)
	extent := float32(steps) * spacing
	vertices := make([]LineVertex, 0, (2*steps+1)*4)

	for i := -steps; i <= steps; i++ {
		offset := float32(i) * spacing

		// Line parallel to Z at x = offset
		color := GridColor
		if i == 0 {
			color = AxisZColor
		}
		vertices = append(vertices,
			lineVertex(offset, height, -extent, color),
			lineVertex(offset, height, extent, color),
		)

		// Line parallel to X at z = offset
		color = GridColor
		if i == 0 {
			color = AxisXColor
		}
		vertices = append(vertices,
			lineVertex(-extent, height, offset, color),
			lineVertex(extent, height, offset, color),
		)
	}

	return vertices
}

// Flatten packs vertices as [x, y, z, r, g, b] floats for a GL buffer.
func Flatten(vertices []LineVertex) []float32 {
	out := make([]float32, 0, len(vertices)*6)
	for _, v := range vertices {
		out = append(out, v.X, v.Y, v.Z, v.R, v.G, v.B)
	}
	return out
}

// Bounds returns the axis-aligned box enclosing the points.
func Bounds(points []math.Vec3) (min, max math.Vec3) {
	if len(points) == 0 {
		return min, max
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		min = math.Vec3{X: minf(min.X, p.X), Y: minf(min.Y, p.Y), Z: minf(min.Z, p.Z)}
		max = math.Vec3{X: maxf(max.X, p.X), Y: maxf(max.Y, p.Y), Z: maxf(max.Z, p.Z)}
	}
	return min, max
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
