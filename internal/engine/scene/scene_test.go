package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/flycam/internal/engine/debug"
	"github.com/Faultbox/flycam/pkg/math"
)

func TestCube(t *testing.T) {
	mesh := Cube(40)
	require.Len(t, mesh.Vertices, 24)
	require.Len(t, mesh.Indices, 36)

	for _, idx := range mesh.Indices {
		assert.Less(t, int(idx), len(mesh.Vertices))
	}

	for _, v := range mesh.Vertices {
		// Every corner sits at ±20 on each axis
		assert.InDelta(t, 20, absf(v.Position.X), 1e-5)
		assert.InDelta(t, 20, absf(v.Position.Y), 1e-5)
		assert.InDelta(t, 20, absf(v.Position.Z), 1e-5)
		// and on the face its normal points out of
		assert.InDelta(t, 20, v.Position.Dot(v.Normal), 1e-5)
	}
}

func TestCubeWindsClockwiseFromOutside(t *testing.T) {
	mesh := Cube(2)
	for i := 0; i < len(mesh.Indices); i += 3 {
		a := mesh.Vertices[mesh.Indices[i]]
		b := mesh.Vertices[mesh.Indices[i+1]]
		c := mesh.Vertices[mesh.Indices[i+2]]

		// In a left-handed system a clockwise triangle seen from outside has
		// (b-a) x (c-a) pointing out of the surface
		n := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		assert.Greater(t, n.Dot(a.Normal), float32(0), "triangle %d", i/3)
	}
}

func TestMeshFlatten(t *testing.T) {
	mesh := Cube(2)
	flat := mesh.Flatten()
	require.Len(t, flat, len(mesh.Vertices)*VertexStride/4)

	v := mesh.Vertices[0]
	assert.Equal(t, []float32{
		v.Position.X, v.Position.Y, v.Position.Z,
		v.Normal.X, v.Normal.Y, v.Normal.Z,
		v.Color[0], v.Color[1], v.Color[2],
	}, flat[:9])
}

func TestModelSpin(t *testing.T) {
	model := NewModel(Cube(2), math.Vec3{}, 45, true)

	for i := 0; i < 4; i++ {
		model.Update(0.5)
	}

	// 2 seconds at 45°/s
	want := math.RotationY(math.Radians(90))
	assert.True(t, model.Rotation().ToMat4().ApproxEqual(want, 1e-4),
		"got %v want %v", model.Rotation().ToMat4(), want)
}

func TestModelToggleSpin(t *testing.T) {
	model := NewModel(Cube(2), math.Vec3{}, 45, true)
	assert.True(t, model.Spinning())

	assert.False(t, model.ToggleSpin())
	model.Update(1)
	assert.Equal(t, math.QuatIdentity(), model.Rotation())

	assert.True(t, model.ToggleSpin())
	model.Update(1)
	assert.NotEqual(t, math.QuatIdentity(), model.Rotation())
}

func TestModelIgnoresNonPositiveDelta(t *testing.T) {
	model := NewModel(Cube(2), math.Vec3{}, 45, true)
	model.Update(0)
	model.Update(-1)
	assert.Equal(t, math.QuatIdentity(), model.Rotation())
}

func TestModelWorldOrder(t *testing.T) {
	model := NewModel(Cube(2), math.Vec3{X: 10, Y: 0, Z: 5}, 90, true)
	model.Scale = math.Vec3{X: 2, Y: 2, Z: 2}
	model.Update(1) // quarter turn

	want := math.Scaling(model.Scale).
		Mul(math.RotationY(math.Radians(90))).
		Mul(math.Translation(model.Position))
	assert.True(t, model.World().ApproxEqual(want, 1e-4))

	// Scale happens before translation: the local origin lands on Position
	assert.True(t, model.World().TransformPoint(math.Vec3{}).ApproxEqual(model.Position, 1e-5))
}

func TestModelWorldViewProjection(t *testing.T) {
	model := NewModel(Cube(2), math.Vec3{X: 1, Y: 2, Z: 3}, 0, false)
	viewProj := math.Translation(math.Vec3{Z: 10}).Mul(math.PerspectiveFovLH(1, 1, 0.1, 300))

	want := model.World().Mul(viewProj)
	assert.Equal(t, want, model.WorldViewProjection(viewProj))
}

func TestSceneOutlineEnclosesModel(t *testing.T) {
	s := New(Config{
		CubeSize:             40,
		Spin:                 true,
		SpinDegreesPerSecond: 45,
		SunLongitude:         45,
		SunLatitude:          50,
		GridHalfExtent:       200,
		GridSpacing:          10,
	})
	s.Update(0.5) // 22.5° turn widens the box

	outline := s.ModelOutline()
	require.Len(t, outline, debug.BBoxWireframeVertexCount)

	min, max := debug.Bounds(s.Model.WorldPositions())
	for _, v := range outline {
		assert.True(t, v.X < min.X || v.X > max.X)
		assert.True(t, v.Y < min.Y || v.Y > max.Y)
		assert.True(t, v.Z < min.Z || v.Z > max.Z)
	}
	assert.Greater(t, max.X, float32(20))

	require.NotEmpty(t, s.Grid)
	assert.Equal(t, float32(-20), s.Grid[0].Y)
	assert.InDelta(t, 1, s.LightDir.Length(), 1e-5)
	assert.Less(t, s.LightDir.Y, float32(0), "light travels downward")
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
