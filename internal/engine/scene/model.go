// Package scene holds the demo content the viewer flies around: a spinning mesh,
// a ground grid and the sun.
package scene

import (
	"github.com/Faultbox/flycam/pkg/math"
)

// Model is a mesh placed in the world that can spin around its Y axis.
type Model struct {
	Mesh     Mesh
	Position math.Vec3
	Scale    math.Vec3

	rotation math.Quat
	spinRate float32 // radians per second
	spinning bool
}

// NewModel places mesh at position with unit scale.
func NewModel(mesh Mesh, position math.Vec3, spinDegreesPerSecond float32, spinning bool) *Model {
	return &Model{
		Mesh:     mesh,
		Position: position,
		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
		rotation: math.QuatIdentity(),
		spinRate: math.Radians(spinDegreesPerSecond),
		spinning: spinning,
	}
}

// Update advances the spin by dt seconds.
func (m *Model) Update(dt float32) {
	if !m.spinning || !(dt > 0) {
		return
	}
	step := math.QuatFromAxisAngle(math.UnitY, m.spinRate*dt)
	m.rotation = m.rotation.Then(step)
}

// ToggleSpin starts or stops spinning and returns the new state.
func (m *Model) ToggleSpin() bool {
	m.spinning = !m.spinning
	return m.spinning
}

// Spinning reports whether the model is spinning.
func (m *Model) Spinning() bool { return m.spinning }

// Rotation returns the current orientation.
func (m *Model) Rotation() math.Quat { return m.rotation }

// World returns scale, then rotation, then translation.
func (m *Model) World() math.Mat4 {
	return math.Scaling(m.Scale).
		Mul(m.rotation.ToMat4()).
		Mul(math.Translation(m.Position))
}

// WorldViewProjection returns World() * viewProj.
func (m *Model) WorldViewProjection(viewProj math.Mat4) math.Mat4 {
	return m.World().Mul(viewProj)
}

// WorldPositions returns the mesh vertices transformed to world space.
func (m *Model) WorldPositions() []math.Vec3 {
	positions := m.Mesh.Positions()
	world := m.World()
	for i, p := range positions {
		positions[i] = world.TransformPoint(p)
	}
	return positions
}
