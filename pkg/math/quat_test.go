package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatToMat4Identity(t *testing.T) {
	m := QuatIdentity().ToMat4()
	if !m.ApproxEqual(Identity(), 1e-6) {
		t.Errorf("Identity quat should produce identity matrix, got %v", m)
	}
}

func TestQuatToMat4MatchesRotationY(t *testing.T) {
	for _, deg := range []float32{15, 90, 200, -45} {
		q := QuatFromAxisAngle(UnitY, Radians(deg))
		if !q.ToMat4().ApproxEqual(RotationY(Radians(deg)), 1e-5) {
			t.Errorf("%v degrees: quat %v, matrix %v", deg, q.ToMat4(), RotationY(Radians(deg)))
		}
	}
}

func TestQuatThenAccumulates(t *testing.T) {
	step := QuatFromAxisAngle(UnitY, Radians(45))
	q := QuatIdentity().Then(step).Then(step)

	if !q.ToMat4().ApproxEqual(RotationY(Radians(90)), 1e-5) {
		t.Errorf("two 45 degree steps: got %v", q.ToMat4())
	}
}

func TestQuatThenOrder(t *testing.T) {
	a := QuatFromAxisAngle(UnitY, Radians(90))
	b := QuatFromAxisAngle(UnitZ, Radians(90))

	want := RotationY(Radians(90)).Mul(RotationZ(Radians(90)))
	if got := a.Then(b).ToMat4(); !got.ApproxEqual(want, 1e-5) {
		t.Errorf("a then b: got %v, want %v", got, want)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}
