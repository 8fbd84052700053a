package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 || m[12] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translation(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	if result != m {
		t.Errorf("M * I should equal M, got %v", result)
	}
}

func TestTranslation(t *testing.T) {
	m := Translation(Vec3{5, 10, 15})

	// Translation lives in the last row (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translation: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
	if m.Position() != (Vec3{5, 10, 15}) {
		t.Errorf("Position: got %v", m.Position())
	}
}

func TestScaling(t *testing.T) {
	m := Scaling(Vec3{2, 3, 4})

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scaling diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translation(Vec3{10, 20, 30})
	result := m.TransformPoint(Vec3{1, 2, 3})

	expected := Vec3{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Scaling(Vec3{2, 2, 2}).Mul(Translation(Vec3{10, 20, 30}))
	result := m.TransformDirection(Vec3{1, 2, 3})

	expected := Vec3{2, 4, 6}
	if result != expected {
		t.Errorf("TransformDirection: got %v, want %v", result, expected)
	}
}

func TestMulAppliesLeftFirst(t *testing.T) {
	// Scale then translate: the translation must not be scaled.
	m := Scaling(Vec3{2, 2, 2}).Mul(Translation(Vec3{1, 0, 0}))
	result := m.TransformPoint(Vec3{1, 1, 1})

	expected := Vec3{3, 2, 2}
	if result != expected {
		t.Errorf("scale then translate: got %v, want %v", result, expected)
	}
}

func TestRotationY90(t *testing.T) {
	m := RotationY(float32(math.Pi / 2))

	// +X turns to -Z, +Z turns to +X
	if got := m.TransformDirection(UnitX); !got.ApproxEqual(Vec3{0, 0, -1}, 1e-6) {
		t.Errorf("RotationY 90 on X: got %v, want (0, 0, -1)", got)
	}
	if got := m.TransformDirection(UnitZ); !got.ApproxEqual(Vec3{1, 0, 0}, 1e-6) {
		t.Errorf("RotationY 90 on Z: got %v, want (1, 0, 0)", got)
	}
}

func TestRotationXPositiveLooksUp(t *testing.T) {
	angle := float32(math.Pi / 6)
	got := RotationX(angle).TransformDirection(UnitZ)

	want := Vec3{0, float32(math.Sin(math.Pi / 6)), float32(math.Cos(math.Pi / 6))}
	if !got.ApproxEqual(want, 1e-6) {
		t.Errorf("RotationX on Z: got %v, want %v", got, want)
	}
}

func TestRotationZ90(t *testing.T) {
	got := RotationZ(float32(math.Pi / 2)).TransformDirection(UnitX)
	if !got.ApproxEqual(UnitY, 1e-6) {
		t.Errorf("RotationZ 90 on X: got %v, want %v", got, UnitY)
	}
}

func TestRotationPitchYawRollForward(t *testing.T) {
	pitch := Radians(30)
	yaw := Radians(60)
	forward := RotationPitchYawRoll(pitch, yaw, 0).TransformDirection(UnitZ)

	cp, sp := math.Cos(float64(pitch)), math.Sin(float64(pitch))
	cy, sy := math.Cos(float64(yaw)), math.Sin(float64(yaw))
	want := Vec3{float32(cp * sy), float32(sp), float32(cp * cy)}
	if !forward.ApproxEqual(want, 1e-5) {
		t.Errorf("forward: got %v, want %v", forward, want)
	}
}

func TestPerspectiveFovLHDepthRange(t *testing.T) {
	fovScale := float32(math.Tan(math.Pi / 8)) // 45 degree vertical fov
	tests := []struct {
		name      string
		near, far float32
	}{
		{"default planes", 0.1, 300},
		{"unit near", 1, 100},
		{"tight", 5, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PerspectiveFovLH(fovScale, 16.0/9.0, tt.near, tt.far)

			nearClip := p.MulVec4(Vec4{0, 0, tt.near, 1})
			if z := nearClip[2] / nearClip[3]; absf(z) > 1e-5 {
				t.Errorf("near plane depth: got %f, want 0", z)
			}

			farClip := p.MulVec4(Vec4{0, 0, tt.far, 1})
			if z := farClip[2] / farClip[3]; absf(z-1) > 1e-5 {
				t.Errorf("far plane depth: got %f, want 1", z)
			}

			// w carries view depth for the perspective divide
			if farClip[3] != tt.far {
				t.Errorf("far clip w: got %f, want %f", farClip[3], tt.far)
			}
		})
	}
}

func TestPerspectiveFovLHFrustumEdge(t *testing.T) {
	fovScale := float32(math.Tan(math.Pi / 4)) // 90 degree vertical fov
	aspect := float32(2)
	p := PerspectiveFovLH(fovScale, aspect, 0.1, 100)

	// A point on the top edge of the frustum at depth 10 sits at y = 10 * fovScale.
	top := p.TransformPoint(Vec3{0, 10 * fovScale, 10})
	if absf(top.Y-1) > 1e-5 {
		t.Errorf("top edge: got y=%f, want 1", top.Y)
	}

	right := p.TransformPoint(Vec3{10 * fovScale * aspect, 0, 10})
	if absf(right.X-1) > 1e-5 {
		t.Errorf("right edge: got x=%f, want 1", right.X)
	}
}

func TestTranspose(t *testing.T) {
	m := Translation(Vec3{1, 2, 3})
	tr := m.Transpose()
	if tr[3] != 1 || tr[7] != 2 || tr[11] != 3 {
		t.Errorf("Transpose: got %v", tr)
	}
	if tr.Transpose() != m {
		t.Error("double transpose should be identity operation")
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := RotationPitchYawRoll(0.3, -1.2, 0).Mul(Translation(Vec3{4, -7, 132.827}))

	inv := m.Inverse()
	if !inv.Inverse().ApproxEqual(m, 1e-3) {
		t.Errorf("inverse of inverse: got %v, want %v", inv.Inverse(), m)
	}
	if !m.Mul(inv).ApproxEqual(Identity(), 1e-4) {
		t.Errorf("M * M^-1: got %v, want identity", m.Mul(inv))
	}
	if !inv.Mul(m).ApproxEqual(Identity(), 1e-4) {
		t.Errorf("M^-1 * M: got %v, want identity", inv.Mul(m))
	}
}

func TestInverseSingular(t *testing.T) {
	m := Scaling(Vec3{1, 0, 1})
	if m.Inverse() != Identity() {
		t.Errorf("singular inverse should be identity, got %v", m.Inverse())
	}
}

func TestMulMatchesMGL32(t *testing.T) {
	a := RotationPitchYawRoll(0.4, 1.1, 0.2).Mul(Translation(Vec3{1, 2, 3}))
	b := PerspectiveFovLH(0.5, 1.5, 0.1, 50)

	// Our row-vector product a*b is mgl32's column-vector product b*a on the same memory.
	got := a.Mul(b)
	want := Mat4(b.GL().Mul4(a.GL()))
	if !got.ApproxEqual(want, 1e-5) {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
}

func TestInverseMatchesMGL32(t *testing.T) {
	m := RotationPitchYawRoll(-0.7, 2.3, 0).Mul(Translation(Vec3{-12, 5, 40}))

	got := m.Inverse()
	want := Mat4(m.GL().Inv())
	if !got.ApproxEqual(want, 1e-4) {
		t.Errorf("Inverse: got %v, want %v", got, want)
	}
}

func TestGLTransformsLikeMulVec4(t *testing.T) {
	m := RotationY(0.9).Mul(Translation(Vec3{3, 0, -2}))
	v := Vec4{1, 2, 3, 1}

	got := m.MulVec4(v)
	want := m.GL().Mul4x1(mgl32.Vec4{1, 2, 3, 1})
	for i := 0; i < 4; i++ {
		if absf(got[i]-want[i]) > 1e-5 {
			t.Errorf("component %d: got %f, want %f", i, got[i], want[i])
		}
	}
}
