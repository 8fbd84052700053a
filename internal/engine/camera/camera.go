// Package camera provides the free-fly camera that turns per-tick keyboard and mouse
// input into a view basis, view matrices and a projection.
package camera

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/flycam/pkg/math"
)

var (
	ErrInvalidFOV         = errors.New("field of view must be in (0, 180) degrees")
	ErrInvalidAspectRatio = errors.New("aspect ratio must be positive")
	ErrInvalidClipPlanes  = errors.New("clip planes must satisfy 0 < near < far")
	ErrInvalidPitchLimit  = errors.New("pitch limit must be in (0, 90) degrees")
)

// DefaultInspectHome is where ToggleInspectMode re-homes the camera.
var DefaultInspectHome = math.Vec3{X: 0, Y: 0, Z: -132.827}

// Options configures a Camera.
type Options struct {
	FOVDegrees  float32 // vertical field of view
	AspectRatio float32 // width / height
	NearPlane   float32
	FarPlane    float32

	MoveSpeed       float32 // world units per second
	LookSensitivity float32 // radians per mouse unit per second

	// PitchLimitDegrees bounds |pitch| so forward never lines up with world up.
	PitchLimitDegrees float32

	Origin      math.Vec3
	InspectHome math.Vec3

	// RecomputeInInspect rebuilds the view while inspect mode is active. When false
	// the view stays frozen at the last fly-mode pose while pitch and yaw keep
	// accumulating.
	RecomputeInInspect bool
}

// DefaultOptions returns the stock camera settings.
func DefaultOptions() Options {
	return Options{
		FOVDegrees:        90,
		AspectRatio:       1,
		NearPlane:         0.1,
		FarPlane:          300,
		MoveSpeed:         30,
		LookSensitivity:   5,
		PitchLimitDegrees: 89,
		InspectHome:       DefaultInspectHome,
	}
}

// Camera is a free-fly camera with a fly and an inspect navigation mode.
// It is owned by a single loop and is not safe for concurrent use.
type Camera struct {
	origin math.Vec3

	fovDegrees  float32
	fovScale    float32 // tan(fov/2)
	aspectRatio float32
	nearPlane   float32
	farPlane    float32

	moveSpeed       float32
	lookSensitivity float32
	pitchLimit      float32 // radians

	totalPitch float32
	totalYaw   float32

	forward math.Vec3
	right   math.Vec3
	up      math.Vec3

	viewMatrix       math.Mat4
	invViewMatrix    math.Mat4
	projectionMatrix math.Mat4
	projectionDirty  bool

	inspectMode        bool
	inspectHome        math.Vec3
	recomputeInInspect bool
}

// New validates opts and returns a camera with its matrices already built.
func New(opts Options) (*Camera, error) {
	if err := validateClipPlanes(opts.NearPlane, opts.FarPlane); err != nil {
		return nil, err
	}
	if !(opts.PitchLimitDegrees > 0 && opts.PitchLimitDegrees < 90) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidPitchLimit, opts.PitchLimitDegrees)
	}

	c := &Camera{
		nearPlane:          opts.NearPlane,
		farPlane:           opts.FarPlane,
		moveSpeed:          opts.MoveSpeed,
		lookSensitivity:    opts.LookSensitivity,
		pitchLimit:         math.Radians(opts.PitchLimitDegrees),
		forward:            math.UnitZ,
		right:              math.UnitX,
		up:                 math.UnitY,
		inspectHome:        opts.InspectHome,
		recomputeInInspect: opts.RecomputeInInspect,
	}
	if err := c.Initialize(opts.FOVDegrees, opts.Origin, opts.AspectRatio); err != nil {
		return nil, err
	}

	c.rebuildView()
	c.rebuildProjection()
	return c, nil
}

// Initialize sets the field of view, origin and aspect ratio. On error nothing is changed.
func (c *Camera) Initialize(fovDegrees float32, origin math.Vec3, aspectRatio float32) error {
	if err := validateFOV(fovDegrees); err != nil {
		return err
	}
	if err := validateAspectRatio(aspectRatio); err != nil {
		return err
	}

	c.fovDegrees = fovDegrees
	c.fovScale = fovScale(fovDegrees)
	c.aspectRatio = aspectRatio
	c.origin = origin
	c.projectionDirty = true
	return nil
}

// SetFOV changes the vertical field of view. The projection is rebuilt on the next Update.
func (c *Camera) SetFOV(fovDegrees float32) error {
	if err := validateFOV(fovDegrees); err != nil {
		return err
	}
	if fovDegrees != c.fovDegrees {
		c.fovDegrees = fovDegrees
		c.fovScale = fovScale(fovDegrees)
		c.projectionDirty = true
	}
	return nil
}

// SetAspectRatio changes the aspect ratio, e.g. after a window resize.
func (c *Camera) SetAspectRatio(aspectRatio float32) error {
	if err := validateAspectRatio(aspectRatio); err != nil {
		return err
	}
	if aspectRatio != c.aspectRatio {
		c.aspectRatio = aspectRatio
		c.projectionDirty = true
	}
	return nil
}

// SetClipPlanes changes the near and far planes.
func (c *Camera) SetClipPlanes(near, far float32) error {
	if err := validateClipPlanes(near, far); err != nil {
		return err
	}
	if near != c.nearPlane || far != c.farPlane {
		c.nearPlane, c.farPlane = near, far
		c.projectionDirty = true
	}
	return nil
}

// SetSpeeds changes the movement speed and look sensitivity. Negative values are clamped to 0.
func (c *Camera) SetSpeeds(moveSpeed, lookSensitivity float32) {
	c.moveSpeed = max(moveSpeed, 0)
	c.lookSensitivity = max(lookSensitivity, 0)
}

// Speeds returns the movement speed and look sensitivity.
func (c *Camera) Speeds() (moveSpeed, lookSensitivity float32) {
	return c.moveSpeed, c.lookSensitivity
}

// Update advances the camera by dt seconds using a single input snapshot.
// A non-positive dt moves nothing but still refreshes the matrices.
func (c *Camera) Update(dt float32, in Input) {
	if !(dt > 0) {
		dt = 0
	}
	moveStep := c.moveSpeed * dt
	lookStep := c.lookSensitivity * dt

	if !c.inspectMode {
		c.moveWithKeyboard(in, moveStep)
	}
	c.rotateWithMouse(in, moveStep, lookStep)
	c.totalPitch = math.Clamp(c.totalPitch, -c.pitchLimit, c.pitchLimit)

	if !c.inspectMode || c.recomputeInInspect {
		c.rebuildView()
	}
	if c.projectionDirty {
		c.rebuildProjection()
	}
}

// ToggleInspectMode flips the navigation mode and re-homes the camera. Both
// directions reset origin, pitch and yaw.
func (c *Camera) ToggleInspectMode() {
	c.origin = c.inspectHome
	c.totalPitch = 0
	c.totalYaw = 0
	c.inspectMode = !c.inspectMode
}

// moveWithKeyboard translates along the basis of the last rebuild. Diagonals are
// deliberately left unnormalized.
func (c *Camera) moveWithKeyboard(in Input, moveStep float32) {
	c.origin = c.origin.
		Add(c.right.Scale(in.axis(MoveRight, MoveLeft) * moveStep)).
		Add(c.forward.Scale(in.axis(MoveForward, MoveBackward) * moveStep))
}

func (c *Camera) rotateWithMouse(in Input, moveStep, lookStep float32) {
	dx := float32(in.MouseDX)
	dy := float32(in.MouseDY)

	switch lookupMouseEffect(c.inspectMode, in.Buttons) {
	case effectLook:
		c.totalPitch += -dy * lookStep
		c.totalYaw += dx * lookStep
	case effectYawAndDepth:
		c.totalYaw += dx * lookStep
		c.origin.Z += dy * moveStep
	case effectVerticalPan:
		c.origin.Y += dy * moveStep
	}
}

func (c *Camera) rebuildView() {
	rotation := math.RotationPitchYawRoll(c.totalPitch, c.totalYaw, 0)

	c.forward = rotation.TransformDirection(math.UnitZ)
	c.right = math.UnitY.Cross(c.forward).Normalize()
	c.up = c.forward.Cross(c.right).Normalize()

	c.invViewMatrix = rotation.Mul(math.Translation(c.origin))
	c.viewMatrix = c.invViewMatrix.Inverse()
}

func (c *Camera) rebuildProjection() {
	c.projectionMatrix = math.PerspectiveFovLH(c.fovScale, c.aspectRatio, c.nearPlane, c.farPlane)
	c.projectionDirty = false
}

// Origin returns the eye position in world space.
func (c *Camera) Origin() math.Vec3 { return c.origin }

// Pitch returns the accumulated pitch in radians.
func (c *Camera) Pitch() float32 { return c.totalPitch }

// Yaw returns the accumulated yaw in radians.
func (c *Camera) Yaw() float32 { return c.totalYaw }

func (c *Camera) Forward() math.Vec3 { return c.forward }
func (c *Camera) Right() math.Vec3   { return c.right }
func (c *Camera) Up() math.Vec3      { return c.up }

func (c *Camera) FOVDegrees() float32  { return c.fovDegrees }
func (c *Camera) FOVScale() float32    { return c.fovScale }
func (c *Camera) AspectRatio() float32 { return c.aspectRatio }

// ClipPlanes returns the near and far plane distances.
func (c *Camera) ClipPlanes() (near, far float32) { return c.nearPlane, c.farPlane }

// InspectMode reports whether inspect navigation is active.
func (c *Camera) InspectMode() bool { return c.inspectMode }

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() math.Mat4 { return c.viewMatrix }

// InvViewMatrix returns the camera-to-world transform (the camera's world pose).
func (c *Camera) InvViewMatrix() math.Mat4 { return c.invViewMatrix }

// ProjectionMatrix returns the camera-to-clip transform.
func (c *Camera) ProjectionMatrix() math.Mat4 { return c.projectionMatrix }

// ViewProjection returns view * projection.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.viewMatrix.Mul(c.projectionMatrix)
}

func fovScale(fovDegrees float32) float32 {
	return float32(gomath.Tan(float64(math.Radians(fovDegrees)) / 2))
}

func validateFOV(fovDegrees float32) error {
	if !(fovDegrees > 0 && fovDegrees < 180) {
		return fmt.Errorf("%w: got %v", ErrInvalidFOV, fovDegrees)
	}
	return nil
}

func validateAspectRatio(aspectRatio float32) error {
	if !(aspectRatio > 0) || gomath.IsInf(float64(aspectRatio), 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidAspectRatio, aspectRatio)
	}
	return nil
}

func validateClipPlanes(near, far float32) error {
	if !(near > 0 && near < far) || gomath.IsInf(float64(far), 1) {
		return fmt.Errorf("%w: got near=%v far=%v", ErrInvalidClipPlanes, near, far)
	}
	return nil
}
