package scene

import (
	"github.com/Faultbox/flycam/internal/engine/debug"
	"github.com/Faultbox/flycam/internal/engine/lighting"
	"github.com/Faultbox/flycam/pkg/math"
)

// BoundsColor is the outline color drawn around the inspected model.
var BoundsColor = [3]float32{1.0, 0.85, 0.2}

// Config contains scene configuration options.
type Config struct {
	CubeSize             float32
	Spin                 bool
	SpinDegreesPerSecond float32
	SunLongitude         float32
	SunLatitude          float32
	GridHalfExtent       float32
	GridSpacing          float32
}

// Scene is the content drawn each frame.
type Scene struct {
	Model    *Model
	LightDir math.Vec3 // direction light travels
	Grid     []debug.LineVertex
}

// New builds the demo scene: a cube at the origin resting above a ground grid.
func New(cfg Config) *Scene {
	cube := Cube(cfg.CubeSize)
	return &Scene{
		Model:    NewModel(cube, math.Vec3{}, cfg.SpinDegreesPerSecond, cfg.Spin),
		LightDir: lighting.LightDirection(cfg.SunLongitude, cfg.SunLatitude),
		Grid:     debug.GridLines(cfg.GridHalfExtent, cfg.GridSpacing, -cfg.CubeSize/2),
	}
}

// Update advances animated content by dt seconds.
func (s *Scene) Update(dt float32) {
	s.Model.Update(dt)
}

// ModelOutline returns the padded world-space box around the model.
func (s *Scene) ModelOutline() []debug.LineVertex {
	min, max := debug.Bounds(s.Model.WorldPositions())
	return debug.BoxWireframe(min, max, debug.DefaultBBoxPadding, BoundsColor)
}
