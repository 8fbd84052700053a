package viewer

import (
	"github.com/Faultbox/flycam/internal/config"
	"github.com/Faultbox/flycam/internal/engine/camera"
	"github.com/Faultbox/flycam/internal/engine/renderer"
	"github.com/Faultbox/flycam/internal/engine/scene"
	"github.com/Faultbox/flycam/internal/engine/window"
	"github.com/Faultbox/flycam/pkg/math"
)

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func cameraOptions(c config.CameraConfig, aspectRatio float32) camera.Options {
	return camera.Options{
		FOVDegrees:         c.FOVDegrees,
		AspectRatio:        aspectRatio,
		NearPlane:          c.NearPlane,
		FarPlane:           c.FarPlane,
		MoveSpeed:          c.MoveSpeed,
		LookSensitivity:    c.LookSensitivity,
		PitchLimitDegrees:  c.PitchLimitDegrees,
		Origin:             vec3(c.Origin),
		InspectHome:        vec3(c.InspectHome),
		RecomputeInInspect: c.RecomputeInInspect,
	}
}

func sceneConfig(c config.SceneConfig) scene.Config {
	return scene.Config{
		CubeSize:             c.CubeSize,
		Spin:                 c.Spin,
		SpinDegreesPerSecond: c.SpinDegreesPerSecond,
		SunLongitude:         c.SunLongitude,
		SunLatitude:          c.SunLatitude,
		GridHalfExtent:       c.GridHalfExtent,
		GridSpacing:          c.GridSpacing,
	}
}

func windowConfig(c config.WindowConfig) window.Config {
	return window.Config{
		Title:         c.Title,
		Width:         c.Width,
		Height:        c.Height,
		Fullscreen:    c.Fullscreen,
		VSync:         c.VSync,
		RelativeMouse: c.RelativeMouse,
	}
}

func frame(cam *camera.Camera, dbg config.DebugConfig) renderer.Frame {
	return renderer.Frame{
		ViewProjection: cam.ViewProjection(),
		InvView:        cam.InvViewMatrix(),
		ShowGrid:       dbg.ShowGrid,
		ShowOutline:    dbg.ShowBounds && cam.InspectMode(),
	}
}
