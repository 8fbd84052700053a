package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the settings can build a window, a camera and a scene.
// All problems are reported together.
func (c *Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		add("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	cam := c.Camera
	if !(cam.FOVDegrees > 0 && cam.FOVDegrees < 180) {
		add("camera.fov_degrees must be in (0, 180), got %v", cam.FOVDegrees)
	}
	if !(cam.NearPlane > 0 && cam.NearPlane < cam.FarPlane) {
		add("camera clip planes must satisfy 0 < near < far, got near=%v far=%v", cam.NearPlane, cam.FarPlane)
	}
	if !(cam.PitchLimitDegrees > 0 && cam.PitchLimitDegrees < 90) {
		add("camera.pitch_limit_degrees must be in (0, 90), got %v", cam.PitchLimitDegrees)
	}
	if cam.MoveSpeed < 0 {
		add("camera.move_speed must not be negative, got %v", cam.MoveSpeed)
	}
	if cam.LookSensitivity < 0 {
		add("camera.look_sensitivity must not be negative, got %v", cam.LookSensitivity)
	}

	if c.Scene.CubeSize <= 0 {
		add("scene.cube_size must be positive, got %v", c.Scene.CubeSize)
	}
	if c.Scene.GridSpacing <= 0 || c.Scene.GridHalfExtent < c.Scene.GridSpacing {
		add("scene grid needs 0 < grid_spacing <= grid_half_extent, got spacing=%v extent=%v",
			c.Scene.GridSpacing, c.Scene.GridHalfExtent)
	}

	ctl := c.Controls
	for name, keys := range map[string][]string{
		"move_forward":  ctl.MoveForward,
		"move_backward": ctl.MoveBackward,
		"move_left":     ctl.MoveLeft,
		"move_right":    ctl.MoveRight,
	} {
		if len(keys) == 0 {
			add("controls.%s needs at least one key", name)
		}
	}
	if ctl.ToggleInspect == "" || ctl.Quit == "" {
		add("controls.toggle_inspect and controls.quit must be bound")
	}

	switch c.Debug.ScreenshotFormat {
	case "png", "bmp":
	default:
		add("debug.screenshot_format must be png or bmp, got %q", c.Debug.ScreenshotFormat)
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
}
