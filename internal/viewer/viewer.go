// Package viewer implements the main loop: poll input, move the camera, animate
// the scene, draw and present.
package viewer

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/flycam/internal/config"
	"github.com/Faultbox/flycam/internal/engine/camera"
	"github.com/Faultbox/flycam/internal/engine/debug"
	"github.com/Faultbox/flycam/internal/engine/input"
	"github.com/Faultbox/flycam/internal/engine/renderer"
	"github.com/Faultbox/flycam/internal/engine/scene"
	"github.com/Faultbox/flycam/internal/engine/timer"
	"github.com/Faultbox/flycam/internal/engine/window"
	"github.com/Faultbox/flycam/internal/logger"
)

// keySource reports keys that went down this frame.
type keySource interface {
	Pressed(scancode sdl.Scancode) bool
}

// Viewer is the main viewer instance.
type Viewer struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	bindings    input.Bindings
	camera      *camera.Camera
	scene       *scene.Scene
	timer       *timer.Timer
	screenshots *debug.ScreenshotCapture
	watcher     *config.Watcher

	screenshotRequested bool
}

// New creates the window, the GL renderer and the camera from cfg.
func New(cfg *config.Config) (*Viewer, error) {
	bindings, err := input.ParseBindings(cfg.Controls)
	if err != nil {
		return nil, fmt.Errorf("controls: %w", err)
	}

	win, err := window.New(windowConfig(cfg.Window))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v, err := newViewer(cfg, bindings, win.AspectRatio())
	if err != nil {
		win.Close()
		return nil, err
	}
	v.window = win

	// Renderer comes after the window, since the OpenGL context must exist
	width, height := win.Size()
	v.renderer, err = renderer.New(renderer.Config{Width: width, Height: height}, v.scene)
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()

	if cfg.Debug.WatchConfig && cfg.Source() != "" {
		v.watcher, err = config.Watch(cfg.Source())
		if err != nil {
			v.log.Warn("config watch disabled", zap.Error(err))
		} else {
			v.log.Info("watching config", zap.String("path", v.watcher.Path()))
		}
	}

	v.log.Info("viewer initialized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float32("fov", cfg.Camera.FOVDegrees),
	)
	return v, nil
}

// newViewer builds everything that does not need a window or GL context.
func newViewer(cfg *config.Config, bindings input.Bindings, aspectRatio float32) (*Viewer, error) {
	cam, err := camera.New(cameraOptions(cfg.Camera, aspectRatio))
	if err != nil {
		return nil, fmt.Errorf("failed to create camera: %w", err)
	}

	screenshots, err := debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "flycam", cfg.Debug.ScreenshotFormat)
	if err != nil {
		return nil, err
	}

	return &Viewer{
		cfg:         cfg,
		log:         logger.Named("viewer"),
		bindings:    bindings,
		camera:      cam,
		scene:       scene.New(sceneConfig(cfg.Scene)),
		timer:       timer.New(),
		screenshots: screenshots,
	}, nil
}

// Run starts the main loop and returns when the user quits.
func (v *Viewer) Run() error {
	v.running = true
	v.timer = timer.New()
	lastFPS := 0
	lastTitle := ""

	v.log.Info("starting main loop")

	for v.running {
		dt := v.timer.Tick()

		if v.input.Update() {
			v.running = false
			break
		}
		if _, _, ok := v.input.Resized(); ok {
			v.resize()
		}

		v.handleKeys(v.input)
		if !v.running {
			break
		}
		v.pollConfig()
		v.update(dt, v.input.Snapshot(v.bindings))

		v.renderer.Render(v.scene, frame(v.camera, v.cfg.Debug))
		if v.screenshotRequested {
			v.captureScreenshot()
		}
		v.window.SwapBuffers()

		fps := v.timer.FPS()
		if fps != lastFPS {
			lastFPS = fps
			v.log.Debug("fps", zap.Int("count", fps), zap.Float32("dt_ms", dt*1000))
		}
		if title := v.title(fps); title != lastTitle {
			lastTitle = title
			v.window.SetTitle(title)
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.watcher != nil {
		_ = v.watcher.Close()
		v.watcher = nil
	}
	if v.renderer != nil {
		v.renderer.Close()
		v.renderer = nil
	}
	if v.window != nil {
		v.window.Close()
		v.window = nil
	}
}

// pollConfig reloads the config file if the watcher saw it change.
func (v *Viewer) pollConfig() {
	if v.watcher == nil {
		return
	}
	select {
	case <-v.watcher.Changes():
		cfg, err := config.LoadFile(v.watcher.Path())
		if err != nil {
			v.log.Warn("config reload failed, keeping current settings", zap.Error(err))
			return
		}
		v.applyConfig(cfg)
	case err := <-v.watcher.Errors():
		v.log.Warn("config watch error", zap.Error(err))
	default:
	}
}

// applyConfig takes the lens, speeds and debug settings from a reloaded config.
// Everything else (window, controls, pitch limit, scene) needs a restart.
func (v *Viewer) applyConfig(cfg *config.Config) {
	next := cfg.Camera
	if err := v.camera.SetFOV(next.FOVDegrees); err != nil {
		v.log.Warn("reload: keeping field of view", zap.Error(err))
	}
	if err := v.camera.SetClipPlanes(next.NearPlane, next.FarPlane); err != nil {
		v.log.Warn("reload: keeping clip planes", zap.Error(err))
	}
	v.camera.SetSpeeds(next.MoveSpeed, next.LookSensitivity)

	if cfg.Debug.ScreenshotDir != v.cfg.Debug.ScreenshotDir || cfg.Debug.ScreenshotFormat != v.cfg.Debug.ScreenshotFormat {
		screenshots, err := debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "flycam", cfg.Debug.ScreenshotFormat)
		if err != nil {
			v.log.Warn("reload: keeping screenshot settings", zap.Error(err))
			cfg.Debug.ScreenshotDir = v.cfg.Debug.ScreenshotDir
			cfg.Debug.ScreenshotFormat = v.cfg.Debug.ScreenshotFormat
		} else {
			v.screenshots = screenshots
		}
	}

	// Record what the camera actually accepted
	cam := &v.cfg.Camera
	cam.FOVDegrees = v.camera.FOVDegrees()
	cam.NearPlane, cam.FarPlane = v.camera.ClipPlanes()
	cam.MoveSpeed, cam.LookSensitivity = v.camera.Speeds()
	v.cfg.Debug = cfg.Debug

	v.log.Info("config reloaded",
		zap.Float32("fov", cam.FOVDegrees),
		zap.Float32("move_speed", cam.MoveSpeed),
		zap.Float32("look_sensitivity", cam.LookSensitivity),
	)
}

// handleKeys applies the edge-triggered bindings for this frame.
func (v *Viewer) handleKeys(keys keySource) {
	if keys.Pressed(v.bindings.Quit) {
		v.running = false
		return
	}

	// Inspect mode and mesh spin toggle together
	if keys.Pressed(v.bindings.ToggleInspect) {
		v.camera.ToggleInspectMode()
		spinning := v.scene.Model.ToggleSpin()
		v.log.Info("navigation mode changed",
			zap.Bool("inspect", v.camera.InspectMode()),
			zap.Bool("spin", spinning),
		)
	}

	if keys.Pressed(v.bindings.ToggleSpin) {
		spinning := v.scene.Model.ToggleSpin()
		v.log.Info("mesh spin toggled", zap.Bool("spin", spinning))
	}

	if keys.Pressed(v.bindings.Screenshot) {
		v.screenshotRequested = true
	}
}

// update advances the camera and the scene by dt seconds.
func (v *Viewer) update(dt float32, in camera.Input) {
	v.camera.Update(dt, in)
	v.scene.Update(dt)
}

// resize follows the drawable size, which can differ from the event's window
// size on high-DPI displays.
func (v *Viewer) resize() {
	width, height := v.window.Size()
	v.renderer.Resize(width, height)
	if err := v.camera.SetAspectRatio(v.window.AspectRatio()); err != nil {
		v.log.Warn("ignoring resize", zap.Error(err))
	}
}

func (v *Viewer) captureScreenshot() {
	v.screenshotRequested = false
	pixels, width, height := v.renderer.ReadPixels()
	path, err := v.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

func (v *Viewer) title(fps int) string {
	mode := "fly"
	if v.camera.InspectMode() {
		mode = "inspect"
	}
	return fmt.Sprintf("%s - %s - %d fps", v.cfg.Window.Title, mode, fps)
}
