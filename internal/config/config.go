// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Scene    SceneConfig    `yaml:"scene"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`

	source string // file the config was read from, if any
}

// Source returns the path of the file this config was loaded from, or "" when
// only defaults and flags were used.
func (c *Config) Source() string {
	return c.source
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Fullscreen    bool   `yaml:"fullscreen"`
	VSync         bool   `yaml:"vsync"`
	RelativeMouse bool   `yaml:"relative_mouse"` // hide and capture the cursor
}

// CameraConfig holds camera navigation settings.
type CameraConfig struct {
	FOVDegrees         float32    `yaml:"fov_degrees"`
	NearPlane          float32    `yaml:"near_plane"`
	FarPlane           float32    `yaml:"far_plane"`
	MoveSpeed          float32    `yaml:"move_speed"`
	LookSensitivity    float32    `yaml:"look_sensitivity"`
	PitchLimitDegrees  float32    `yaml:"pitch_limit_degrees"`
	Origin             [3]float32 `yaml:"origin,flow"`
	InspectHome        [3]float32 `yaml:"inspect_home,flow"`
	RecomputeInInspect bool       `yaml:"recompute_in_inspect"`
}

// ControlsConfig binds actions to SDL key names (see SDL_GetScancodeFromName).
type ControlsConfig struct {
	MoveForward   []string `yaml:"move_forward,flow"`
	MoveBackward  []string `yaml:"move_backward,flow"`
	MoveLeft      []string `yaml:"move_left,flow"`
	MoveRight     []string `yaml:"move_right,flow"`
	ToggleInspect string   `yaml:"toggle_inspect"`
	ToggleSpin    string   `yaml:"toggle_spin"`
	Screenshot    string   `yaml:"screenshot"`
	Quit          string   `yaml:"quit"`
}

// SceneConfig holds the demo scene settings.
type SceneConfig struct {
	Spin                 bool    `yaml:"spin"`
	SpinDegreesPerSecond float32 `yaml:"spin_degrees_per_second"`
	CubeSize             float32 `yaml:"cube_size"`
	SunLongitude         float32 `yaml:"sun_longitude"`
	SunLatitude          float32 `yaml:"sun_latitude"`
	GridHalfExtent       float32 `yaml:"grid_half_extent"`
	GridSpacing          float32 `yaml:"grid_spacing"`
}

// DebugConfig holds debug overlay and capture settings.
type DebugConfig struct {
	ShowGrid         bool   `yaml:"show_grid"`
	ShowBounds       bool   `yaml:"show_bounds"` // outline the mesh while inspecting
	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // png or bmp
	WatchConfig      bool   `yaml:"watch_config"`      // reload camera and debug settings on save
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:         "flycam",
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			RelativeMouse: true,
		},
		Camera: CameraConfig{
			FOVDegrees:        45,
			NearPlane:         0.1,
			FarPlane:          300,
			MoveSpeed:         30,
			LookSensitivity:   5,
			PitchLimitDegrees: 89,
			Origin:            [3]float32{0, 0, -132.827},
			InspectHome:       [3]float32{0, 0, -132.827},
		},
		Controls: ControlsConfig{
			MoveForward:   []string{"W", "Z", "Up"},
			MoveBackward:  []string{"S", "Down"},
			MoveLeft:      []string{"Q", "A", "Left"},
			MoveRight:     []string{"D", "Right"},
			ToggleInspect: "F4",
			ToggleSpin:    "F5",
			Screenshot:    "F12",
			Quit:          "Escape",
		},
		Scene: SceneConfig{
			Spin:                 true,
			SpinDegreesPerSecond: 45,
			CubeSize:             40,
			SunLongitude:         45,
			SunLatitude:          50,
			GridHalfExtent:       200,
			GridSpacing:          10,
		},
		Debug: DebugConfig{
			ShowGrid:         true,
			ShowBounds:       true,
			ScreenshotDir:    "screenshots",
			ScreenshotFormat: "png",
			WatchConfig:      true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}
