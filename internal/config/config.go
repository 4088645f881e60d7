package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/philipparndt/goview/internal/camera"
	"github.com/philipparndt/goview/pkg/geometry"
	"golang.org/x/exp/constraints"
)

// Config is the complete viewer configuration
type Config struct {
	Window WindowConfig `toml:"window"`
	Camera CameraConfig `toml:"camera"`
	Assets AssetsConfig `toml:"assets"`
	Viewer ViewerConfig `toml:"viewer"`
	Log    LogConfig    `toml:"log"`
}

type WindowConfig struct {
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
	Title     string `toml:"title"`
	TargetFPS int32  `toml:"target_fps"`
}

type CameraConfig struct {
	MoveSpeed     float64    `toml:"move_speed"`
	VerticalSpeed float64    `toml:"vertical_speed"`
	LookSpeed     float64    `toml:"look_speed"`
	Fovy          float64    `toml:"fovy"`
	Projection    string     `toml:"projection"`
	Position      [3]float64 `toml:"position"`
	Forward       [3]float64 `toml:"forward"`
}

type AssetsConfig struct {
	Model       string `toml:"model"`
	Texture     string `toml:"texture"`
	ResourceDir string `toml:"resource_dir"`
	Watch       bool   `toml:"watch"`
}

type ViewerConfig struct {
	// SpinSpeed is in degrees per second while the spin key is held
	SpinSpeed float64 `toml:"spin_speed"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    450,
			Title:     "goview - model viewer",
			TargetFPS: 60,
		},
		Camera: CameraConfig{
			MoveSpeed:     10,
			VerticalSpeed: 1,
			LookSpeed:     0.1,
			Fovy:          45,
			Projection:    camera.Perspective.String(),
			Position:      [3]float64{0, 0, -20},
			Forward:       [3]float64{0, 0, 1},
		},
		Assets: AssetsConfig{
			Model:       "jeep_grande3.glb",
			Texture:     "models/obj/castle_diffuse.png",
			ResourceDir: "resources",
			Watch:       true,
		},
		Viewer: ViewerConfig{
			SpinSpeed: 1000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML file on top of the defaults. Keys missing from the file
// keep their default values; unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("config %s: %s", path, strict.String())
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	var errs []error

	errs = append(errs,
		positive("window.width", c.Window.Width),
		positive("window.height", c.Window.Height),
		positive("window.target_fps", c.Window.TargetFPS),
		positive("camera.move_speed", c.Camera.MoveSpeed),
		positive("camera.vertical_speed", c.Camera.VerticalSpeed),
		positive("camera.look_speed", c.Camera.LookSpeed),
		positive("camera.fovy", c.Camera.Fovy),
		nonNegative("viewer.spin_speed", c.Viewer.SpinSpeed),
	)

	if _, err := camera.ParseProjection(c.Camera.Projection); err != nil {
		errs = append(errs, fmt.Errorf("camera.projection: %w", err))
	}

	var zero [3]float64
	if f := c.Camera.Forward; f == zero {
		errs = append(errs, errors.New("camera.forward must not be the zero vector"))
	} else if camera.IsVertical(geometry.NewVector3(f[0], f[1], f[2])) {
		errs = append(errs, errors.New("camera.forward must not be parallel to world up"))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}

	return errors.Join(errs...)
}

type number interface {
	constraints.Integer | constraints.Float
}

func positive[T number](name string, v T) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %v", name, v)
	}
	return nil
}

func nonNegative[T number](name string, v T) error {
	if v < 0 {
		return fmt.Errorf("%s must not be negative, got %v", name, v)
	}
	return nil
}
