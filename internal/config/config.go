package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"

	"quaternion-go/internal/mathutil"
)

// Formats lists the supported frame image formats.
var Formats = []string{"webp", "png", "tga"}

// Config holds all render settings for a turntable run.
type Config struct {
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"`
	Model     string `json:"model"`

	// Orientation: every frame is a turn of Angle(frame) about Axis applied
	// after the base Euler orientation (degrees, roll/pitch/yaw).
	Axis  [3]float64 `json:"axis"`
	Euler [3]float64 `json:"euler_deg"`

	// Render settings
	Frames      int  `json:"frames"`
	RenderSize  int  `json:"render_size"`
	Supersample int  `json:"supersample"`
	Workers     int  `json:"workers"`
	Caption     bool `json:"caption"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Empty strings and non-positive numbers mean "not set".
type Flags struct {
	OutputDir   string
	Format      string
	Model       string
	Axis        string // "x,y,z"
	Euler       string // "roll,pitch,yaw" in degrees
	Frames      int
	RenderSize  int
	Supersample int
	Workers     int
	Caption     bool
}

// Resolve applies CLI overrides, fills defaults and validates the result.
func (c *Config) Resolve(flags Flags) error {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Model != "" {
		c.Model = flags.Model
	}
	if flags.Axis != "" {
		v, err := ParseTriple(flags.Axis)
		if err != nil {
			return fmt.Errorf("config: -axis: %w", err)
		}
		c.Axis = v
	}
	if flags.Euler != "" {
		v, err := ParseTriple(flags.Euler)
		if err != nil {
			return fmt.Errorf("config: -euler: %w", err)
		}
		c.Euler = v
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.RenderSize > 0 {
		c.RenderSize = flags.RenderSize
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Caption {
		c.Caption = true
	}

	// Defaults
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Model == "" {
		c.Model = "cube"
	}
	if c.Axis == ([3]float64{}) {
		c.Axis = [3]float64{0, 1, 0}
	}
	if c.Frames <= 0 {
		c.Frames = 12
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}

	if !finite(c.Axis) {
		return fmt.Errorf("config: axis %v is not finite", c.Axis)
	}
	if l := mathutil.Vector3(c.Axis).Len(); l < 1e-12 || math.IsInf(l, 0) {
		return fmt.Errorf("config: axis %v has no usable direction", c.Axis)
	}
	if !finite(c.Euler) {
		return fmt.Errorf("config: euler angles %v are not finite", c.Euler)
	}

	c.Format = strings.ToLower(c.Format)
	for _, f := range Formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("config: unsupported format %q (want one of %v)", c.Format, Formats)
}

func finite(v [3]float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// AxisVector returns the turntable axis scaled to unit length.
func (c Config) AxisVector() mathutil.Vector3 {
	return mathutil.Vector3(c.Axis).Normalize()
}

// BaseOrientation returns the quaternion for the configured Euler angles.
func (c Config) BaseOrientation() mathutil.Quaternion {
	return mathutil.FromEulerAngles(mathutil.Vector3{
		mathutil.Deg2Rad(c.Euler[0]),
		mathutil.Deg2Rad(c.Euler[1]),
		mathutil.Deg2Rad(c.Euler[2]),
	})
}

// ParseTriple parses "a,b,c" into three floats. Whitespace around values is ignored.
func ParseTriple(s string) ([3]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]float64{}, fmt.Errorf("want 3 comma-separated values, got %q", s)
	}
	var out [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [3]float64{}, fmt.Errorf("value %d of %q: %w", i+1, s, err)
		}
		out[i] = v
	}
	return out, nil
}
