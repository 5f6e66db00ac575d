// Package config loads the YAML settings file shared by the executables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"handmade/internal/bound"
	"handmade/internal/logging"
)

// Origin2D picks where (0, 0) sits for the 2D projection.
type Origin2D string

const (
	OriginTopLeft    Origin2D = "top_left"
	OriginBottomLeft Origin2D = "bottom_left"
)

type Config struct {
	Log       Log       `yaml:"log"`
	Screen    Screen    `yaml:"screen"`
	Collision Collision `yaml:"collision"`
	Shaders   Shaders   `yaml:"shaders"`
	Client    Client    `yaml:"client"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Screen struct {
	Title         string   `yaml:"title"`
	Width         int      `yaml:"width"`
	Height        int      `yaml:"height"`
	PixelsPerUnit int      `yaml:"pixels_per_unit"`
	Context       float64  `yaml:"context"` // GL version as major.minor, e.g. 3.3
	Compatible    bool     `yaml:"compatible"`
	Fullscreen    bool     `yaml:"fullscreen"`
	Origin        Origin2D `yaml:"origin"`
	ClearColor    [4]uint8 `yaml:"clear_color"`
	TargetFPS     int      `yaml:"target_fps"`
}

type Collision struct {
	TransformOrder string  `yaml:"transform_order"`
	PlaneTolerance float32 `yaml:"plane_tolerance"`
	CellSize       float32 `yaml:"cell_size"`
}

// Order parses TransformOrder. Validate has already rejected bad names.
func (c Collision) Order() bound.TransformOrder {
	order, _ := bound.ParseTransformOrder(c.TransformOrder)
	return order
}

type Shaders struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

type Client struct {
	Host        string        `yaml:"host"`
	Port        int           `yaml:"port"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

func Default() Config {
	return Config{
		Log: Log{Level: "info", Format: logging.FormatConsole},
		Screen: Screen{
			Title:         "Handmade",
			Width:         1024,
			Height:        768,
			PixelsPerUnit: 50,
			Context:       3.3,
			Origin:        OriginBottomLeft,
			ClearColor:    [4]uint8{30, 30, 36, 255},
			TargetFPS:     60,
		},
		Collision: Collision{
			TransformOrder: bound.TranslateThenScale.String(),
			CellSize:       4,
		},
		Client: Client{
			Host:        "localhost",
			Port:        1234,
			DialTimeout: 5 * time.Second,
		},
	}
}

// Load reads path on top of Default. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var err error

	if _, lerr := logging.ParseLevel(c.Log.Level); lerr != nil {
		err = multierr.Append(err, lerr)
	}
	switch c.Log.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		err = multierr.Append(err, fmt.Errorf("unknown log format %q", c.Log.Format))
	}

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.PixelsPerUnit <= 0 {
		err = multierr.Append(err, fmt.Errorf("pixels_per_unit %d must be positive", c.Screen.PixelsPerUnit))
	}
	if c.Screen.Context < 0 {
		err = multierr.Append(err, fmt.Errorf("context version %v must not be negative", c.Screen.Context))
	}
	switch c.Screen.Origin {
	case OriginTopLeft, OriginBottomLeft:
	default:
		err = multierr.Append(err, fmt.Errorf("unknown screen origin %q", c.Screen.Origin))
	}
	if c.Screen.TargetFPS < 0 {
		err = multierr.Append(err, fmt.Errorf("target_fps %d must not be negative", c.Screen.TargetFPS))
	}

	if _, oerr := bound.ParseTransformOrder(c.Collision.TransformOrder); oerr != nil {
		err = multierr.Append(err, oerr)
	}
	if c.Collision.PlaneTolerance < 0 {
		err = multierr.Append(err, fmt.Errorf("plane_tolerance %v must not be negative", c.Collision.PlaneTolerance))
	}
	if c.Collision.CellSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("cell_size %v must be positive", c.Collision.CellSize))
	}

	if c.Client.Port < 0 || c.Client.Port > 65535 {
		err = multierr.Append(err, fmt.Errorf("client port %d out of range", c.Client.Port))
	}
	if c.Client.DialTimeout < 0 {
		err = multierr.Append(err, fmt.Errorf("dial_timeout %v must not be negative", c.Client.DialTimeout))
	}

	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
