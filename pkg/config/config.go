// Package config assembles render settings from defaults, an optional
// dotenv file and the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/willbeason/mandelbrot/pkg/imageio"
	"github.com/willbeason/mandelbrot/pkg/mandelbrot"
)

const (
	DefaultWidth  = 1500
	DefaultHeight = 1000
	DefaultOutput = "mandelbrot.png"

	// DefaultEnvFile is read when present and no other file is named.
	DefaultEnvFile = ".env"
)

// Environment variables, in the process environment or a dotenv file.
const (
	EnvWidth      = "MANDELBROT_WIDTH"
	EnvHeight     = "MANDELBROT_HEIGHT"
	EnvIterations = "MANDELBROT_ITERATIONS"
	EnvAntiAlias  = "MANDELBROT_ANTIALIAS"
	EnvWorkers    = "MANDELBROT_WORKERS"
	EnvOutput     = "MANDELBROT_OUTPUT"
	EnvFormat     = "MANDELBROT_FORMAT"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Width, Height int
	MaxIterations int
	AntiAliased   bool
	Workers       int

	// Output is the path of the image to write.
	Output string

	// Format overrides the encoding inferred from Output's extension.
	Format string
}

func Default() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		MaxIterations: mandelbrot.DefaultMaxIterations,
		AntiAliased:   true,
		Workers:       runtime.NumCPU(),
		Output:        DefaultOutput,
	}
}

// Load applies envFile and then the process environment on top of Default.
// An empty envFile reads DefaultEnvFile if it exists.
func Load(envFile string) (Config, error) {
	return LoadWith(envFile, os.LookupEnv)
}

// LoadWith is Load with the process environment replaced by lookup.
func LoadWith(envFile string, lookup func(string) (string, bool)) (Config, error) {
	fileEnv, err := readEnvFile(envFile)
	if err != nil {
		return Config{}, err
	}

	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	cfg := Default()
	for key, dst := range map[string]*int{
		EnvWidth:      &cfg.Width,
		EnvHeight:     &cfg.Height,
		EnvIterations: &cfg.MaxIterations,
		EnvWorkers:    &cfg.Workers,
	} {
		if v, ok := get(key); ok {
			*dst, err = strconv.Atoi(v)
			if err != nil {
				return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, key, err)
			}
		}
	}

	if v, ok := get(EnvAntiAlias); ok {
		cfg.AntiAliased, err = strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, EnvAntiAlias, err)
		}
	}
	if v, ok := get(EnvOutput); ok {
		cfg.Output = v
	}
	if v, ok := get(EnvFormat); ok {
		cfg.Format = v
	}

	return cfg, nil
}

func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			return nil, nil
		}
		path = DefaultEnvFile
	}

	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return env, nil
}

// Validate reports settings the renderer cannot honor.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalid, c.Width, c.Height)
	case c.MaxIterations < 1:
		return fmt.Errorf("%w: max iterations %d must be at least 1", ErrInvalid, c.MaxIterations)
	case c.Output == "":
		return fmt.Errorf("%w: no output path", ErrInvalid)
	}

	_, err := c.ImageFormat()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// ImageFormat is Format when set and otherwise inferred from Output.
func (c Config) ImageFormat() (imageio.Format, error) {
	if c.Format != "" {
		return imageio.ParseFormat(c.Format)
	}
	return imageio.FormatFor(c.Output)
}

// RenderOptions converts the settings for mandelbrot.Renderer.
func (c Config) RenderOptions() mandelbrot.Options {
	return mandelbrot.Options{
		Width:         c.Width,
		Height:        c.Height,
		MaxIterations: c.MaxIterations,
		AntiAliased:   c.AntiAliased,
		Workers:       c.Workers,
	}
}
