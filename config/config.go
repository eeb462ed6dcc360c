package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sghaida/valueholder/holder"
	"gopkg.in/yaml.v3"
)

// Diagnostics modes.
const (
	DiagnosticsStderr  = "stderr"
	DiagnosticsStdout  = "stdout"
	DiagnosticsDiscard = "discard"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config drives the composition root: which stream diagnostics go to and the
// scale factor new holders start with.
type Config struct {
	Env         string  `yaml:"env"`
	ScaleFactor float32 `yaml:"scaleFactor"`
	Diagnostics string  `yaml:"diagnostics"`
}

// Default returns the settings used when no file or environment overrides them.
func Default() Config {
	return Config{
		Env:         "local",
		ScaleFactor: holder.DefaultScaleFactor,
		Diagnostics: DiagnosticsStderr,
	}
}

// Load builds a Config in layers: defaults, an optional .env file in the
// working directory, the YAML file at path (skipped when path is empty), then
// HOLDER_* environment variables. The result is validated.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFile(path, cfg); err != nil {
			return Config{}, err
		}
	}

	cfg, err := LoadFromEnv(cfg)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile decodes the YAML document at path on top of base.
// Unknown keys are rejected.
func LoadFile(path string, base Config) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	// An empty document leaves base untouched.
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv overlays HOLDER_ENV, HOLDER_SCALE_FACTOR and HOLDER_DIAGNOSTICS
// on top of base. Unset variables keep the base value.
func LoadFromEnv(base Config) (Config, error) {
	cfg := base
	cfg.Env = getenv("HOLDER_ENV", cfg.Env)
	cfg.Diagnostics = getenv("HOLDER_DIAGNOSTICS", cfg.Diagnostics)

	scale, err := getenvFloat32("HOLDER_SCALE_FACTOR", cfg.ScaleFactor)
	if err != nil {
		return Config{}, err
	}
	cfg.ScaleFactor = scale
	return cfg, nil
}

// Validate reports the first problem found, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	f := float64(c.ScaleFactor)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: scaleFactor must be finite, got %v", ErrInvalidConfig, c.ScaleFactor)
	}
	switch c.Diagnostics {
	case DiagnosticsStderr, DiagnosticsStdout, DiagnosticsDiscard:
	default:
		return fmt.Errorf("%w: unknown diagnostics mode %q", ErrInvalidConfig, c.Diagnostics)
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvFloat32(k string, def float32) (float32, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, k, v)
	}
	return float32(f), nil
}
