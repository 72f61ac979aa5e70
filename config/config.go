// Package config loads the travelgraph YAML configuration file.
//
// Every field is optional. Defaults are applied after parsing, then the
// result is validated; command-line flags override whatever the file says.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/travelgraph/travel"
)

// Defaults applied to zero-valued fields.
const (
	DefaultOutput    = "text"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// ErrInvalidConfig wraps parse and validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the on-disk configuration.
type Config struct {
	// Venues is a JSON or YAML venue table. Empty means the built-in table.
	Venues string `yaml:"venues"`
	// Schedule is the CSV game schedule.
	Schedule string `yaml:"schedule"`
	// Team is the default team for analyze and the default mst root.
	Team string `yaml:"team"`
	// Algorithm is the default route algorithm.
	Algorithm travel.Algorithm `yaml:"algorithm"`
	// Concurrency bounds rank workers; 0 means GOMAXPROCS.
	Concurrency int `yaml:"concurrency" validate:"gte=0"`
	// Output is the report format: text, json or yaml.
	Output string `yaml:"output" validate:"oneof=text json yaml"`
	// MetricsTextfile, when set, receives a Prometheus text dump per run.
	MetricsTextfile string `yaml:"metrics_textfile"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the zap logger setup.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.Normalize()

	return cfg
}

// Parse decodes YAML, applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load reads and parses the file at path. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Normalize lower-cases the enumerated fields and fills empty ones with
// their defaults. Call it again after overriding fields, before Validate.
func (c *Config) Normalize() {
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}
