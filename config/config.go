package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps validation and environment parsing failures.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the full pipeline configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Score   ScoreConfig   `yaml:"score"`
	Assign  AssignConfig  `yaml:"assign"`
	Cache   CacheConfig   `yaml:"cache"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// InputConfig describes the edge list.
type InputConfig struct {
	Path      string `yaml:"path" validate:"required"`
	Delimiter string `yaml:"delimiter" validate:"len=1"`
	Unknown   string `yaml:"unknown" validate:"required"`
	MinScore  int    `yaml:"min_score" validate:"gte=0,lte=65535"`
	// Mapping is an optional identifier translation table.
	Mapping string `yaml:"mapping"`
}

type ScoreConfig struct {
	Scope   string `yaml:"scope" validate:"oneof=component neighborhood"`
	Workers int    `yaml:"workers" validate:"gte=1,lte=256"`
}

type AssignConfig struct {
	Density float64 `yaml:"density" validate:"gt=0,lt=1"`
}

// CacheConfig points at the weight cache; an empty path disables caching.
type CacheConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig selects where results go; an empty path means stdout.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format" validate:"oneof=tsv csv dot"`
}

type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// MetricsConfig enables collection; Path receives the text exposition after
// the run when set.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		Input:  InputConfig{Delimiter: ",", Unknown: "unknown", MinScore: 0},
		Score:  ScoreConfig{Scope: "neighborhood", Workers: 4},
		Assign: AssignConfig{Density: 0.5},
		Output: OutputConfig{Format: "tsv"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads defaults, then path (if non-empty), then the environment, then
// applies overlays in order, and validates the result.
func Load(path string, overlays ...func(*Config)) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: open: %w", err)
		}
		defer f.Close()
		if err := cfg.decode(f); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	for _, overlay := range overlays {
		overlay(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays YAML from r onto c. An empty document changes nothing.
func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

// ApplyEnv overlays MCODE_* variables read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("MCODE_INPUT", &c.Input.Path)
	str("MCODE_DELIMITER", &c.Input.Delimiter)
	str("MCODE_UNKNOWN", &c.Input.Unknown)
	str("MCODE_MAPPING", &c.Input.Mapping)
	str("MCODE_SCOPE", &c.Score.Scope)
	str("MCODE_CACHE", &c.Cache.Path)
	str("MCODE_OUTPUT", &c.Output.Path)
	str("MCODE_FORMAT", &c.Output.Format)
	str("MCODE_LOG_LEVEL", &c.Log.Level)
	str("MCODE_METRICS_PATH", &c.Metrics.Path)

	var errs []error
	if v, ok := lookup("MCODE_MIN_SCORE"); ok && v != "" {
		n, err := strconv.Atoi(v)
		errs = append(errs, envErr("MCODE_MIN_SCORE", err))
		c.Input.MinScore = n
	}
	if v, ok := lookup("MCODE_WORKERS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		errs = append(errs, envErr("MCODE_WORKERS", err))
		c.Score.Workers = n
	}
	if v, ok := lookup("MCODE_DENSITY"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		errs = append(errs, envErr("MCODE_DENSITY", err))
		c.Assign.Density = f
	}
	if v, ok := lookup("MCODE_METRICS"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		errs = append(errs, envErr("MCODE_METRICS", err))
		c.Metrics.Enabled = b
	}
	if v, ok := lookup("MCODE_LOG_DEVELOPMENT"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		errs = append(errs, envErr("MCODE_LOG_DEVELOPMENT", err))
		c.Log.Development = b
	}
	return errors.Join(errs...)
}

func envErr(key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
}

// Validate checks struct tags and reports every failing field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// DelimiterRune returns the first rune of Input.Delimiter.
func (c *Config) DelimiterRune() rune {
	for _, r := range c.Input.Delimiter {
		return r
	}
	return ','
}
